package view_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/internal/transport/bot/view"
)

func TestEvents(t *testing.T) {
	rq := require.New(t)

	rq.Equal("📭 No SP events", view.Events(value.PlayModeSP, nil))

	many := make([]entity.EventView, 12)
	for i := range many {
		many[i] = entity.EventView{Title: "Later", Remain: "20 days left"}
	}

	text := view.Events(value.PlayModeDP, []entity.EventGroup{
		{
			Title: value.BucketWithinWeek.Title(),
			Events: []entity.EventView{
				{Title: "A&B", Remain: "1 day left", Urgent: true, New: true, Info: "https://example.com/?a=1&b=2"},
			},
		},
		{Title: value.BucketOverWeek.Title(), Events: many},
	})

	rq.Contains(text, "<b>DP events</b>")
	rq.Contains(text, "• <a href=\"https://example.com/?a=1&amp;b=2\">A&amp;B</a> (1 day left) 🔥 🆕")
	rq.Equal(10, strings.Count(text, "• Later (20 days left)"))
	rq.True(strings.HasSuffix(text, "… and 2 more"))
}

func TestRankAndLamp(t *testing.T) {
	rq := require.New(t)

	rq.Equal("📊 <b>AA</b> 80.00% (AA + 45)", view.Rank(entity.RankEvaluation{
		Rank: "AA", RatePercent: "80.00%", Detail: "(AA + 45)",
	}))
	rq.Equal("📊 0.00% (F + 0)", view.Rank(entity.RankEvaluation{RatePercent: "0.00%", Detail: "(F + 0)"}))

	rq.Equal("💡 <code>FC</code>: <b>FULLCOMBO</b> (7)", view.Lamp("FC", value.DecodeLamp("FC")))
	rq.Equal("💡 <code>ZZ</code>: no play / unknown", view.Lamp("ZZ", value.DecodeLamp("ZZ")))
}
