package view

import (
	"fmt"
	"html"
	"strings"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
)

const maxEventsPerGroup = 10

const (
	StartMessage = "🎧 <b>djtracker</b>\n\n" +
		"/events [SP|DP] - running events\n" +
		"/rank &lt;letter&gt; &lt;score&gt; &lt;notes&gt; - distance to the nearest rank\n" +
		"/lamp &lt;code&gt; - clear lamp name"

	EventsUsage       = "❌ Usage: /events [SP|DP]"
	EventsUnavailable = "⚠️ Event feed is unavailable, try again later"
	RankUsage         = "❌ Usage: /rank <code>AA</code> <code>1600</code> <code>1000</code>"
	LampUsage         = "❌ Usage: /lamp <code>FC</code>"
)

// Events renders the bucketed listing, at most maxEventsPerGroup per bucket.
func Events(mode value.PlayMode, groups []entity.EventGroup) string {
	if len(groups) == 0 {
		return fmt.Sprintf("📭 No %s events", mode)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "🎮 <b>%s events</b>\n", mode)

	for _, g := range groups {
		fmt.Fprintf(&sb, "\n<b>%s</b>\n", html.EscapeString(g.Title))

		for i, e := range g.Events {
			if i == maxEventsPerGroup {
				fmt.Fprintf(&sb, "… and %d more\n", len(g.Events)-maxEventsPerGroup)

				break
			}

			sb.WriteString(eventLine(e))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func eventLine(e entity.EventView) string {
	title := html.EscapeString(e.Title)
	if e.Info != "" {
		title = fmt.Sprintf("<a href=\"%s\">%s</a>", html.EscapeString(e.Info), title)
	}

	var marks string
	if e.Urgent {
		marks += " 🔥"
	}

	if e.New {
		marks += " 🆕"
	}

	if e.Remain == "" {
		return fmt.Sprintf("• %s%s\n", title, marks)
	}

	return fmt.Sprintf("• %s (%s)%s\n", title, html.EscapeString(e.Remain), marks)
}

func Rank(e entity.RankEvaluation) string {
	if e.Rank == "" {
		return fmt.Sprintf("📊 %s %s", e.RatePercent, e.Detail)
	}

	return fmt.Sprintf("📊 <b>%s</b> %s %s", e.Rank, e.RatePercent, e.Detail)
}

func Lamp(code string, lamp value.LampInfo) string {
	if lamp.Label == "" {
		return fmt.Sprintf("💡 <code>%s</code>: no play / unknown", html.EscapeString(code))
	}

	return fmt.Sprintf("💡 <code>%s</code>: <b>%s</b> (%d)", html.EscapeString(code), lamp.Label, lamp.Ordinal)
}
