// Package rest holds the request and response bodies of the HTTP API.
package rest

import "time"

type Lamp struct {
	Code    string `json:"code,omitempty"`
	Label   string `json:"label"`
	Ordinal int    `json:"ordinal"`
}

type ScoreRow struct {
	Level           string   `json:"level"`
	Title           string   `json:"title"`
	Chart           string   `json:"chart"`
	ChartLabel      string   `json:"chartLabel"`
	Score           string   `json:"score"`
	Rank            string   `json:"rank"`
	Rate            string   `json:"rate"`
	Detail          string   `json:"detail"`
	Lamp            Lamp     `json:"lamp"`
	MissCount       *int     `json:"missCount,omitempty"`
	DJPoints        *float64 `json:"djPoints,omitempty"`
	DJPointsMatched bool     `json:"djPointsMatched"`
}

type Scores struct {
	Mode  string     `json:"mode"`
	Level string     `json:"level"`
	Sort  string     `json:"sort"`
	Order string     `json:"order"`
	Rows  []ScoreRow `json:"rows"`
}

type LevelStats struct {
	Level     string         `json:"level"`
	Ranks     map[string]int `json:"ranks"`
	Lamps     map[string]int `json:"lamps"`
	RankTotal int            `json:"rankTotal"`
	LampTotal int            `json:"lampTotal"`
}

type Stats struct {
	Mode       string         `json:"mode"`
	RankOrder  []string       `json:"rankOrder"`
	LampOrder  []string       `json:"lampOrder"`
	Levels     []LevelStats   `json:"levels"`
	RankTotals map[string]int `json:"rankTotals"`
	LampTotals map[string]int `json:"lampTotals"`
	GrandTotal int            `json:"grandTotal"`
}

type Profile struct {
	DJName       string     `json:"djName"`
	InfinitasID  string     `json:"infinitasId"`
	SPClass      string     `json:"spClass"`
	DPClass      string     `json:"dpClass"`
	Area         string     `json:"area"`
	SPPoints     int        `json:"spPoints"`
	DPPoints     int        `json:"dpPoints"`
	TotalPoints  int        `json:"totalPoints"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	Lines        []string   `json:"lines"`
}

type RankEvaluateRequest struct {
	Rank  string `json:"rank"  validate:"max=8"`
	Score int    `json:"score" validate:"gte=0"`
	Notes int    `json:"notes" validate:"gte=0"`
}

type RankEvaluation struct {
	Rank   string `json:"rank"`
	Rate   string `json:"rate"`
	Detail string `json:"detail"`
}

type DetailLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Link  string `json:"link,omitempty"`
}

type Event struct {
	Anchor         string       `json:"anchor"`
	No             string       `json:"no"`
	Title          string       `json:"title"`
	Remain         string       `json:"remain"`
	Urgent         bool         `json:"urgent"`
	New            bool         `json:"new"`
	Checked        bool         `json:"checked"`
	BannerURL      string       `json:"bannerUrl,omitempty"`
	InformationURL string       `json:"informationUrl,omitempty"`
	Organizer      string       `json:"organizer,omitempty"`
	Details        []DetailLine `json:"details"`
}

type EventGroup struct {
	Bucket string  `json:"bucket"`
	Title  string  `json:"title"`
	Muted  bool    `json:"muted"`
	Events []Event `json:"events"`
}

type Events struct {
	Type   string       `json:"type"`
	Groups []EventGroup `json:"groups"`
}

type CheckRequest struct {
	Checked *bool `json:"checked" validate:"required"`
}

type Check struct {
	Anchor  string `json:"anchor"`
	Checked bool   `json:"checked"`
}

type Slideshow struct {
	Animation  string   `json:"animation"`
	IntervalMs int      `json:"intervalMs"`
	Banners    []string `json:"banners"`
}

type ExportRow struct {
	Class  string            `json:"class,omitempty"`
	Values map[string]string `json:"values"`
}

type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Export struct {
	Type     string              `json:"type"`
	Columns  []string            `json:"columns"`
	Rows     []ExportRow         `json:"rows"`
	Footer   map[string][]Count  `json:"footer"`
	Dropdown map[string][]string `json:"dropdown"`
}

// Error is the body of every non-2xx reply.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
