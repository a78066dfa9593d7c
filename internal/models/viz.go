package models

// VizData is a closed variant keyed by Kind: exactly one of the shape
// pointers matching Kind is populated. Consumers switch on Kind instead
// of probing fields.
type VizData struct {
	Kind VizKind `json:"kind"`

	Heatmap     *HeatmapViz     `json:"heatmap,omitempty"`
	Radar       *RadarViz       `json:"radar,omitempty"`
	Line        *LineViz        `json:"line,omitempty"`
	Bar         *BarViz         `json:"bar,omitempty"`
	Highlight   *HighlightViz   `json:"highlight,omitempty"`
	Badge       *BadgeViz       `json:"badge,omitempty"`
	Infographic *InfographicViz `json:"infographic,omitempty"`
	Goal        *GoalViz        `json:"goal,omitempty"`
}

// MonthCell is one calendar month in the activity heatmap. Hours and
// Matches are nil for months with no games, distinguishing "no games"
// from "zero-duration games".
type MonthCell struct {
	Month     string   `json:"month"`
	Hours     *float64 `json:"hours"`
	Matches   *int     `json:"matches"`
	Intensity float64  `json:"intensity"` // monthHours / maxMonthHours, 0 for empty months
}

type HeatmapViz struct {
	Months    []MonthCell `json:"months"` // always exactly 12 entries, Jan..Dec
	PeakMonth string      `json:"peak_month,omitempty"`
}

// RadarAxis is one spoke of a radar profile, normalized to 0-100
// against a fixed per-axis denominator so axes stay comparable.
type RadarAxis struct {
	Label string  `json:"label"`
	Value float64 `json:"value"` // 0-100
	Raw   float64 `json:"raw"`
}

type RadarViz struct {
	Subject string      `json:"subject"`
	Axes    []RadarAxis `json:"axes"`
}

type LinePoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type LineSeries struct {
	Name   string      `json:"name"`
	Points []LinePoint `json:"points"`
}

type LineViz struct {
	Series         []LineSeries `json:"series"`
	Classification string       `json:"classification,omitempty"` // Improving, Declining, Consistent
}

type BarItem struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Estimated bool    `json:"estimated,omitempty"`
}

type BarViz struct {
	Items []BarItem `json:"items"`
	Unit  string    `json:"unit,omitempty"`
}

// HighlightViz spotlights a single relationship or moment.
type HighlightViz struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle,omitempty"`
	Tier      string   `json:"tier,omitempty"`
	Games     int      `json:"games,omitempty"`
	Wins      int      `json:"wins,omitempty"`
	WinRate   float64  `json:"win_rate,omitempty"`
	Champions []string `json:"champions,omitempty"`
	RecentIDs []string `json:"recent_match_ids,omitempty"`
}

type BadgeItem struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Context string `json:"context,omitempty"`
}

type BadgeViz struct {
	Badges []BadgeItem `json:"badges"`
}

type InfographicViz struct {
	Stats []SceneMetric `json:"stats"`
}

// GoalViz describes ranked-ladder progress toward the next milestone.
type GoalViz struct {
	Current     string  `json:"current"` // e.g. "GOLD II 47 LP"
	Target      string  `json:"target"`  // e.g. "GOLD I"
	CurrentLP   int     `json:"current_lp"`
	PointsToGo  int     `json:"points_to_go"`
	GamesNeeded string  `json:"games_needed"` // number, or the open-ended "100+" sentinel
	Progress    float64 `json:"progress"`     // 0-100 within the current division
}
