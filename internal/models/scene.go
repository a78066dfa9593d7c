package models

// VizKind is the closed set of visualization shapes a scene may emit.
type VizKind string

const (
	VizHeatmap     VizKind = "heatmap"
	VizRadar       VizKind = "radar"
	VizLine        VizKind = "line"
	VizBar         VizKind = "bar"
	VizHighlight   VizKind = "highlight"
	VizBadge       VizKind = "badge"
	VizInfographic VizKind = "infographic"
	VizGoal        VizKind = "goal"
)

// Trend marks the direction of a metric relative to its baseline.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MetricContextEstimated tags metric values derived from a heuristic
// model rather than measured telemetry.
const MetricContextEstimated = "estimated"

// SceneMetric is one headline number (or label) in a scene's output.
type SceneMetric struct {
	Label   string `json:"label"`
	Value   any    `json:"value"` // number or string
	Unit    string `json:"unit,omitempty"`
	Trend   Trend  `json:"trend,omitempty"`
	Context string `json:"context,omitempty"`
}

// SceneInsight is the narrative-free statistical result of one scene.
// Metrics may be empty for error/no-data fallbacks but is never nil.
type SceneInsight struct {
	Summary string        `json:"summary"`
	Details []string      `json:"details"`
	Action  string        `json:"action"`
	Metrics []SceneMetric `json:"metrics"`
	Viz     *VizData      `json:"viz,omitempty"`
}

// ScenePayload is the unit of output of every analyzer and the unit of
// insight-cache storage.
type ScenePayload struct {
	SceneID string       `json:"scene_id"`
	Kind    VizKind      `json:"visualization"`
	Insight SceneInsight `json:"insight"`
}
