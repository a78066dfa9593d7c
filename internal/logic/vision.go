package logic

import (
	"context"
	"fmt"

	"github.com/riftglance/insights-api/internal/models"
)

// visionBenchmarkPerMin is the vision-score-per-minute level generally
// held up as solid map awareness for a non-support role.
const visionBenchmarkPerMin = 1.0

// computeVision measures warding habits and map awareness.
func (s *Scenes) computeVision(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	var visionScore, wardsPlaced, wardsKilled, controlWards, totalSeconds int
	for _, rec := range set.records {
		p := rec.ParticipantByPUUID(sc.PUUID)
		visionScore += p.VisionScore
		wardsPlaced += p.WardsPlaced
		wardsKilled += p.WardsKilled
		controlWards += p.ControlWardsPlaced
		totalSeconds += rec.GameDuration
	}

	games := float64(set.processed())
	minutes := float64(totalSeconds) / 60
	avgVision := float64(visionScore) / games
	visionPerMin := 0.0
	if minutes > 0 {
		visionPerMin = float64(visionScore) / minutes
	}

	trend := models.TrendDown
	verdict := "below"
	if visionPerMin >= visionBenchmarkPerMin {
		trend = models.TrendUp
		verdict = "above"
	}

	stats := []models.SceneMetric{
		{Label: "Avg vision score", Value: round1(avgVision)},
		{Label: "Vision score/min", Value: round2(visionPerMin), Trend: trend},
		{Label: "Wards placed/game", Value: round1(float64(wardsPlaced) / games)},
		{Label: "Wards cleared/game", Value: round1(float64(wardsKilled) / games)},
		{Label: "Control wards/game", Value: round1(float64(controlWards) / games)},
	}

	details := []string{
		fmt.Sprintf("You placed %d wards and cleared %d this year.", wardsPlaced, wardsKilled),
		fmt.Sprintf("Your %.2f vision score per minute is %s the %.1f benchmark.",
			visionPerMin, verdict, visionBenchmarkPerMin),
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("Average vision score %.1f per game.", avgVision),
		Details: details,
		Action:  "Buy a control ward on every base trip - it pays for itself.",
		Metrics: stats,
		Viz: &models.VizData{
			Kind:        models.VizInfographic,
			Infographic: &models.InfographicViz{Stats: stats},
		},
	}, nil
}
