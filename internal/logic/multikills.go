package logic

import (
	"context"
	"fmt"

	"github.com/riftglance/insights-api/internal/models"
)

// computeMultikills totals the player's multikill history.
func (s *Scenes) computeMultikills(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	var doubles, triples, quadras, pentas int
	var pentaChampion string

	for _, rec := range set.records {
		p := rec.ParticipantByPUUID(sc.PUUID)
		doubles += p.DoubleKills
		triples += p.TripleKills
		quadras += p.QuadraKills
		if p.PentaKills > 0 && pentaChampion == "" {
			pentaChampion = p.ChampionName
		}
		pentas += p.PentaKills
	}

	total := doubles + triples + quadras + pentas

	badges := []models.BadgeItem{
		{Label: "Double Kill", Count: doubles},
		{Label: "Triple Kill", Count: triples},
		{Label: "Quadra Kill", Count: quadras},
		{Label: "Penta Kill", Count: pentas, Context: pentaChampion},
	}

	summary := fmt.Sprintf("You racked up %d multikills this year.", total)
	details := []string{
		fmt.Sprintf("%d doubles, %d triples, %d quadras, %d pentas.", doubles, triples, quadras, pentas),
	}
	switch {
	case pentas > 0:
		details = append(details, fmt.Sprintf("Your first penta of the year came on %s.", pentaChampion))
	case quadras > 0:
		details = append(details, "So close - a quadra is one kill short of the highlight reel.")
	case total == 0:
		summary = "No multikills this year - yet."
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: summary,
		Details: details,
		Action:  "Hold your burst for the teamfight clean-up and that penta will come.",
		Metrics: []models.SceneMetric{
			{Label: "Total multikills", Value: total},
			{Label: "Double kills", Value: doubles},
			{Label: "Triple kills", Value: triples},
			{Label: "Quadra kills", Value: quadras},
			{Label: "Penta kills", Value: pentas},
		},
		Viz: &models.VizData{
			Kind:  models.VizBadge,
			Badge: &models.BadgeViz{Badges: badges},
		},
	}, nil
}
