package logic

import (
	"context"
	"fmt"

	"github.com/riftglance/insights-api/internal/models"
)

// objectiveHeavyThreshold is the combined turret+dragon+baron count that
// marks a game as objective-focused for the win-rate split.
const objectiveHeavyThreshold = 2

// computeObjectives measures objective participation and how it
// correlates with winning.
func (s *Scenes) computeObjectives(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	var (
		turrets, dragons, barons int
		objDamage                int
		totalSeconds             int
		heavyGames, heavyWins    int
		lightGames, lightWins    int
	)

	for _, rec := range set.records {
		p := rec.ParticipantByPUUID(sc.PUUID)
		turrets += p.TurretKills
		dragons += p.DragonKills
		barons += p.BaronKills
		objDamage += p.DamageToObjectives
		totalSeconds += rec.GameDuration

		if p.TurretKills+p.DragonKills+p.BaronKills >= objectiveHeavyThreshold {
			heavyGames++
			if p.Win {
				heavyWins++
			}
		} else {
			lightGames++
			if p.Win {
				lightWins++
			}
		}
	}

	games := float64(set.processed())
	minutes := float64(totalSeconds) / 60
	objDPM := 0.0
	if minutes > 0 {
		objDPM = float64(objDamage) / minutes
	}

	heavyRate := splitWinRate(heavyWins, heavyGames)
	lightRate := splitWinRate(lightWins, lightGames)

	details := []string{
		fmt.Sprintf("You took part in %d turret, %d dragon and %d baron kills.", turrets, dragons, barons),
	}
	if heavyGames > 0 && lightGames > 0 {
		details = append(details, fmt.Sprintf(
			"In objective-heavy games you won %.1f%%, against %.1f%% otherwise.", heavyRate, lightRate))
	}
	details = appendCoverage(details, set)

	trend := models.TrendStable
	if heavyGames > 0 && lightGames > 0 {
		if heavyRate > lightRate {
			trend = models.TrendUp
		} else if heavyRate < lightRate {
			trend = models.TrendDown
		}
	}

	return &models.SceneInsight{
		Summary: fmt.Sprintf("Objectives per game: %.1f turrets, %.1f dragons, %.1f barons.",
			float64(turrets)/games, float64(dragons)/games, float64(barons)/games),
		Details: details,
		Action:  "Shadow the jungler at dragon spawns - your win rate follows the objectives.",
		Metrics: []models.SceneMetric{
			{Label: "Turret kills", Value: turrets},
			{Label: "Dragon kills", Value: dragons},
			{Label: "Baron kills", Value: barons},
			{Label: "Objective damage/min", Value: round1(objDPM)},
			{Label: "Objective-heavy win rate", Value: round1(heavyRate), Unit: "%", Trend: trend},
		},
		Viz: &models.VizData{
			Kind: models.VizBar,
			Bar: &models.BarViz{
				Unit: "per game",
				Items: []models.BarItem{
					{Label: "Turrets", Value: round2(float64(turrets) / games)},
					{Label: "Dragons", Value: round2(float64(dragons) / games)},
					{Label: "Barons", Value: round2(float64(barons) / games)},
				},
			},
		},
	}, nil
}

func splitWinRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}
