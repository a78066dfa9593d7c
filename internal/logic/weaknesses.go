package logic

import (
	"context"
	"fmt"
	"math"

	"github.com/riftglance/insights-api/internal/models"
)

// estimateDeathSeconds models time spent dead when the record carries no
// measured telemetry: the respawn timer grows with game length and caps
// at 60 seconds per death.
func estimateDeathSeconds(deaths int, gameDurationMinutes float64) float64 {
	perDeath := math.Min(15+gameDurationMinutes*1.5, 60)
	return perDeath * float64(deaths)
}

// computeWeaknesses analyzes death and survivability patterns. Values
// built from the heuristic model are tagged estimated so consumers can
// tell them from measured telemetry.
func (s *Scenes) computeWeaknesses(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	var (
		totalDeaths    int
		laneDeaths     int
		measuredDeadS  float64
		estimatedDeadS float64
		estimated      bool
		totalSeconds   int
		worstDeaths    int
		worstChampion  string
	)

	for _, rec := range set.records {
		p := rec.ParticipantByPUUID(sc.PUUID)
		totalDeaths += p.Deaths
		totalSeconds += rec.GameDuration

		if p.TotalTimeSpentDead > 0 {
			measuredDeadS += float64(p.TotalTimeSpentDead)
		} else if p.Deaths > 0 {
			estimatedDeadS += estimateDeathSeconds(p.Deaths, rec.DurationMinutes())
			estimated = true
		}

		if p.IsLaner() {
			laneDeaths += p.Deaths
		}

		// Strictly greater: first-encountered worst game wins ties.
		if p.Deaths > worstDeaths {
			worstDeaths = p.Deaths
			worstChampion = p.ChampionName
		}
	}

	games := set.processed()
	avgDeaths := float64(totalDeaths) / float64(games)
	totalDeadS := measuredDeadS + estimatedDeadS
	deadMinPerGame := totalDeadS / 60 / float64(games)
	deadShare := 0.0
	if totalSeconds > 0 {
		deadShare = totalDeadS / float64(totalSeconds) * 100
	}

	// The gank-attribution share is an unvalidated heuristic and always
	// reported as an estimate.
	gankDeaths := int(math.Round(float64(laneDeaths) * s.heuristics.GankDeathFraction))

	deadContext := ""
	if estimated {
		deadContext = models.MetricContextEstimated
	}

	details := []string{
		fmt.Sprintf("You averaged %.1f deaths per game over %d games.", avgDeaths, games),
		fmt.Sprintf("Roughly %.1f%% of your total game time was spent on the gray screen.", deadShare),
		fmt.Sprintf("About %d of your lane deaths look like gank pressure.", gankDeaths),
	}
	if worstDeaths > 0 {
		details = append(details, fmt.Sprintf("Your roughest game: %d deaths on %s.", worstDeaths, worstChampion))
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("You died %d times this year - %.1f per game.", totalDeaths, avgDeaths),
		Details: details,
		Action:  "Ward the river before the minute mark where you usually die.",
		Metrics: []models.SceneMetric{
			{Label: "Total deaths", Value: totalDeaths},
			{Label: "Deaths per game", Value: round2(avgDeaths)},
			{Label: "Minutes dead per game", Value: round1(deadMinPerGame), Unit: "min", Context: deadContext},
			{Label: "Gank-attributed deaths", Value: gankDeaths, Context: models.MetricContextEstimated},
		},
		Viz: &models.VizData{
			Kind: models.VizBar,
			Bar: &models.BarViz{
				Unit: "per game",
				Items: []models.BarItem{
					{Label: "Deaths", Value: round2(avgDeaths)},
					{Label: "Minutes dead", Value: round1(deadMinPerGame), Estimated: estimated},
					{Label: "Gank deaths (season)", Value: float64(gankDeaths), Estimated: true},
				},
			},
		},
	}, nil
}
