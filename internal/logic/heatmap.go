package logic

import (
	"context"
	"fmt"

	"github.com/riftglance/insights-api/internal/models"
)

// computeYearInMotion buckets play time into calendar months. All twelve
// months are always emitted; months without games carry nil hours and
// matches so "no games" stays distinguishable from "zero-duration games".
func (s *Scenes) computeYearInMotion(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	var monthSeconds [12]int
	var monthMatches [12]int
	totalSeconds := 0

	type bestGame struct {
		matchID  string
		champion string
		kda      float64
		kills    int
		deaths   int
		assists  int
		win      bool
	}
	var best *bestGame

	for _, rec := range set.records {
		m := int(rec.GameCreation.Month()) - 1
		monthSeconds[m] += rec.GameDuration
		monthMatches[m]++
		totalSeconds += rec.GameDuration

		p := rec.ParticipantByPUUID(sc.PUUID)
		kda := p.KDA()
		// Strictly greater only: the first-encountered maximum wins ties.
		if best == nil || kda > best.kda {
			best = &bestGame{
				matchID:  rec.MatchID,
				champion: p.ChampionName,
				kda:      kda,
				kills:    p.Kills,
				deaths:   p.Deaths,
				assists:  p.Assists,
				win:      p.Win,
			}
		}
	}

	maxHours := 0.0
	for i := 0; i < 12; i++ {
		if monthMatches[i] > 0 {
			if h := float64(monthSeconds[i]) / 3600; h > maxHours {
				maxHours = h
			}
		}
	}

	cells := make([]models.MonthCell, 12)
	peakIdx := -1
	peakHours := 0.0
	for i := 0; i < 12; i++ {
		cell := models.MonthCell{Month: monthShort[i]}
		if monthMatches[i] > 0 {
			h := float64(monthSeconds[i]) / 3600
			hours := round1(h)
			matches := monthMatches[i]
			cell.Hours = &hours
			cell.Matches = &matches
			if maxHours > 0 {
				cell.Intensity = round2(h / maxHours)
			}
			if peakIdx == -1 || h > peakHours {
				peakIdx = i
				peakHours = h
			}
		}
		cells[i] = cell
	}

	totalHours := round1(float64(totalSeconds) / 3600)
	peakMonth := ""
	if peakIdx >= 0 {
		peakMonth = monthShort[peakIdx]
	}

	details := []string{
		fmt.Sprintf("Your busiest month was %s with %.1f hours on the Rift.", peakMonth, peakHours),
	}
	if best != nil {
		result := "loss"
		if best.win {
			result = "win"
		}
		details = append(details, fmt.Sprintf("Best game: %d/%d/%d on %s (%.1f KDA, %s).",
			best.kills, best.deaths, best.assists, best.champion, best.kda, result))
	}
	details = appendCoverage(details, set)

	metrics := []models.SceneMetric{
		{Label: "Total hours", Value: totalHours, Unit: "h"},
		{Label: "Matches", Value: set.processed()},
		{Label: "Peak month", Value: peakMonth},
	}
	if best != nil {
		metrics = append(metrics, models.SceneMetric{
			Label:   "Best game KDA",
			Value:   round2(best.kda),
			Context: best.champion,
		})
	}

	return &models.SceneInsight{
		Summary: fmt.Sprintf("You spent %.1f hours across %d matches this year, peaking in %s.",
			totalHours, set.processed(), peakMonth),
		Details: details,
		Action:  "Look at your quiet months - was that burnout or balance?",
		Metrics: metrics,
		Viz: &models.VizData{
			Kind:    models.VizHeatmap,
			Heatmap: &models.HeatmapViz{Months: cells, PeakMonth: peakMonth},
		},
	}, nil
}
