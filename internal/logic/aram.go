package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/riftglance/insights-api/internal/models"
)

// computeARAM carves the ARAM subset out of the year and reports it
// separately from ranked and normal modes.
func (s *Scenes) computeARAM(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	var aram []*models.MatchRecord
	for _, rec := range set.records {
		if rec.GameMode == "ARAM" {
			aram = append(aram, rec)
		}
	}

	if len(aram) == 0 {
		return &models.SceneInsight{
			Summary: "The Howling Abyss never saw you this year.",
			Details: appendCoverage([]string{
				fmt.Sprintf("None of your %d analyzed games were ARAM.", set.processed()),
			}, set),
			Action:  "Queue one ARAM to roll a champion you would never pick.",
			Metrics: []models.SceneMetric{},
		}, nil
	}

	var wins, kills, deaths, assists int
	byChampion := make(map[string]int)
	championOrder := []string{}
	for _, rec := range aram {
		p := rec.ParticipantByPUUID(sc.PUUID)
		if p.Win {
			wins++
		}
		kills += p.Kills
		deaths += p.Deaths
		assists += p.Assists
		if _, seen := byChampion[p.ChampionName]; !seen {
			championOrder = append(championOrder, p.ChampionName)
		}
		byChampion[p.ChampionName]++
	}

	sort.SliceStable(championOrder, func(i, j int) bool {
		return byChampion[championOrder[i]] > byChampion[championOrder[j]]
	})
	topChampion := championOrder[0]

	games := len(aram)
	winRate := float64(wins) / float64(games) * 100
	kda := kdaOf(kills, deaths, assists)

	stats := []models.SceneMetric{
		{Label: "ARAM games", Value: games},
		{Label: "Win rate", Value: round1(winRate), Unit: "%"},
		{Label: "Aggregate KDA", Value: round2(kda)},
		{Label: "Most rolled", Value: topChampion},
	}

	details := []string{
		fmt.Sprintf("%d ARAM games with a %.1f%% win rate.", games, winRate),
		fmt.Sprintf("The bridge kept handing you %s (%d times).", topChampion, byChampion[topChampion]),
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("%d trips down the Howling Abyss.", games),
		Details: details,
		Action:  "ARAM is your low-stakes lab - practice teamfighting there.",
		Metrics: stats,
		Viz: &models.VizData{
			Kind:        models.VizInfographic,
			Infographic: &models.InfographicViz{Stats: stats},
		},
	}, nil
}
