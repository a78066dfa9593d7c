package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/riftglance/insights-api/internal/models"
)

const maxRecentSharedGames = 5

type allyAgg struct {
	key       string
	name      string
	firstSeen int
	games     int
	wins      int
	champions []string
	recent    []string
}

func (a *allyAgg) addChampion(name string) {
	for _, c := range a.champions {
		if c == name {
			return
		}
	}
	a.champions = append(a.champions, name)
}

// allyTier classifies a relationship by games played together, with
// inclusive thresholds.
func allyTier(games int) string {
	switch {
	case games >= 50:
		return "Inseparable Duo"
	case games >= 20:
		return "Trusted Partner"
	case games >= 10:
		return "Regular Duo"
	case games >= 5:
		return "Frequent Ally"
	default:
		return "Acquaintance"
	}
}

// computeAllies extracts teammate co-occurrence. The target's team comes
// from the explicit team id when present, otherwise from matching the
// win/loss outcome.
func (s *Scenes) computeAllies(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	byAlly := make(map[string]*allyAgg)
	for _, rec := range set.records {
		target := rec.ParticipantByPUUID(sc.PUUID)

		for i := range rec.Participants {
			q := &rec.Participants[i]
			if q.PUUID == sc.PUUID || q.Kind != models.ParticipantFull {
				continue
			}

			sameTeam := false
			if target.TeamID > 0 && q.TeamID > 0 {
				sameTeam = q.TeamID == target.TeamID
			} else {
				sameTeam = q.Win == target.Win
			}
			if !sameTeam {
				continue
			}

			key := q.PUUID
			if key == "" {
				key = q.RiotIDName
			}
			agg, ok := byAlly[key]
			if !ok {
				agg = &allyAgg{key: key, name: q.RiotIDName, firstSeen: len(byAlly)}
				byAlly[key] = agg
			}
			agg.games++
			if target.Win {
				agg.wins++
			}
			agg.addChampion(q.ChampionName)
			// Match ids arrive newest first, so the first five shared
			// games are the most recent ones.
			if len(agg.recent) < maxRecentSharedGames {
				agg.recent = append(agg.recent, rec.MatchID)
			}
		}
	}

	if len(byAlly) == 0 {
		// Distinct solo-player fallback, not an error.
		return &models.SceneInsight{
			Summary: "A lone wolf season - no recurring teammates found.",
			Details: appendCoverage([]string{
				fmt.Sprintf("None of your %d analyzed games shared a teammate we could identify.", set.processed()),
			}, set),
			Action:  "Queue with a friend and see what a duo does for your win rate.",
			Metrics: []models.SceneMetric{
				{Label: "Matches analyzed", Value: set.processed()},
				{Label: "Recurring teammates", Value: 0},
			},
			Viz: &models.VizData{
				Kind:      models.VizHighlight,
				Highlight: &models.HighlightViz{Title: "Solo Player", Subtitle: "Every game on your own terms"},
			},
		}, nil
	}

	ranked := make([]*allyAgg, 0, len(byAlly))
	for _, agg := range byAlly {
		ranked = append(ranked, agg)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].games != ranked[j].games {
			return ranked[i].games > ranked[j].games
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})

	top := ranked[0]
	winRate := round2(float64(top.wins) / float64(top.games) * 100)
	tier := allyTier(top.games)

	details := []string{
		fmt.Sprintf("You and %s played %d games together and won %d of them (%.2f%%).",
			top.name, top.games, top.wins, winRate),
		fmt.Sprintf("That makes them your %q.", tier),
	}
	if len(ranked) > 1 {
		details = append(details, fmt.Sprintf("Runner-up: %s with %d shared games.", ranked[1].name, ranked[1].games))
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("%s is your %s: %d games side by side.", top.name, tier, top.games),
		Details: details,
		Action:  "Lock in a duo session with your top ally this week.",
		Metrics: []models.SceneMetric{
			{Label: "Top ally", Value: top.name},
			{Label: "Games together", Value: top.games},
			{Label: "Duo win rate", Value: winRate, Unit: "%"},
			{Label: "Relationship", Value: tier},
			{Label: "Recurring teammates", Value: len(ranked)},
		},
		Viz: &models.VizData{
			Kind: models.VizHighlight,
			Highlight: &models.HighlightViz{
				Title:     top.name,
				Subtitle:  "Your most frequent teammate",
				Tier:      tier,
				Games:     top.games,
				Wins:      top.wins,
				WinRate:   winRate,
				Champions: top.champions,
				RecentIDs: top.recent,
			},
		},
	}, nil
}
