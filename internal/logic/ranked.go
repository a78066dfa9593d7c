package logic

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/riftglance/insights-api/internal/models"
)

// gamesNeededSentinel is reported when the estimated net LP per game is
// not positive: the projection is open-ended, never infinite or
// negative.
const gamesNeededSentinel = "100+"

// Solo and flex ranked queue ids.
const (
	queueRankedSolo = 420
	queueRankedFlex = 440
)

// computeRankedJourney estimates progress toward the next ladder
// milestone from the player's current standing plus their season's
// ranked games.
func (s *Scenes) computeRankedJourney(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	rankedGames, rankedWins := 0, 0
	for _, rec := range set.records {
		if rec.QueueID != queueRankedSolo && rec.QueueID != queueRankedFlex {
			continue
		}
		rankedGames++
		if rec.ParticipantByPUUID(sc.PUUID).Win {
			rankedWins++
		}
	}

	entries, err := s.league.GetLeagueEntries(ctx, sc.PUUID)
	if err != nil {
		return nil, fmt.Errorf("league lookup: %w", err)
	}

	var entry *models.LeagueEntry
	for _, e := range entries {
		if e.QueueType == "RANKED_SOLO_5x5" {
			entry = &models.LeagueEntry{
				QueueType: e.QueueType, Tier: e.Tier, Rank: e.Rank,
				LeaguePoints: e.LeaguePoints, Wins: e.Wins, Losses: e.Losses,
			}
			break
		}
	}
	if entry == nil && len(entries) > 0 {
		e := entries[0]
		entry = &models.LeagueEntry{
			QueueType: e.QueueType, Tier: e.Tier, Rank: e.Rank,
			LeaguePoints: e.LeaguePoints, Wins: e.Wins, Losses: e.Losses,
		}
	}

	if entry == nil {
		return &models.SceneInsight{
			Summary: "Unranked this season - the ladder is still waiting for you.",
			Details: appendCoverage([]string{
				fmt.Sprintf("You played %d ranked games but have no standing on record.", rankedGames),
			}, set),
			Action:  "Finish your placement games to get a rank.",
			Metrics: []models.SceneMetric{},
		}, nil
	}

	totalRanked := entry.Wins + entry.Losses
	winRate := 0.0
	if totalRanked > 0 {
		winRate = float64(entry.Wins) / float64(totalRanked)
	}

	pointsToNext := 100 - entry.LeaguePoints
	if pointsToNext < 0 {
		pointsToNext = 0
	}

	// netPointsPerGame is built from configurable per-game LP estimates;
	// both are unvalidated heuristics.
	net := s.heuristics.LPPerWin*winRate + s.heuristics.LPPerLoss*(1-winRate)
	gamesNeeded := gamesNeededSentinel
	if net > 0 {
		gamesNeeded = strconv.Itoa(int(math.Ceil(float64(pointsToNext) / net)))
	}

	current := fmt.Sprintf("%s %s %d LP", entry.Tier, entry.Rank, entry.LeaguePoints)
	target := models.NextMilestone(entry.Tier, entry.Rank)

	details := []string{
		fmt.Sprintf("Your ranked record stands at %dW-%dL (%.1f%% win rate).",
			entry.Wins, entry.Losses, winRate*100),
		fmt.Sprintf("At your current pace you gain about %.1f LP per game played.", net),
	}
	if gamesNeeded == gamesNeededSentinel {
		details = append(details, "Your win rate is below break-even, so the projection is open-ended.")
	} else {
		details = append(details, fmt.Sprintf("Roughly %s more wins' worth of games to reach %s.", gamesNeeded, target))
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("You are %s, %d LP from %s.", current, pointsToNext, target),
		Details: details,
		Action:  "Play your signature champion in ranked while the projection is in your favor.",
		Metrics: []models.SceneMetric{
			{Label: "Current rank", Value: current},
			{Label: "Next milestone", Value: target},
			{Label: "Win rate", Value: round1(winRate * 100), Unit: "%"},
			{Label: "Games needed", Value: gamesNeeded, Context: models.MetricContextEstimated},
			{Label: "Ranked games this season", Value: rankedGames},
			{Label: "Ranked wins this season", Value: rankedWins},
		},
		Viz: &models.VizData{
			Kind: models.VizGoal,
			Goal: &models.GoalViz{
				Current:     current,
				Target:      target,
				CurrentLP:   entry.LeaguePoints,
				PointsToGo:  pointsToNext,
				GamesNeeded: gamesNeeded,
				Progress:    float64(entry.LeaguePoints),
			},
		},
	}, nil
}
