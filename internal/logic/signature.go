package logic

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/riftglance/insights-api/internal/models"
)

// Fixed per-axis denominators so radar axes stay comparable regardless
// of raw units. Each raw value maps to min(raw/denominator*100, 100).
const (
	axisKDADenom      = 5.0   // avg KDA of 5 fills the axis
	axisDamageDenom   = 800.0 // damage to champions per minute
	axisVisionDenom   = 60.0  // avg vision score per game
	axisCSPerMinDenom = 10.0  // creeps per minute
)

type championAgg struct {
	name      string
	firstSeen int
	games     int
	wins      int
	kills     int
	deaths    int
	assists   int
	damage    int
	gold      int
	vision    int
	cs        int
	seconds   int
}

// computeSignatureStyle ranks champions by games played and emits a
// fixed-size radar profile for the most-played one.
func (s *Scenes) computeSignatureStyle(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	byChampion := make(map[string]*championAgg)
	for _, rec := range set.records {
		p := rec.ParticipantByPUUID(sc.PUUID)
		agg, ok := byChampion[p.ChampionName]
		if !ok {
			agg = &championAgg{name: p.ChampionName, firstSeen: len(byChampion)}
			byChampion[p.ChampionName] = agg
		}
		agg.games++
		if p.Win {
			agg.wins++
		}
		agg.kills += p.Kills
		agg.deaths += p.Deaths
		agg.assists += p.Assists
		agg.damage += p.TotalDamageToChampions
		agg.gold += p.GoldEarned
		agg.vision += p.VisionScore
		agg.cs += p.CS()
		agg.seconds += rec.GameDuration
	}

	ranked := make([]*championAgg, 0, len(byChampion))
	for _, agg := range byChampion {
		ranked = append(ranked, agg)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].games != ranked[j].games {
			return ranked[i].games > ranked[j].games
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})

	top := ranked[0]
	minutes := float64(top.seconds) / 60
	winRate := float64(top.wins) / float64(top.games) * 100
	avgKDA := kdaOf(top.kills, top.deaths, top.assists)
	dpm := 0.0
	csPerMin := 0.0
	if minutes > 0 {
		dpm = float64(top.damage) / minutes
		csPerMin = float64(top.cs) / minutes
	}
	avgVision := float64(top.vision) / float64(top.games)

	axes := []models.RadarAxis{
		{Label: "Win rate", Value: round1(winRate), Raw: round1(winRate)},
		{Label: "KDA", Value: axisValue(avgKDA, axisKDADenom), Raw: round2(avgKDA)},
		{Label: "Damage/min", Value: axisValue(dpm, axisDamageDenom), Raw: round1(dpm)},
		{Label: "Vision", Value: axisValue(avgVision, axisVisionDenom), Raw: round1(avgVision)},
		{Label: "CS/min", Value: axisValue(csPerMin, axisCSPerMinDenom), Raw: round1(csPerMin)},
	}

	specialization := float64(top.games) / float64(set.processed()) * 100

	details := []string{
		fmt.Sprintf("%s carried %.0f%% of your games this year.", top.name, specialization),
	}
	if len(ranked) > 1 {
		details = append(details, fmt.Sprintf("Your second pick was %s with %d games.",
			ranked[1].name, ranked[1].games))
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("%s is your signature champion: %d games at %.1f%% win rate.",
			top.name, top.games, winRate),
		Details: details,
		Action:  "Double down on your signature pick in ranked, or branch out in normals.",
		Metrics: []models.SceneMetric{
			{Label: "Signature champion", Value: top.name},
			{Label: "Games", Value: top.games},
			{Label: "Win rate", Value: round1(winRate), Unit: "%"},
			{Label: "Average KDA", Value: round2(avgKDA)},
			{Label: "Champion pool", Value: len(ranked)},
		},
		Viz: &models.VizData{
			Kind:  models.VizRadar,
			Radar: &models.RadarViz{Subject: top.name, Axes: axes},
		},
	}, nil
}

// axisValue normalizes a raw value into the 0-100 axis scale.
func axisValue(raw, denom float64) float64 {
	return round1(math.Min(raw/denom*100, 100))
}
