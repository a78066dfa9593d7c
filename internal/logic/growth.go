package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/riftglance/insights-api/internal/models"
)

// Trend classifications.
const (
	trendImproving  = "Improving"
	trendDeclining  = "Declining"
	trendConsistent = "Consistent"
)

// trendThresholdPct is the half-over-half change, in percent, that a
// metric must exceed to count as a real trend rather than noise.
const trendThresholdPct = 10.0

type monthlyAgg struct {
	key     int // year*100 + month
	games   int
	wins    int
	damage  int
	gold    int
	seconds int
}

// computeGrowth buckets damage, gold and win outcome by month, splits
// the chronological series into two halves and classifies the overall
// trend against a ±10% threshold.
func (s *Scenes) computeGrowth(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error) {
	set, err := s.collectRecords(ctx, sc)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]*monthlyAgg)
	for _, rec := range set.records {
		key := rec.GameCreation.Year()*100 + int(rec.GameCreation.Month())
		agg, ok := byMonth[key]
		if !ok {
			agg = &monthlyAgg{key: key}
			byMonth[key] = agg
		}
		p := rec.ParticipantByPUUID(sc.PUUID)
		agg.games++
		if p.Win {
			agg.wins++
		}
		agg.damage += p.TotalDamageToChampions
		agg.gold += p.GoldEarned
		agg.seconds += rec.GameDuration
	}

	months := make([]*monthlyAgg, 0, len(byMonth))
	for _, agg := range byMonth {
		months = append(months, agg)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].key < months[j].key })

	dmgSeries := make([]float64, len(months))
	goldSeries := make([]float64, len(months))
	winSeries := make([]float64, len(months))
	for i, m := range months {
		minutes := float64(m.seconds) / 60
		if minutes > 0 {
			dmgSeries[i] = float64(m.damage) / minutes
			goldSeries[i] = float64(m.gold) / minutes
		}
		winSeries[i] = float64(m.wins) / float64(m.games) * 100
	}

	dmgChange := halfOverHalfChange(dmgSeries)
	goldChange := halfOverHalfChange(goldSeries)
	winChange := halfOverHalfChange(winSeries)

	overallChange := (dmgChange + goldChange + winChange) / 3
	classification := classifyChange(overallChange)
	if len(months) < 2 {
		classification = trendConsistent
	}

	lines := []models.LineSeries{
		{Name: "Damage/min", Points: seriesPoints(months, dmgSeries)},
		{Name: "Gold/min", Points: seriesPoints(months, goldSeries)},
		{Name: "Win rate", Points: seriesPoints(months, winSeries)},
	}

	details := []string{
		fmt.Sprintf("Damage per minute moved %+.1f%% between the two halves of your season.", dmgChange),
		fmt.Sprintf("Gold per minute moved %+.1f%%, win rate %+.1f%%.", goldChange, winChange),
	}
	if len(months) < 2 {
		details = append(details, "Not enough monthly history to call a trend yet.")
	}
	details = appendCoverage(details, set)

	return &models.SceneInsight{
		Summary: fmt.Sprintf("Your season reads as %s.", classification),
		Details: details,
		Action:  "Pick the metric moving the wrong way and make it the focus of your next ten games.",
		Metrics: []models.SceneMetric{
			{Label: "Trend", Value: classification},
			{Label: "Damage/min change", Value: round1(dmgChange), Unit: "%", Trend: changeTrend(dmgChange)},
			{Label: "Gold/min change", Value: round1(goldChange), Unit: "%", Trend: changeTrend(goldChange)},
			{Label: "Win rate change", Value: round1(winChange), Unit: "%", Trend: changeTrend(winChange)},
		},
		Viz: &models.VizData{
			Kind: models.VizLine,
			Line: &models.LineViz{Series: lines, Classification: classification},
		},
	}, nil
}

// halfOverHalfChange splits a chronological series into two halves and
// returns the percentage change between their averages.
func halfOverHalfChange(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	mid := len(series) / 2
	first := mean(series[:mid])
	second := mean(series[mid:])
	if first == 0 {
		return 0
	}
	return (second - first) / first * 100
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func classifyChange(changePct float64) string {
	switch {
	case changePct > trendThresholdPct:
		return trendImproving
	case changePct < -trendThresholdPct:
		return trendDeclining
	default:
		return trendConsistent
	}
}

func changeTrend(changePct float64) models.Trend {
	switch {
	case changePct > trendThresholdPct:
		return models.TrendUp
	case changePct < -trendThresholdPct:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}

func seriesPoints(months []*monthlyAgg, vals []float64) []models.LinePoint {
	points := make([]models.LinePoint, len(months))
	for i, m := range months {
		points[i] = models.LinePoint{
			X: fmt.Sprintf("%04d-%02d", m.key/100, m.key%100),
			Y: round1(vals[i]),
		}
	}
	return points
}
