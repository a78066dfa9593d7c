package logic

import (
	"context"
	"testing"
	"time"

	"github.com/riftglance/insights-api/internal/models"
)

func TestHalfOverHalfChange(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"doubling", []float64{100, 200}, 100},
		{"flat", []float64{100, 100, 100, 100}, 0},
		{"decline", []float64{200, 200, 100, 100}, -50},
		{"single point", []float64{42}, 0},
		{"zero first half", []float64{0, 50}, 0},
	}
	for _, tc := range cases {
		if got := halfOverHalfChange(tc.series); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClassifyChange(t *testing.T) {
	cases := []struct {
		change float64
		want   string
	}{
		{15, trendImproving},
		{10.1, trendImproving},
		{10, trendConsistent},
		{0, trendConsistent},
		{-10, trendConsistent},
		{-10.1, trendDeclining},
		{-40, trendDeclining},
	}
	for _, tc := range cases {
		if got := classifyChange(tc.change); got != tc.want {
			t.Errorf("classifyChange(%v): got %v, want %v", tc.change, got, tc.want)
		}
	}
}

func growthMatch(id string, month time.Month, damage, gold int, win bool) *models.MatchRecord {
	p := fullParticipant(testPUUID, "Ahri", 5, 3, 5, win)
	p.TotalDamageToChampions = damage
	p.GoldEarned = gold
	return testMatch(id, date(month, 10), 600, p)
}

func TestGrowthImprovingSeason(t *testing.T) {
	// Second half of the season roughly doubles both rates.
	records := []*models.MatchRecord{
		growthMatch("NA1_1", time.January, 5000, 6000, false),
		growthMatch("NA1_2", time.February, 5000, 6000, false),
		growthMatch("NA1_3", time.October, 10000, 12000, true),
		growthMatch("NA1_4", time.November, 10000, 12000, true),
	}
	s := newTestScenes(sourceFor(records...), nil, nil)

	payload, err := s.Compute(context.Background(), "growth",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(records...), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if v := metricValue(t, payload.Insight.Metrics, "Trend"); v != trendImproving {
		t.Errorf("trend: got %v, want %v", v, trendImproving)
	}
	line := payload.Insight.Viz.Line
	if line == nil {
		t.Fatal("expected line viz")
	}
	if line.Classification != trendImproving {
		t.Errorf("classification: got %v, want %v", line.Classification, trendImproving)
	}
	if len(line.Series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(line.Series))
	}
	for _, series := range line.Series {
		if len(series.Points) != 4 {
			t.Errorf("series %s: expected 4 monthly points, got %d", series.Name, len(series.Points))
		}
	}
	if x := line.Series[0].Points[0].X; x != "2025-01" {
		t.Errorf("first point label: got %q, want 2025-01", x)
	}
}

func TestGrowthDecliningSeason(t *testing.T) {
	records := []*models.MatchRecord{
		growthMatch("NA1_1", time.January, 12000, 12000, true),
		growthMatch("NA1_2", time.February, 12000, 12000, true),
		growthMatch("NA1_3", time.October, 5000, 5000, false),
		growthMatch("NA1_4", time.November, 5000, 5000, false),
	}
	s := newTestScenes(sourceFor(records...), nil, nil)

	payload, err := s.Compute(context.Background(), "growth",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(records...), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Trend"); v != trendDeclining {
		t.Errorf("trend: got %v, want %v", v, trendDeclining)
	}
}

func TestGrowthSingleMonthIsConsistent(t *testing.T) {
	records := []*models.MatchRecord{
		growthMatch("NA1_1", time.June, 9000, 9000, true),
		growthMatch("NA1_2", time.June, 3000, 3000, false),
	}
	s := newTestScenes(sourceFor(records...), nil, nil)

	payload, err := s.Compute(context.Background(), "growth",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(records...), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Trend"); v != trendConsistent {
		t.Errorf("trend with one month of history: got %v, want %v", v, trendConsistent)
	}
}
