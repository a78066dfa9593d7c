package logic

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/riftglance/insights-api/internal/models"
)

func TestEstimateDeathSeconds(t *testing.T) {
	cases := []struct {
		deaths  int
		minutes float64
		want    float64
	}{
		{4, 20, 180},  // 15 + 20*1.5 = 45s per death
		{2, 40, 120},  // 15 + 60 = 75, capped at 60
		{1, 30, 60},   // exactly at the cap
		{0, 25, 0},
		{3, 0, 45},    // remake-length game still uses the base timer
	}
	for _, tc := range cases {
		if got := estimateDeathSeconds(tc.deaths, tc.minutes); got != tc.want {
			t.Errorf("estimateDeathSeconds(%d, %v): got %v, want %v", tc.deaths, tc.minutes, got, tc.want)
		}
	}
}

func TestWeaknessesEstimatedTagging(t *testing.T) {
	// No measured dead time on record, so the heuristic model kicks in:
	// 4 deaths in a 20 minute game is 180 estimated seconds.
	p := fullParticipant(testPUUID, "Yasuo", 2, 4, 1, false)
	p.TeamPosition = "MIDDLE"
	rec := testMatch("NA1_1", date(time.April, 2), 1200, p)
	s := newTestScenes(sourceFor(rec), nil, nil)

	payload, err := s.Compute(context.Background(), "weaknesses",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(rec), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, metric := range payload.Insight.Metrics {
		switch metric.Label {
		case "Minutes dead per game":
			if metric.Value != 3.0 {
				t.Errorf("minutes dead per game: got %v, want 3.0", metric.Value)
			}
			if metric.Context != models.MetricContextEstimated {
				t.Errorf("modeled dead time must carry the estimated tag, got %q", metric.Context)
			}
		case "Gank-attributed deaths":
			if metric.Context != models.MetricContextEstimated {
				t.Errorf("gank attribution must always carry the estimated tag, got %q", metric.Context)
			}
		}
	}

	bar := payload.Insight.Viz.Bar
	if bar == nil {
		t.Fatal("expected bar viz")
	}
	for _, item := range bar.Items {
		if item.Label == "Minutes dead" && !item.Estimated {
			t.Error("bar item for modeled dead time must be flagged estimated")
		}
	}
}

func TestWeaknessesMeasuredTelemetryNotTagged(t *testing.T) {
	p := fullParticipant(testPUUID, "Malphite", 1, 6, 4, false)
	p.TotalTimeSpentDead = 240
	rec := testMatch("NA1_1", date(time.April, 2), 1800, p)
	s := newTestScenes(sourceFor(rec), nil, nil)

	payload, err := s.Compute(context.Background(), "weaknesses",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(rec), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, metric := range payload.Insight.Metrics {
		if metric.Label != "Minutes dead per game" {
			continue
		}
		if metric.Value != 4.0 {
			t.Errorf("measured minutes dead: got %v, want 4.0", metric.Value)
		}
		if metric.Context != "" {
			t.Errorf("measured telemetry must not be tagged estimated, got %q", metric.Context)
		}
	}
}

func TestWeaknessesGankFractionConfigurable(t *testing.T) {
	p := fullParticipant(testPUUID, "Darius", 3, 10, 2, false)
	p.TeamPosition = "TOP"
	rec := testMatch("NA1_1", date(time.May, 5), 1500, p)

	s := NewScenes(Config{
		Matches:   sourceFor(rec),
		League:    &fakeLeagueSource{},
		Logger:    zap.NewNop(),
		BatchSize: 10,
		Pacing:    time.Millisecond,
		Heuristics: HeuristicConfig{
			GankDeathFraction: 0.5,
			LPPerWin:          22,
			LPPerLoss:         -18,
		},
	})

	payload, err := s.Compute(context.Background(), "weaknesses",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(rec), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Gank-attributed deaths"); v != 5 {
		t.Errorf("gank deaths with a 0.5 fraction of 10 lane deaths: got %v, want 5", v)
	}
}

func TestWeaknessesJungleDeathsNotLaneAttributed(t *testing.T) {
	p := fullParticipant(testPUUID, "Lee Sin", 4, 8, 9, true)
	p.TeamPosition = "JUNGLE"
	rec := testMatch("NA1_1", date(time.May, 6), 1500, p)
	s := newTestScenes(sourceFor(rec), nil, nil)

	payload, err := s.Compute(context.Background(), "weaknesses",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(rec), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Gank-attributed deaths"); v != 0 {
		t.Errorf("jungle deaths must not count as lane deaths: got %v gank deaths, want 0", v)
	}
}
