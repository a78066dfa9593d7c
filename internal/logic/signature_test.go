package logic

import (
	"context"
	"testing"
	"time"

	"github.com/riftglance/insights-api/internal/models"
)

func TestSignatureStyleAggregateKDA(t *testing.T) {
	// Aggregate over three games: 15 kills, 8 deaths, 5 assists -> 2.5.
	records := []*models.MatchRecord{
		testMatch("NA1_1", date(time.February, 1), 1800, fullParticipant(testPUUID, "Ahri", 5, 2, 3, true)),
		testMatch("NA1_2", date(time.February, 8), 1800, fullParticipant(testPUUID, "Ahri", 0, 5, 0, false)),
		testMatch("NA1_3", date(time.February, 15), 1800, fullParticipant(testPUUID, "Ahri", 10, 1, 2, true)),
	}
	s := newTestScenes(sourceFor(records...), nil, nil)

	payload, err := s.Compute(context.Background(), "signature-style",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(records...), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	got := metricValue(t, payload.Insight.Metrics, "Average KDA")
	if got != 2.5 {
		t.Errorf("aggregate KDA: got %v, want 2.5", got)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Signature champion"); v != "Ahri" {
		t.Errorf("signature champion: got %v, want Ahri", v)
	}
}

func TestSignatureStyleAxesBounded(t *testing.T) {
	p := fullParticipant(testPUUID, "Jinx", 20, 1, 15, true)
	p.TotalDamageToChampions = 90000 // far past the 800/min axis ceiling
	p.VisionScore = 140
	p.TotalMinionsKilled = 400
	rec := testMatch("NA1_1", date(time.July, 4), 1200, p)
	s := newTestScenes(sourceFor(rec), nil, nil)

	payload, err := s.Compute(context.Background(), "signature-style",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(rec), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	radar := payload.Insight.Viz.Radar
	if radar == nil {
		t.Fatal("expected radar viz")
	}
	if len(radar.Axes) != 5 {
		t.Fatalf("expected 5 axes, got %d", len(radar.Axes))
	}
	for _, axis := range radar.Axes {
		if axis.Value < 0 || axis.Value > 100 {
			t.Errorf("axis %s out of range: %v", axis.Label, axis.Value)
		}
	}
}

func TestSignatureStyleRanksByGamesWithStableTies(t *testing.T) {
	records := []*models.MatchRecord{
		testMatch("NA1_1", date(time.March, 1), 1800, fullParticipant(testPUUID, "Lux", 2, 2, 2, true)),
		testMatch("NA1_2", date(time.March, 2), 1800, fullParticipant(testPUUID, "Ahri", 2, 2, 2, true)),
		testMatch("NA1_3", date(time.March, 3), 1800, fullParticipant(testPUUID, "Ahri", 2, 2, 2, false)),
		testMatch("NA1_4", date(time.March, 4), 1800, fullParticipant(testPUUID, "Lux", 2, 2, 2, false)),
	}
	s := newTestScenes(sourceFor(records...), nil, nil)

	payload, err := s.Compute(context.Background(), "signature-style",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(records...), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Equal games: the champion seen first in the fetched order wins.
	if v := metricValue(t, payload.Insight.Metrics, "Signature champion"); v != "Lux" {
		t.Errorf("tie break: got %v, want Lux", v)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Champion pool"); v != 2 {
		t.Errorf("champion pool: got %v, want 2", v)
	}
}

func metricValue(t *testing.T, metrics []models.SceneMetric, label string) any {
	t.Helper()
	for _, m := range metrics {
		if m.Label == label {
			return m.Value
		}
	}
	t.Fatalf("metric %q not found", label)
	return nil
}
