package logic

import (
	"context"
	"testing"
	"time"

	"github.com/riftglance/insights-api/internal/models"
)

func TestMultikillHistory(t *testing.T) {
	p1 := fullParticipant(testPUUID, "Katarina", 15, 4, 6, true)
	p1.DoubleKills = 3
	p1.TripleKills = 1
	p1.PentaKills = 1
	p2 := fullParticipant(testPUUID, "Ahri", 6, 2, 8, true)
	p2.DoubleKills = 1
	p2.QuadraKills = 1
	records := []*models.MatchRecord{
		testMatch("NA1_1", date(time.July, 1), 1800, p1),
		testMatch("NA1_2", date(time.July, 8), 1800, p2),
	}
	s := newTestScenes(sourceFor(records...), nil, nil)

	payload, err := s.Compute(context.Background(), "multikill-history",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(records...), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if v := metricValue(t, payload.Insight.Metrics, "Total multikills"); v != 7 {
		t.Errorf("total multikills: got %v, want 7", v)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Penta kills"); v != 1 {
		t.Errorf("penta kills: got %v, want 1", v)
	}

	badge := payload.Insight.Viz.Badge
	if badge == nil {
		t.Fatal("expected badge viz")
	}
	if len(badge.Badges) != 4 {
		t.Fatalf("expected 4 badges, got %d", len(badge.Badges))
	}
	for _, b := range badge.Badges {
		if b.Label == "Penta Kill" && b.Context != "Katarina" {
			t.Errorf("penta badge must name the champion that scored it, got %q", b.Context)
		}
	}
}

func TestMultikillHistoryNoneScored(t *testing.T) {
	rec := testMatch("NA1_1", date(time.July, 1), 1800, fullParticipant(testPUUID, "Soraka", 0, 3, 22, true))
	s := newTestScenes(sourceFor(rec), nil, nil)

	payload, err := s.Compute(context.Background(), "multikill-history",
		SceneContext{PUUID: testPUUID, MatchIDs: idsOf(rec), Season: 2025})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v := metricValue(t, payload.Insight.Metrics, "Total multikills"); v != 0 {
		t.Errorf("total multikills: got %v, want 0", v)
	}
}
