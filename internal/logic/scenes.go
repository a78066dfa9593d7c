// Package logic computes the insight scenes: a registry of analyzers,
// each a pure function over a player id and a match id list, fed by the
// cache-first fetcher through the bounded mapper. Every compute path
// ends in a valid ScenePayload; nothing here propagates a fault to the
// orchestration layer.
package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/riftglance/insights-api/internal/cache"
	"github.com/riftglance/insights-api/internal/models"
	"github.com/riftglance/insights-api/internal/worker"
)

// ErrNoMatchData signals zero usable records for the target player;
// converted to a scene-specific no-data payload, never surfaced.
var ErrNoMatchData = errors.New("no match data for player")

// ErrUnknownScene is returned for scene ids absent from the registry.
var ErrUnknownScene = errors.New("unknown scene")

// SceneContext is the single input every analyzer consumes.
type SceneContext struct {
	PUUID    string
	MatchIDs []string
	Season   int
}

// HeuristicConfig exposes the unvalidated heuristic constants as
// configuration rather than baking them into the algorithms.
type HeuristicConfig struct {
	// GankDeathFraction is the share of a laner's deaths attributed to
	// gank pressure.
	GankDeathFraction float64
	// LPPerWin / LPPerLoss estimate the ladder points gained per win and
	// lost per loss (LPPerLoss is negative).
	LPPerWin  float64
	LPPerLoss float64
}

func defaultHeuristics() HeuristicConfig {
	return HeuristicConfig{
		GankDeathFraction: 0.35,
		LPPerWin:          22,
		LPPerLoss:         -18,
	}
}

type Config struct {
	Matches  MatchSource
	League   LeagueSource
	Insights cache.Store
	Logger   *zap.Logger

	// Mapper tuning shared by all scenes.
	BatchSize int
	Pacing    time.Duration

	InsightTTL time.Duration
	Heuristics HeuristicConfig
}

// Scenes owns the registry and runs scene computations.
type Scenes struct {
	registry   *Registry
	matches    MatchSource
	league     LeagueSource
	insights   cache.Store
	logger     *zap.SugaredLogger
	batchSize  int
	pacing     time.Duration
	insightTTL time.Duration
	heuristics HeuristicConfig
}

func NewScenes(cfg Config) *Scenes {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.Pacing <= 0 {
		cfg.Pacing = 100 * time.Millisecond
	}
	if cfg.InsightTTL <= 0 {
		cfg.InsightTTL = time.Hour
	}
	if cfg.Heuristics == (HeuristicConfig{}) {
		cfg.Heuristics = defaultHeuristics()
	}

	s := &Scenes{
		registry:   NewRegistry(),
		matches:    cfg.Matches,
		league:     cfg.League,
		insights:   cfg.Insights,
		logger:     cfg.Logger.Sugar(),
		batchSize:  cfg.BatchSize,
		pacing:     cfg.Pacing,
		insightTTL: cfg.InsightTTL,
		heuristics: cfg.Heuristics,
	}

	// Canonical presentation order.
	defs := []SceneDefinition{
		{ID: "year-in-motion", Label: "Year in Motion", Kind: models.VizHeatmap, Compute: s.computeYearInMotion},
		{ID: "signature-style", Label: "Signature Style", Kind: models.VizRadar, Compute: s.computeSignatureStyle},
		{ID: "growth", Label: "Growth Over Time", Kind: models.VizLine, Compute: s.computeGrowth},
		{ID: "weaknesses", Label: "Weaknesses", Kind: models.VizBar, Compute: s.computeWeaknesses},
		{ID: "allies", Label: "Allies", Kind: models.VizHighlight, Compute: s.computeAllies},
		{ID: "ranked-journey", Label: "Ranked Journey", Kind: models.VizGoal, Compute: s.computeRankedJourney},
		{ID: "multikill-history", Label: "Multikill History", Kind: models.VizBadge, Compute: s.computeMultikills},
		{ID: "objective-control", Label: "Objective Control", Kind: models.VizBar, Compute: s.computeObjectives},
		{ID: "vision-watch", Label: "Vision Watch", Kind: models.VizInfographic, Compute: s.computeVision},
		{ID: "aram-corner", Label: "ARAM Corner", Kind: models.VizInfographic, Compute: s.computeARAM},
	}
	for _, def := range defs {
		if err := s.registry.Register(def); err != nil {
			panic(err) // duplicate ids in the static table are a programming error
		}
	}

	return s
}

// SceneSummary is the listScenes surface consumed by the orchestration
// layer.
type SceneSummary struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Kind  models.VizKind `json:"visualization"`
}

// List returns all scenes in canonical order.
func (s *Scenes) List() []SceneSummary {
	defs := s.registry.All()
	out := make([]SceneSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, SceneSummary{ID: def.ID, Label: def.Label, Kind: def.Kind})
	}
	return out
}

// Compute runs one scene. The only possible error is ErrUnknownScene;
// analyzer faults become fallback payloads. Completed payloads are
// memoized by (puuid, sceneID, season) fingerprint.
func (s *Scenes) Compute(ctx context.Context, sceneID string, sc SceneContext) (models.ScenePayload, error) {
	def, ok := s.registry.Get(sceneID)
	if !ok {
		return models.ScenePayload{}, fmt.Errorf("%w: %s", ErrUnknownScene, sceneID)
	}

	key := cache.InsightKey(Fingerprint(sc.PUUID, sceneID, sc.Season))
	if s.insights != nil {
		if data, hit, err := s.insights.Get(ctx, key); err == nil && hit {
			var cached models.ScenePayload
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	payload := s.safeCompute(ctx, def, sc)

	if s.insights != nil {
		if data, err := json.Marshal(payload); err == nil {
			if err := s.insights.Set(ctx, key, data, s.insightTTL); err != nil {
				s.logger.Warnw("Insight cache write failed", "scene", sceneID, "error", err)
			}
		}
	}

	return payload, nil
}

// ComputeAll runs every registered scene concurrently; scenes are
// independent, so one scene's fallback never affects another. Results
// follow the canonical order.
func (s *Scenes) ComputeAll(ctx context.Context, sc SceneContext) []models.ScenePayload {
	defs := s.registry.All()
	payloads := make([]models.ScenePayload, len(defs))

	g, ctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			p, err := s.Compute(ctx, def.ID, sc)
			if err == nil {
				payloads[i] = p
			}
			return nil
		})
	}
	g.Wait()

	return payloads
}

// safeCompute is the analyzer failure boundary: empty input and
// zero-coverage become no-data payloads, anything unexpected becomes the
// generic error payload. It never raises.
func (s *Scenes) safeCompute(ctx context.Context, def *SceneDefinition, sc SceneContext) (payload models.ScenePayload) {
	payload = models.ScenePayload{SceneID: def.ID, Kind: def.Kind}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("Scene computation panicked", "scene", def.ID, "panic", r)
			payload.Insight = errorInsight(def)
		}
	}()

	if len(sc.MatchIDs) == 0 {
		payload.Insight = noDataInsight(def)
		return payload
	}

	insight, err := def.Compute(ctx, &sc)
	switch {
	case errors.Is(err, ErrNoMatchData):
		payload.Insight = noDataInsight(def)
	case err != nil:
		s.logger.Errorw("Scene computation failed", "scene", def.ID, "error", err)
		payload.Insight = errorInsight(def)
	default:
		if insight.Metrics == nil {
			insight.Metrics = []models.SceneMetric{}
		}
		if insight.Details == nil {
			insight.Details = []string{}
		}
		payload.Insight = *insight
	}
	return payload
}

// Fingerprint derives the stable insight-cache fingerprint for a
// (puuid, sceneID, season) triple.
func Fingerprint(puuid, sceneID string, season int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%s:%d", puuid, sceneID, season))).String()
}

func noDataInsight(def *SceneDefinition) models.SceneInsight {
	return models.SceneInsight{
		Summary: fmt.Sprintf("No match data for %s", def.Label),
		Details: []string{"There are no games to analyze yet for this scene."},
		Action:  "Play a few matches and check back.",
		Metrics: []models.SceneMetric{},
	}
}

func errorInsight(def *SceneDefinition) models.SceneInsight {
	return models.SceneInsight{
		Summary: fmt.Sprintf("Unable to analyze %s", def.Label),
		Details: []string{"Something went wrong while crunching this scene's numbers."},
		Action:  "Try again in a little while.",
		Metrics: []models.SceneMetric{},
	}
}

// matchSet is the shared result of fetching a scene's match list:
// records where the target player is present as a full participant,
// plus coverage bookkeeping for transparency.
type matchSet struct {
	records []*models.MatchRecord
	total   int
	failed  int // fetch failures
	skipped int // target absent, stub, or unusable shape
}

func (m *matchSet) processed() int { return len(m.records) }

// coverageDetail reports partial coverage; empty when every id was
// usable.
func (m *matchSet) coverageDetail() string {
	if m.failed == 0 && m.skipped == 0 {
		return ""
	}
	return fmt.Sprintf("Analyzed %d of %d matches; %d could not be fetched or did not include you.",
		m.processed(), m.total, m.failed+m.skipped)
}

// collectRecords runs the fetcher over the scene's match ids through
// the bounded mapper. Per-id failures are skipped, not retried here;
// retrying rate limits is the fetcher's job.
func (s *Scenes) collectRecords(ctx context.Context, sc *SceneContext) (*matchSet, error) {
	results := worker.Map(ctx, sc.MatchIDs,
		worker.Options{BatchSize: s.batchSize, Pacing: s.pacing},
		s.matches.Fetch,
	)

	set := &matchSet{total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			set.failed++
			continue
		}
		p := r.Value.ParticipantByPUUID(sc.PUUID)
		if p == nil || p.Kind != models.ParticipantFull {
			set.skipped++
			continue
		}
		set.records = append(set.records, r.Value)
	}

	if set.failed > 0 {
		s.logger.Warnw("Partial match coverage",
			"requested", set.total,
			"processed", set.processed(),
			"failed", set.failed,
		)
	}

	if set.processed() == 0 {
		return nil, ErrNoMatchData
	}
	return set, nil
}

// appendCoverage adds the partial-coverage note to a detail list when
// coverage was incomplete.
func appendCoverage(details []string, set *matchSet) []string {
	if note := set.coverageDetail(); note != "" {
		details = append(details, note)
	}
	return details
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// kdaOf computes the aggregate KDA over totals: (k+a)/d, or k+a when
// deaths is zero.
func kdaOf(kills, deaths, assists int) float64 {
	if deaths > 0 {
		return float64(kills+assists) / float64(deaths)
	}
	return float64(kills + assists)
}

var monthShort = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}
