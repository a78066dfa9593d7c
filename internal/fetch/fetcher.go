// Package fetch retrieves raw match records cache-first, normalizing the
// upstream document into the immutable MatchRecord shape on a miss.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/riftglance/insights-api/internal/cache"
	"github.com/riftglance/insights-api/internal/models"
	"github.com/riftglance/insights-api/internal/riot"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_match_cache_hits_total",
		Help: "Match record lookups served from the record store",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_match_cache_misses_total",
		Help: "Match record lookups that required an upstream fetch",
	})

	upstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_match_upstream_errors_total",
		Help: "Upstream match fetches that failed terminally",
	})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "insights_match_fetch_duration_seconds",
		Help:    "Duration of upstream match fetches",
		Buckets: prometheus.DefBuckets,
	})
)

// Upstream is the single raw-match-by-id lookup the fetcher depends on.
type Upstream interface {
	GetMatch(ctx context.Context, matchID string) (*riot.MatchResponse, error)
}

type Config struct {
	Store    cache.Store
	Upstream Upstream
	// MatchTTL is the record-store TTL for raw matches. Matches are
	// historical facts, so this is long.
	MatchTTL time.Duration
	Logger   *zap.Logger
}

// Fetcher resolves match ids to normalized MatchRecords.
type Fetcher struct {
	store    cache.Store
	upstream Upstream
	ttl      time.Duration
	logger   *zap.SugaredLogger
}

func NewFetcher(cfg Config) *Fetcher {
	if cfg.MatchTTL <= 0 {
		cfg.MatchTTL = 24 * time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Fetcher{
		store:    cfg.Store,
		upstream: cfg.Upstream,
		ttl:      cfg.MatchTTL,
		logger:   cfg.Logger.Sugar(),
	}
}

// Fetch returns the record for a match id, from the record store when
// possible. On a miss it issues exactly one upstream lookup and, on
// success, exactly one cache write. Failed fetches write nothing.
func (f *Fetcher) Fetch(ctx context.Context, matchID string) (*models.MatchRecord, error) {
	key := cache.MatchKey(matchID)

	if data, ok, err := f.store.Get(ctx, key); err != nil {
		f.logger.Warnw("Record store read failed, falling through to upstream",
			"matchId", matchID, "error", err)
	} else if ok {
		var rec models.MatchRecord
		if err := json.Unmarshal(data, &rec); err == nil {
			cacheHits.Inc()
			return &rec, nil
		}
		// Corrupt entry: treat as a miss and refetch.
		f.logger.Warnw("Dropping undecodable record store entry", "matchId", matchID)
	}
	cacheMisses.Inc()

	start := time.Now()
	resp, err := f.upstream.GetMatch(ctx, matchID)
	fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamErrors.Inc()
		return nil, fmt.Errorf("fetch match %s: %w", matchID, err)
	}

	rec := Normalize(matchID, resp)

	if data, err := json.Marshal(rec); err == nil {
		if err := f.store.Set(ctx, key, data, f.ttl); err != nil {
			f.logger.Warnw("Record store write failed", "matchId", matchID, "error", err)
		}
	}

	return rec, nil
}

// Normalize converts the upstream match document into a MatchRecord,
// tagging each participant full or stub exactly once. An entry without a
// champion identity carries no usable stat block and is kept as a stub.
func Normalize(matchID string, resp *riot.MatchResponse) *models.MatchRecord {
	id := resp.Metadata.MatchID
	if id == "" {
		id = matchID
	}

	rec := &models.MatchRecord{
		MatchID:      id,
		GameCreation: time.UnixMilli(resp.Info.GameCreation).UTC(),
		GameDuration: resp.Info.GameDuration,
		GameMode:     resp.Info.GameMode,
		GameType:     resp.Info.GameType,
		QueueID:      resp.Info.QueueID,
		Participants: make([]models.Participant, 0, len(resp.Info.Participants)),
	}

	for _, pd := range resp.Info.Participants {
		rec.Participants = append(rec.Participants, normalizeParticipant(pd))
	}

	return rec
}

func normalizeParticipant(pd riot.ParticipantData) models.Participant {
	name := pd.RiotIDGameName
	if name == "" {
		name = pd.SummonerName
	}

	if pd.ChampionID == 0 && pd.ChampionName == "" {
		return models.Participant{
			Kind:       models.ParticipantStub,
			PUUID:      pd.PUUID,
			RiotIDName: name,
		}
	}

	return models.Participant{
		Kind:       models.ParticipantFull,
		PUUID:      pd.PUUID,
		RiotIDName: name,

		ChampionID:   pd.ChampionID,
		ChampionName: pd.ChampionName,
		TeamID:       pd.TeamID,
		TeamPosition: pd.TeamPosition,

		Kills:   pd.Kills,
		Deaths:  pd.Deaths,
		Assists: pd.Assists,

		DoubleKills: pd.DoubleKills,
		TripleKills: pd.TripleKills,
		QuadraKills: pd.QuadraKills,
		PentaKills:  pd.PentaKills,

		TotalDamageToChampions: pd.TotalDamageDealtToChampions,
		DamageToObjectives:     pd.DamageDealtToObjectives,
		GoldEarned:             pd.GoldEarned,

		VisionScore:        pd.VisionScore,
		WardsPlaced:        pd.WardsPlaced,
		WardsKilled:        pd.WardsKilled,
		ControlWardsPlaced: pd.VisionWardsBoughtInGame,

		TotalMinionsKilled:   pd.TotalMinionsKilled,
		NeutralMinionsKilled: pd.NeutralMinionsKilled,

		TurretKills: pd.TurretKills,
		DragonKills: pd.DragonKills,
		BaronKills:  pd.BaronKills,

		LongestTimeSpentLiving: pd.LongestTimeSpentLiving,
		TotalTimeSpentDead:     pd.TotalTimeSpentDead,

		Items:       [7]int{pd.Item0, pd.Item1, pd.Item2, pd.Item3, pd.Item4, pd.Item5, pd.Item6},
		Summoner1ID: pd.Summoner1ID,
		Summoner2ID: pd.Summoner2ID,

		Win: pd.Win,
	}
}
