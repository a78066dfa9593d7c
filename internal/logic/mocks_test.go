package logic

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/riftglance/insights-api/internal/cache"
	"github.com/riftglance/insights-api/internal/models"
	"github.com/riftglance/insights-api/internal/riot"
)

const testPUUID = "me"

// fakeMatchSource serves canned records and counts fetches. Safe for
// the mapper's concurrent workers as long as the maps are not mutated
// after construction.
type fakeMatchSource struct {
	records map[string]*models.MatchRecord
	errs    map[string]error
	calls   atomic.Int32
}

func (f *fakeMatchSource) Fetch(_ context.Context, matchID string) (*models.MatchRecord, error) {
	f.calls.Add(1)
	if err, ok := f.errs[matchID]; ok {
		return nil, err
	}
	if rec, ok := f.records[matchID]; ok {
		return rec, nil
	}
	return nil, &riot.StatusError{Code: 404}
}

type fakeLeagueSource struct {
	entries []riot.LeagueEntryResponse
	err     error
}

func (f *fakeLeagueSource) GetLeagueEntries(context.Context, string) ([]riot.LeagueEntryResponse, error) {
	return f.entries, f.err
}

func newTestScenes(src MatchSource, league LeagueSource, insights cache.Store) *Scenes {
	if league == nil {
		league = &fakeLeagueSource{}
	}
	return NewScenes(Config{
		Matches:   src,
		League:    league,
		Insights:  insights,
		Logger:    zap.NewNop(),
		BatchSize: 10,
		Pacing:    time.Millisecond,
	})
}

func sourceFor(records ...*models.MatchRecord) *fakeMatchSource {
	src := &fakeMatchSource{records: make(map[string]*models.MatchRecord)}
	for _, rec := range records {
		src.records[rec.MatchID] = rec
	}
	return src
}

func idsOf(records ...*models.MatchRecord) []string {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.MatchID
	}
	return ids
}

func fullParticipant(puuid, champion string, kills, deaths, assists int, win bool) models.Participant {
	return models.Participant{
		Kind:         models.ParticipantFull,
		PUUID:        puuid,
		RiotIDName:   puuid,
		ChampionID:   1,
		ChampionName: champion,
		Kills:        kills,
		Deaths:       deaths,
		Assists:      assists,
		Win:          win,
	}
}

func testMatch(id string, created time.Time, durationSec int, participants ...models.Participant) *models.MatchRecord {
	return &models.MatchRecord{
		MatchID:      id,
		GameCreation: created,
		GameDuration: durationSec,
		GameMode:     "CLASSIC",
		GameType:     "MATCHED_GAME",
		Participants: participants,
	}
}

func date(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 20, 0, 0, 0, time.UTC)
}
