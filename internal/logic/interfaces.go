package logic

import (
	"context"

	"github.com/riftglance/insights-api/internal/models"
	"github.com/riftglance/insights-api/internal/riot"
)

// MatchSource resolves a match id to a normalized record. Satisfied by
// fetch.Fetcher.
type MatchSource interface {
	Fetch(ctx context.Context, matchID string) (*models.MatchRecord, error)
}

// LeagueSource looks up a player's ranked standings. Satisfied by
// riot.Client.
type LeagueSource interface {
	GetLeagueEntries(ctx context.Context, puuid string) ([]riot.LeagueEntryResponse, error)
}
