package fbrapi

import (
	"context"
)

// API defines the interface for FBR operations
type API interface {
	// GenerateKey requests a fresh API key and caches it on the client
	GenerateKey(ctx context.Context) (string, error)

	// GetLeagues retrieves the leagues available for a country
	GetLeagues(ctx context.Context, countryCode string) (*LeaguesPayload, error)

	// GetSeasons retrieves the seasons on record for a league
	GetSeasons(ctx context.Context, leagueID int) (*SeasonsPayload, error)
}
