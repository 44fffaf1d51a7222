// Package providers defines the stats source contract and its rate limit and retry wrappers.
package providers

import (
	"context"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
)

// GameLister returns every listing row for a season. Rows may repeat a game id
// once per team.
type GameLister interface {
	ListGames(ctx context.Context, season string) ([]games.GameRow, error)
}

// StatsFetcher returns the raw box score result sets for a single game.
type StatsFetcher interface {
	FetchGameStats(ctx context.Context, gameID string) (boxscores.RawGameStats, error)
}

// StatsProvider combines listing and box score access.
type StatsProvider interface {
	GameLister
	StatsFetcher
}
