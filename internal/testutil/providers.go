package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
)

// ErrStubFetch is returned by StubProvider for game ids listed in FailGames.
var ErrStubFetch = errors.New("stub fetch failed")

// StubProvider serves canned listing rows and box scores and counts calls.
type StubProvider struct {
	Rows      []games.GameRow
	ListErr   error
	Stats     map[string]boxscores.RawGameStats
	FailGames map[string]error

	mu           sync.Mutex
	listCalls    int
	fetchedGames []string
	seasons      []string
}

func (p *StubProvider) ListGames(ctx context.Context, season string) ([]games.GameRow, error) {
	p.mu.Lock()
	p.listCalls++
	p.seasons = append(p.seasons, season)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.ListErr != nil {
		return nil, p.ListErr
	}
	return p.Rows, nil
}

func (p *StubProvider) FetchGameStats(ctx context.Context, gameID string) (boxscores.RawGameStats, error) {
	p.mu.Lock()
	p.fetchedGames = append(p.fetchedGames, gameID)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return boxscores.RawGameStats{}, err
	}
	if err, ok := p.FailGames[gameID]; ok {
		if err == nil {
			err = ErrStubFetch
		}
		return boxscores.RawGameStats{}, err
	}
	raw, ok := p.Stats[gameID]
	if !ok {
		return boxscores.RawGameStats{}, ErrStubFetch
	}
	return raw, nil
}

// ListCalls returns how many times ListGames ran.
func (p *StubProvider) ListCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listCalls
}

// Seasons returns the seasons requested from ListGames in call order.
func (p *StubProvider) Seasons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.seasons...)
}

// FetchedGames returns the game ids requested in call order.
func (p *StubProvider) FetchedGames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.fetchedGames...)
}

// Row builds a listing row.
func Row(gameID, date, matchup, team string) games.GameRow {
	return games.GameRow{GameID: gameID, GameDate: date, Matchup: matchup, TeamAbbreviation: team}
}
