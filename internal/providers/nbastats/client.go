package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-recap-service/internal/domain/games"
	"github.com/preston-bernstein/nba-recap-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	LeagueID   string
	// SeasonType narrows the listing, e.g. "Playoffs". Empty lists every game.
	SeasonType string
}

// Client lists games and fetches traditional box scores from stats.nba.com.
type Client struct {
	baseURL    string
	leagueID   string
	seasonType string
	httpClient httpDoer
	now        func() time.Time
}

var _ providers.StatsProvider = (*Client)(nil)

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	leagueID := cfg.LeagueID
	if leagueID == "" {
		leagueID = defaultLeagueID
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   leagueID,
		seasonType: cfg.SeasonType,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// ListGames returns one row per team per game for the season.
func (c *Client) ListGames(ctx context.Context, season string) ([]games.GameRow, error) {
	q := url.Values{}
	q.Set("Season", season)
	q.Set("PlayerOrTeam", "T")
	q.Set("LeagueID", c.leagueID)
	if c.seasonType != "" {
		q.Set("SeasonType", c.seasonType)
	}

	resp, err := c.get(ctx, gameFinderPath, q)
	if err != nil {
		return nil, err
	}
	return mapGameRows(resp)
}

// FetchGameStats returns the full-game traditional box score.
func (c *Client) FetchGameStats(ctx context.Context, gameID string) (boxscores.RawGameStats, error) {
	q := url.Values{}
	q.Set("GameID", gameID)
	q.Set("StartPeriod", "0")
	q.Set("EndPeriod", "10")
	q.Set("StartRange", "0")
	q.Set("EndRange", "28800")
	q.Set("RangeType", "0")

	resp, err := c.get(ctx, boxScorePath, q)
	if err != nil {
		return boxscores.RawGameStats{}, err
	}
	return mapBoxScore(resp), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return statsResponse{}, err
	}
	req.URL.RawQuery = query.Encode()
	setStatsHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statsResponse{}, fmt.Errorf("%s: %s: %w", providerName, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return statsResponse{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    providerName + ": rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return statsResponse{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return statsResponse{}, fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return payload, nil
}
