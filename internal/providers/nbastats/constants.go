package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	defaultLeagueID    = "00"
	errorBodyLimit     = 512
	maxRetryAfterSecs  = 3600

	gameFinderPath = "/leaguegamefinder"
	boxScorePath   = "/boxscoretraditionalv2"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Listing columns read from leaguegamefinder.
const (
	colGameID           = "GAME_ID"
	colGameDate         = "GAME_DATE"
	colMatchup          = "MATCHUP"
	colTeamAbbreviation = "TEAM_ABBREVIATION"
)
