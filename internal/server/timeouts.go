package server

import (
	"time"

	httpserver "github.com/preston-bernstein/nba-recap-service/internal/http"
)

const (
	readTimeout = 10 * time.Second
	// A report request fetches every game of the day, so writes get the full request budget.
	writeTimeout = httpserver.DefaultRequestTimeout + 5*time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
