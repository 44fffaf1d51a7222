package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-recap-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-recap-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-recap-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-recap-service/internal/metrics"
)

// DefaultRequestTimeout bounds one report build, which fetches every game of the day sequentially.
const DefaultRequestTimeout = 2 * time.Minute

// RouterConfig carries the dependencies of the HTTP surface.
type RouterConfig struct {
	Handler        *handlers.Handler
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter registers the API routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	h := cfg.Handler
	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summaries", h.Summaries)
		r.Get("/summaries/text", h.SummariesText)
		r.Get("/leaderboard", h.Leaderboard)
	})
	return r
}
