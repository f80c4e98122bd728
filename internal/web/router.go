package web

import (
	"log/slog"
	"net/http"

	"github.com/jusunglee/boothko/internal/db"
	"github.com/jusunglee/boothko/internal/suggest"
	"github.com/jusunglee/boothko/internal/web/handlers"
	"github.com/jusunglee/boothko/internal/web/middleware"
)

type Router struct {
	repo     db.Repository
	log      *slog.Logger
	composer *suggest.Composer
	limiter  *middleware.IPRateLimiter
	origins  []string
}

func NewRouter(repo db.Repository, log *slog.Logger, composer *suggest.Composer, limiter *middleware.IPRateLimiter, origins []string) *Router {
	return &Router{
		repo:     repo,
		log:      log,
		composer: composer,
		limiter:  limiter,
		origins:  origins,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	suggestionHandler := handlers.NewSuggestionHandler(r.composer, r.log)
	historyHandler := handlers.NewHistoryHandler(r.repo, r.log)

	read := func(h http.HandlerFunc, cache string) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl(cache),
		)
	}
	write := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(r.limiter),
		)
	}

	// Suggestions depend only on the query and the built-in tables.
	mux.Handle("GET /api/v1/suggestions", read(suggestionHandler.List, "public, max-age=300"))

	mux.Handle("GET /api/v1/history", read(historyHandler.List, "no-store"))
	mux.Handle("GET /api/v1/history/top", read(historyHandler.Top, "no-store"))
	mux.Handle("POST /api/v1/history", write(historyHandler.Create))
	mux.Handle("DELETE /api/v1/history/{id}", write(historyHandler.Delete))
	mux.Handle("DELETE /api/v1/history", write(historyHandler.Clear))

	return middleware.Chain(mux,
		middleware.Recover(r.log),
		middleware.CORS(r.origins),
	)
}
