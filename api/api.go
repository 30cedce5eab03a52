// Package api exposes the alert analytics engine over HTTP.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"argus/analytics"
	"argus/config"
	"argus/storage"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterEntry holds a rate limiter with last seen time
type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// API holds the API server
type API struct {
	router         *mux.Router
	server         *http.Server
	store          *storage.Store
	engine         *analytics.Engine
	config         *config.Config
	logger         *zap.SugaredLogger
	cache          *responseCache
	rateLimiters   map[string]*rateLimiterEntry
	rateLimitersMu sync.Mutex
	stopCh         chan struct{}

	// now is the clock for the predictive endpoint, swapped in tests.
	now func() time.Time
}

// NewAPI creates a new API server
func NewAPI(store *storage.Store, engine *analytics.Engine, cfg *config.Config, logger *zap.SugaredLogger) *API {
	api := &API{
		router:       mux.NewRouter(),
		store:        store,
		engine:       engine,
		config:       cfg,
		logger:       logger,
		cache:        newResponseCache(cfg.API.CacheSize, logger),
		rateLimiters: make(map[string]*rateLimiterEntry),
		stopCh:       make(chan struct{}),
		now:          time.Now,
	}
	api.setupRoutes()
	go api.cleanupRateLimiters()
	return api
}

// setupRoutes sets up the API routes
func (a *API) setupRoutes() {
	a.router.Use(a.corsMiddleware)
	a.router.Use(a.rateLimitMiddleware)
	a.router.Use(a.metricsMiddleware)
	// OPTIONS is registered so preflight requests reach the CORS middleware.
	a.router.HandleFunc("/api/alerts", a.getAlerts).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/alerts/{id}", a.getAlert).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/stats", a.getStats).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/analytics/advanced", a.getAdvancedAnalytics).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/analytics/predictive", a.getPredictiveAnalytics).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/health", a.healthCheck).Methods("GET", "OPTIONS")
	a.router.Handle("/metrics", promhttp.Handler())
}

// Start starts the API server
func (a *API) Start(port string) error {
	a.server = &http.Server{
		Addr:    port,
		Handler: a.router,
	}
	return a.server.ListenAndServe()
}

// StartTLS starts the API server with TLS
func (a *API) StartTLS(port, certFile, keyFile string) error {
	a.server = &http.Server{
		Addr:    port,
		Handler: a.router,
	}
	return a.server.ListenAndServeTLS(certFile, keyFile)
}

// Stop stops the API server
func (a *API) Stop(ctx context.Context) error {
	close(a.stopCh)
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}
