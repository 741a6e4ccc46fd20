// file: internal/server/server.go
// version: 2.1.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdfalk/rankcheck/internal/config"
	"github.com/jdfalk/rankcheck/internal/metrics"
	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/server/middleware"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	heartbeatPeriod = 5 * time.Second
	shutdownTimeout = 30 * time.Second
)

// Server serves the ranking API over HTTP.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        config.ServerConfig
	service    *RankService
	startedAt  time.Time
}

// NewServer creates a server ranking with defaults unless a request
// overrides them.
func NewServer(cfg config.ServerConfig, defaults models.MatchingOptions) *Server {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware())

	// no-op after the first server
	metrics.Register()

	server := &Server{
		router:    router,
		cfg:       cfg,
		service:   NewRankService(defaults, cfg.CacheTTL, cfg.CacheEntries),
		startedAt: time.Now(),
	}

	server.setupRoutes()

	return server
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port),
		Handler:        s.router,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ticker := time.NewTicker(heartbeatPeriod)
	defer ticker.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		case <-ticker.C:
			recordProcessMetrics()
		case <-ctx.Done():
			log.Println("[INFO] Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			log.Println("[INFO] Server exited")
			return nil
		}
	}
}

// setupRoutes registers the public endpoints and the guarded /api/v1 group.
func (s *Server) setupRoutes() {
	// scrape target, left outside auth and rate limiting
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/api/v1/health", s.healthCheck)

	limiter := middleware.NewClientRateLimiter(s.cfg.RateLimitPerMinute, s.cfg.RateLimitBurst)

	api := s.router.Group("/api/v1")
	api.Use(middleware.BasicAuth(s.cfg.BasicAuthUsername, s.cfg.BasicAuthPassword))
	api.Use(limiter.Middleware())
	api.Use(middleware.MaxRequestBodySize(s.cfg.MaxBodyBytes, s.cfg.MaxBatchBodyBytes))
	{
		api.POST("/rank", s.rank)
		api.POST("/rank/quick", s.quickRank)
		api.POST("/rank/batch", s.batchRank)
	}

	s.router.NoRoute(func(c *gin.Context) {
		abort(c, routeNotFound(c.Request.URL.Path))
	})
}

// requestIDMiddleware tags each request with a ULID, reusing a client
// supplied X-Request-ID, and logs the exchange.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		if config.DebugEnabled() {
			logRequest(c)
		}
		c.Next()
		logResponse(c, start)
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// corsMiddleware lets browser clients call the API from any origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func recordProcessMetrics() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	metrics.SetMemoryAlloc(mem.Alloc)
	metrics.SetGoroutines(runtime.NumGoroutine())
}

func (s *Server) healthCheck(c *gin.Context) {
	recordProcessMetrics()
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		Timestamp:     time.Now().Unix(),
		Version:       Version,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Defaults:      s.service.Defaults(),
	})
}
