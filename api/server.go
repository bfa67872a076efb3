// Package api exposes the exchange engine over HTTP: JSON handlers
// for every public operation, health and prometheus metrics
// endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/gin-gonic/gin"

	"github.com/pi-chain/piswap/internal/events"
	"github.com/pi-chain/piswap/x/dex/keeper"
	"github.com/pi-chain/piswap/x/dex/types"
)

// Config holds server configuration.
type Config struct {
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      "127.0.0.1:8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wires the engine into a gin router.
type Server struct {
	router *gin.Engine
	keeper *keeper.Keeper
	ledger types.AssetLedger
	recent *events.MemorySink
	logger log.Logger
	config Config
}

// NewServer creates the API server. recent may be nil to disable the
// recent-events endpoint.
func NewServer(k *keeper.Keeper, ledger types.AssetLedger, recent *events.MemorySink, logger log.Logger, cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		router: gin.New(),
		keeper: k,
		ledger: ledger,
		recent: recent,
		logger: logger.With("component", "api"),
		config: cfg,
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.registerRoutes()
	return s
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", "addr", s.config.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down api server")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
