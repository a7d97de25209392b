package playground

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/fynk-lang/fynk/foundation/core/config"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	"github.com/fynk-lang/fynk/foundation/fynk"
	"github.com/fynk-lang/fynk/pkg/core/health"
)

// healthTimeout bounds one /healthz request
const healthTimeout = 2 * time.Second

// Config holds server configuration
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	MaxMessageBytes int64

	// CacheSize bounds the result cache; negative disables it
	CacheSize int
	CacheTTL  time.Duration

	// Version is reported by /healthz
	Version string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Addr:            config.DefaultPlaygroundAddr,
		ReadTimeout:     config.DefaultReadTimeout,
		MaxMessageBytes: config.DefaultMaxMessageBytes,
		CacheSize:       config.DefaultCacheSize,
		CacheTTL:        config.DefaultCacheTTL,
	}
}

// ConfigFrom converts the [playground] section of a loaded configuration
func ConfigFrom(cfg config.PlaygroundConfig) Config {
	return Config{
		Addr:            cfg.Addr,
		ReadTimeout:     cfg.ReadTimeout.Duration,
		MaxMessageBytes: cfg.MaxMessageBytes,
		CacheSize:       cfg.CacheSize,
		CacheTTL:        cfg.CacheTTL.Duration,
	}
}

// Server is the playground HTTP server
type Server struct {
	httpServer *http.Server
	handler    *Handler
	health     *health.Registry
	logger     *mdwlog.Logger
	config     Config
}

// New creates a playground server
func New(cfg Config, engine *fynk.Engine, logger *mdwlog.Logger) *Server {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	s := &Server{
		handler: NewHandler(engine, cfg, logger),
		health:  health.NewRegistry("fynk-playground", cfg.Version),
		logger:  logger.WithField("component", "fynk-playground"),
		config:  cfg,
	}
	s.registerChecks(s.health)

	mux := http.NewServeMux()
	mux.Handle("/ws", s.handler)
	mux.Handle("/healthz", s.health.Handler(healthTimeout))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Health runs the registered checks
func (s *Server) Health(ctx context.Context) *health.Report {
	return s.health.Check(ctx)
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.config.Addr
}

// Close releases resources held outside the HTTP server
func (s *Server) Close() {
	s.handler.Close()
}

// Run serves on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.logger.Info("Starting Fynk playground", mdwlog.Fields{
		"addr": listener.Addr().String(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	defer s.Close()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Stopping Fynk playground")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
