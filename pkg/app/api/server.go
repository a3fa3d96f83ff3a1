// Package api implements app.Runner for the identity server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/canton-identity/pkg/app/http"
	"github.com/chainsafe/canton-identity/pkg/auth"
	"github.com/chainsafe/canton-identity/pkg/config"
	"github.com/chainsafe/canton-identity/pkg/datastore"
	identityservice "github.com/chainsafe/canton-identity/pkg/identity/service"
	"github.com/chainsafe/canton-identity/pkg/pgutil"
	"github.com/chainsafe/canton-identity/pkg/registry"
)

// Server holds cfg to init the identity server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new identity server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("identity server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting identity server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	registryManager := registry.NewManager(db)

	identityService := identityservice.NewService(
		NewDataService(datastore.NewStore(db)),
		NewRegistryManager(registryManager),
		logger,
	)
	identityService = identityservice.NewLog(identityservice.NewMetrics(identityService), logger)

	var validator auth.TokenValidator
	if cfg.Auth.JWKSURL != "" {
		validator = auth.NewJWTValidator(cfg.Auth.JWKSURL, cfg.Auth.Issuer)
		logger.Info("Bearer token authentication enabled", zap.String("jwks_url", cfg.Auth.JWKSURL))
	} else {
		logger.Warn("Bearer token authentication disabled, auth.jwks_url is not set")
	}

	router := newRouter(cfg, identityService, registryManager, validator, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func newRouter(
	cfg *config.Config,
	identityService identityservice.Service,
	registryService registry.Service,
	validator auth.TokenValidator,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	if cfg.Monitoring.Enabled {
		r.Use(apphttp.Metrics)
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle(cfg.Monitoring.MetricsPath, promhttp.Handler())
	}

	// Identity mapping endpoints
	r.Group(func(r chi.Router) {
		if validator != nil {
			r.Use(auth.Middleware(validator, logger))
		}
		identityservice.RegisterRoutes(r, identityService, logger)
	})

	// Participant registry endpoints
	registry.RegisterRoutes(r, registryService, logger)

	return r
}
