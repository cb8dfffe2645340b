// Package api implements app.Runner for the notary gateway HTTP server.
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

	"github.com/chainsafe/fabric-notary-gateway/pkg/app"
	apphttp "github.com/chainsafe/fabric-notary-gateway/pkg/app/http"
	"github.com/chainsafe/fabric-notary-gateway/pkg/auth"
	"github.com/chainsafe/fabric-notary-gateway/pkg/config"
	"github.com/chainsafe/fabric-notary-gateway/pkg/notary"
	"github.com/chainsafe/fabric-notary-gateway/pkg/registration"
)

var _ app.Runner = (*Server)(nil)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting notary gateway",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("channel", cfg.Fabric.Channel),
		zap.String("chaincode", cfg.Fabric.Chaincode),
		zap.String("wallet", cfg.Wallet.Backend),
	)

	components, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := components.Close(); err != nil {
			logger.Warn("Failed to release components", zap.Error(err))
		}
	}()

	router := NewRouter(cfg, components.Registration, components.Notary, logger)
	return apphttp.ServeAndWait(ctx, apphttp.NewServer(router, &cfg.Server), logger, cfg.Server.ShutdownTimeout)
}

// NewRouter builds the HTTP routes of the gateway.
func NewRouter(
	cfg *config.Config,
	registrationService registration.Service,
	notaryService notary.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	var validator *auth.JWTValidator
	if cfg.Auth.JWKSURL != "" {
		validator = auth.NewJWTValidator(cfg.Auth.JWKSURL, cfg.Auth.Issuer, cfg.Auth.IdentityClaim)
		logger.Info("Bearer token authentication enabled", zap.String("jwks_url", cfg.Auth.JWKSURL))
	}

	registration.RegisterRoutes(r, registrationService, logger)
	notary.RegisterRoutes(r, notaryService, validator, logger)

	return r
}
