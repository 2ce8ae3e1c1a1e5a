// Package api implements app.Runner for the API server process.
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

	"github.com/chainsafe/prediction-miniapp/pkg/activity"
	apphttp "github.com/chainsafe/prediction-miniapp/pkg/app/http"
	"github.com/chainsafe/prediction-miniapp/pkg/auth"
	"github.com/chainsafe/prediction-miniapp/pkg/compliance"
	"github.com/chainsafe/prediction-miniapp/pkg/config"
	marketservice "github.com/chainsafe/prediction-miniapp/pkg/market/service"
	"github.com/chainsafe/prediction-miniapp/pkg/marketstore"
	"github.com/chainsafe/prediction-miniapp/pkg/pgutil"
	"github.com/chainsafe/prediction-miniapp/pkg/reconciler"
	"github.com/chainsafe/prediction-miniapp/pkg/streak"
	streakservice "github.com/chainsafe/prediction-miniapp/pkg/streak/service"
	userservice "github.com/chainsafe/prediction-miniapp/pkg/user/service"
	"github.com/chainsafe/prediction-miniapp/pkg/userstore"
	"github.com/chainsafe/prediction-miniapp/pkg/worldid"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// services groups the HTTP-facing services mounted on the router.
type services struct {
	sessions *auth.Sessions
	users    userservice.Service
	streaks  streakservice.Service
	markets  marketservice.Service
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	userStore := userstore.NewStore(db)
	marketStore := marketstore.NewStore(db)

	svcs, err := s.buildServices(userStore, activity.NewStore(db), marketStore, logger)
	if err != nil {
		return err
	}

	rec := reconciler.New(marketStore, userStore, cfg.Reconciliation.NonceRetention, logger)
	s.runInitialReconcile(ctx, rec, logger)

	stopReconcile := s.startPeriodicReconcile(rec, logger)
	defer stopReconcile()

	err = apphttp.ServeAndWait(ctx, s.setupRouter(svcs, logger), logger, &cfg.Server)

	// Stop background work before the deferred DB close.
	stopReconcile()

	return err
}

func (s *Server) runInitialReconcile(ctx context.Context, rec *reconciler.Reconciler, logger *zap.Logger) {
	if s.cfg.Reconciliation.InitialTimeout <= 0 {
		return
	}

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.Reconciliation.InitialTimeout)
	defer cancel()

	if err := rec.ReconcileAll(startupCtx); err != nil {
		logger.Warn("Initial reconciliation failed (will retry periodically)", zap.Error(err))
	}
}

func (s *Server) startPeriodicReconcile(rec *reconciler.Reconciler, logger *zap.Logger) func() {
	if s.cfg.Reconciliation.Interval <= 0 {
		logger.Info("Periodic reconciliation disabled")
		return func() {}
	}

	rec.StartPeriodicReconciliation(s.cfg.Reconciliation.Interval)
	return rec.Stop
}

func (s *Server) buildServices(
	users interface {
		userservice.Store
		streakservice.Store
	},
	activities activity.Store,
	markets marketservice.Store,
	logger *zap.Logger,
) (*services, error) {
	cfg := s.cfg

	tokens, err := auth.NewTokenIssuer(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("create token issuer: %w", err)
	}

	loc, err := cfg.Streak.Location()
	if err != nil {
		return nil, err
	}

	recorder := activity.NewRecorder(activities, logger)

	var verifier worldid.Verifier
	if cfg.WorldID.Enabled {
		verifier = worldid.NewClient(worldid.Config{
			BaseURL: cfg.WorldID.BaseURL,
			AppID:   cfg.WorldID.AppID,
			Action:  cfg.WorldID.Action,
			Timeout: cfg.WorldID.Timeout,
		})
		logger.Info("World ID verification enabled",
			zap.String("base_url", cfg.WorldID.BaseURL),
			zap.String("action", cfg.WorldID.Action),
		)
	}

	userSvc := userservice.NewService(users, verifier, tokens, recorder, userservice.Options{
		Domain:   cfg.Auth.Domain,
		ChainID:  cfg.Auth.ChainID,
		NonceTTL: cfg.Auth.NonceTTL,
		Rules:    compliance.New(cfg.Compliance.MinimumAge, cfg.Compliance.RestrictedCountries),
	}, logger)

	streakSvc := streakservice.NewService(users, activities, recorder, streak.NewEngine(loc), logger,
		streakservice.WithMaxRetries(cfg.Streak.MaxRetries),
	)

	marketSvc := marketservice.NewService(markets, recorder, nil, logger)

	return &services{
		sessions: auth.NewSessions(tokens, users, cfg.Session.CookieName, cfg.Session.Secure),
		users:    userservice.NewLog(userSvc, logger),
		streaks:  streakservice.NewLog(streakSvc, logger),
		markets:  marketservice.NewLog(marketSvc, logger),
	}, nil
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	userservice.RegisterRoutes(r, svcs.users, svcs.sessions, logger)
	streakservice.RegisterRoutes(r, svcs.streaks, svcs.sessions, logger)
	marketservice.RegisterRoutes(r, svcs.markets, svcs.sessions, logger)

	return r
}
