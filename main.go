package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fdumary/doctor-ai/internal/config"
	"github.com/fdumary/doctor-ai/internal/database"
	"github.com/fdumary/doctor-ai/internal/flow"
	"github.com/fdumary/doctor-ai/internal/logger"
	"github.com/fdumary/doctor-ai/internal/patients"
	"github.com/fdumary/doctor-ai/internal/server"
	"github.com/fdumary/doctor-ai/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Configuration loaded successfully")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established and migrations completed")

	// Session store: Redis when configured, in-memory otherwise.
	var sessionStore flow.Store
	if cfg.Redis.Enabled {
		redisStore, err := flow.NewRedisStore(cfg.Redis.Host, cfg.Redis.Port)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessionStore = redisStore
		logger.Info("Using Redis session store")
	} else {
		sessionStore = flow.NewManager()
		logger.Info("Using in-memory session store")
	}

	deps := server.Dependencies{
		Accounts:    services.NewAccountService(db, cfg.Auth.BCryptCost, cfg.Auth.TOTPIssuer),
		CheckIns:    services.NewCheckInService(db),
		Preferences: services.NewPreferenceService(db),
		Patients:    patients.NewMemoryStore(patients.Seed()),
		Sessions:    sessionStore,
	}
	logger.Info("Services initialized successfully")

	router := server.NewRouter(deps)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Infof("Doctor AI backend listening on %s", cfg.Server.Addr)
	if err := runServer(ctx, srv); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
	logger.Info("Server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
