package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"timers/internal/config"
	"timers/internal/db"
	"timers/internal/handler"
	"timers/internal/logging"
	"timers/internal/repository"
	"timers/internal/repository/mongostore"
	"timers/internal/router"
	"timers/internal/service"
)

type stores struct {
	users    service.UserStore
	sessions service.SessionStore
	timers   service.TimerStore
	close    func()
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer st.close()

	authService := service.NewAuthService(st.users, st.sessions, cfg.SessionSecret, logger)
	timerService := service.NewTimerService(st.timers, logger)

	authHandler := handler.NewAuthHandler(authService)
	timerHandler := handler.NewTimerHandler(timerService)

	engine := router.New(authService, authHandler, timerHandler, logger, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(shutdownCtx, "shutdown server", "error", err)
		}
	}()

	logger.Info(ctx, "server listening", "port", cfg.Port, "driver", cfg.StoreDriver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "run server", "error", err)
		os.Exit(1)
	}
	logger.Info(context.Background(), "server stopped")
}

func openStores(ctx context.Context, cfg config.Config, logger logging.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := mongostore.New(client, cfg.MongoDatabase)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &stores{
			users:    store.Users(),
			sessions: store.Sessions(),
			timers:   store.Timers(),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn(context.Background(), "disconnect mongo", "error", err)
				}
			},
		}, nil

	case config.StoreSQLite:
		database, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, database, cfg.MigrationsDir); err != nil {
			_ = database.Close()
			return nil, err
		}
		return &stores{
			users:    repository.NewUserRepository(database),
			sessions: repository.NewSessionRepository(database),
			timers:   repository.NewTimerRepository(database),
			close:    func() { _ = database.Close() },
		}, nil

	default:
		return nil, errors.New("unknown STORE_DRIVER " + cfg.StoreDriver)
	}
}
