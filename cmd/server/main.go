package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-directory/internal/http/handlers"
	projecth "user-directory/internal/http/handlers/project"
	userh "user-directory/internal/http/handlers/user"
	mw "user-directory/internal/http/middleware"
	"user-directory/internal/lib/config"
	"user-directory/internal/lib/sl"
	repo "user-directory/internal/repository"
	"user-directory/internal/service/project"
	"user-directory/internal/service/user"
	"user-directory/internal/storage/migrations"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting User Directory Service", slog.String("env", cfg.Env))

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := migrations.Up(db.DB); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("database schema is up to date")
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	projectRepo := repo.NewProjectRepo(db, trmsqlx.DefaultCtxGetter)

	userService := user.NewUserService(trManager, userRepo, userRepo, projectRepo)
	projectService := project.NewProjectService(projectRepo, projectRepo)

	userHandler := userh.NewUserHandler(log, userService)
	projectHandler := projecth.NewProjectHandler(log, projectService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)

	// public methods
	router.Get("/health", handlers.Healthcheck(db))

	auth := mw.Auth(cfg.Auth.AdminSecret, cfg.Auth.UserSecret)

	// user methods
	router.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/users", userHandler.List)
		r.Get("/projects/get", projectHandler.Get)
	})

	// admin methods
	router.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(mw.AdminOnly)

		r.Post("/users/add", userHandler.Add)
		r.Post("/projects/add", projectHandler.Add)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
