// @title League admin API
// @version 1.0
// @description Clubs, competitions, group stages, knockout brackets and live scores.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/league-admin/config"
	"github.com/Dosada05/league-admin/db"
	_ "github.com/Dosada05/league-admin/docs"
	"github.com/Dosada05/league-admin/handlers"
	"github.com/Dosada05/league-admin/realtime"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/routes"
	"github.com/Dosada05/league-admin/services"
	"github.com/Dosada05/league-admin/storage"
)

//go:generate swag init -g cmd/main.go -d ../ -o ../docs

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.Bool("logo_uploads", cfg.R2.Enabled()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 is not configured, logo uploads are disabled")
	}

	hub := realtime.NewHub(logger)
	go hub.Run(ctx)

	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	competitionRepo := repositories.NewPostgresCompetitionRepository(dbConn)
	phaseRepo := repositories.NewPostgresPhaseRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	tx := repositories.NewTransactor(dbConn, logger)

	guard := services.NewPhaseGuard()
	authorizer := services.NewCredentialAuthorizer(cfg.AdminPasswordHash)

	authService := services.NewAuthService(authorizer, cfg.AdminPhone, cfg.JWTSecretKey)
	teamService := services.NewTeamService(teamRepo, uploader, logger)
	competitionService := services.NewCompetitionService(competitionRepo, phaseRepo, matchRepo, teamRepo, tx, guard, uploader, logger)
	phaseService := services.NewPhaseService(phaseRepo, competitionRepo, matchRepo, tx, guard, logger)
	matchService := services.NewMatchService(matchRepo, competitionRepo, phaseRepo, guard, hub, logger)
	standingsService := services.NewStandingsService(competitionRepo, matchRepo, uploader)
	fixtureService := services.NewFixtureService(phaseRepo, competitionRepo, matchRepo, tx, guard, hub, logger)
	bracketService := services.NewBracketService(phaseRepo, competitionRepo, matchRepo, tx, guard, hub, logger)

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Teams:        handlers.NewTeamHandler(teamService),
		Competitions: handlers.NewCompetitionHandler(competitionService, phaseService, matchService, standingsService),
		Phases:       handlers.NewPhaseHandler(phaseService, matchService, fixtureService, bracketService),
		Matches:      handlers.NewMatchHandler(matchService),
		Public:       handlers.NewPublicHandler(competitionService, matchService, standingsService),
		WebSocket:    handlers.NewWebSocketHandler(hub, competitionService, cfg.CORSAllowedOrigins, logger),
	}, routes.Options{
		JWTSecret:      cfg.JWTSecretKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Authorizer:     authorizer,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
