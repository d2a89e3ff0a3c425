package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chandraguptgosavi/codemore-backend/internal/api"
	"github.com/chandraguptgosavi/codemore-backend/internal/app/judge"
	"github.com/chandraguptgosavi/codemore-backend/internal/app/service"
	"github.com/chandraguptgosavi/codemore-backend/internal/common/security"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/repository"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/cache"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/config"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/database"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/logger"

	log "github.com/sirupsen/logrus"
)

// Replaced in tests.
var (
	connectDB    = database.Connect
	ensureSchema = database.EnsureSchema
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run starts the server and blocks until it is shut down.
func run() error {
	// 1. Load Configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel)
	log.Info("Configuration loaded.")

	ctx := context.Background()

	// 2. Initialize Database
	db, err := connectDB(ctx, cfg.DBConnStr)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer database.Close(db)
	if err := ensureSchema(ctx, db); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	// 3. Initialize Redis. Only the judge cooldown uses it, so the server runs without it.
	rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warnf("%v; judge cooldown disabled", err)
		rdb = nil
	}
	defer cache.Close(rdb)

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	problemRepo := repository.NewPgProblemRepository(db)
	submissionRepo := repository.NewPgSubmissionRepository(db)

	// 5. Initialize Services
	tokens := security.NewTokenIssuer(cfg.JWTKey, cfg.JWTExp)
	judgeClient := judge.NewClient(judge.Options{
		BaseURL:       cfg.JudgeBaseURL,
		APIHost:       cfg.JudgeAPIHost,
		APIKey:        cfg.JudgeAPIKey,
		CPUTimeLimit:  cfg.JudgeCPUTimeSec,
		MemoryLimitKb: cfg.JudgeMemoryKb,
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
		Cooldown:      judge.NewCooldown(rdb, cfg.JudgeCooldownKey, cfg.JudgeCooldown),
	})

	authService := service.NewAuthService(userRepo, tokens)
	problemService := service.NewProblemService(problemRepo, cfg.DefaultPageSize)
	submissionService := service.NewSubmissionService(submissionRepo, problemRepo, userRepo, judgeClient)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(api.Deps{
		AuthService:       authService,
		ProblemService:    problemService,
		SubmissionService: submissionService,
		TokenAuth:         tokens.Auth(),
		Users:             userRepo,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 65 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("could not listen on %s: %w", cfg.APIPort, err)
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}

	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server stopped gracefully.")
	return nil
}
