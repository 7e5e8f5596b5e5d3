package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bridgeout/internal/ai"
	"bridgeout/internal/config"
	"bridgeout/internal/logging"
	"bridgeout/internal/store"
)

// App is the dependency container for the CLI application. Collaborators are
// constructed once here and injected everywhere else; nothing below this
// layer reaches for ambient globals.
type App struct {
	DB     *sql.DB
	Config *config.Config
	Store  *store.Store
	AI     *ai.Client
	Logger *zap.Logger
}

// NewApp initializes and returns a new App instance.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Initialize()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	stateDir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(stateDir, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := store.Open(stateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	httpClient := &http.Client{Timeout: timeout}

	client := ai.New(ai.Config{
		APIKey:          cfg.GeminiAPIKey,
		BaseURL:         cfg.BaseURL,
		Model:           cfg.Model,
		Timeout:         timeout,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Grounding:       cfg.Grounding,
	}, httpClient, logger)

	return &App{
		DB:     db,
		Config: cfg,
		Store:  store.New(db, logger),
		AI:     client,
		Logger: logger,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
