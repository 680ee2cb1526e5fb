package app

import (
	"context"

	"github.com/Dmytrostu/zetacrush-backend/internal/analyzer"
	"github.com/Dmytrostu/zetacrush-backend/internal/config"
	"github.com/Dmytrostu/zetacrush-backend/internal/db"
)

// App is the main application container holding all dependencies.
type App struct {
	Config   *config.Config
	Store    *db.Store
	Analyzer *analyzer.Analyzer
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Create database connection
	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}

	// Create analyzer
	opts, err := cfg.AnalyzerOptions()
	if err != nil {
		store.Close()
		return nil, err
	}

	a, err := analyzer.New(opts)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Store:    store,
		Analyzer: a,
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
