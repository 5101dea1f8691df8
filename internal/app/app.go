// Package app wires config, database and services into one session-scoped
// object. The store handle is created once here and passed by reference to
// every component; nothing else opens the database.
package app

import (
	"stockfolio/internal/charts"
	"stockfolio/internal/config"
	"stockfolio/internal/exchange"
	"stockfolio/internal/infrastructure/database"
	"stockfolio/internal/stats"
	"stockfolio/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// App holds the open store and the services built on it.
type App struct {
	Config   *config.Config
	Store    *store.Store
	Stats    *stats.Service
	Charts   *charts.Service
	Exchange *exchange.Service

	db *gorm.DB
}

// New opens the local database at cfg.DatabasePath, runs migrations and
// builds the services.
func New(cfg *config.Config) (*App, error) {
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	st := store.New(db)
	log.Debug().Str("database", cfg.DatabasePath).Msg("portfolio store opened")
	return &App{
		Config:   cfg,
		Store:    st,
		Stats:    &stats.Service{Store: st},
		Charts:   &charts.Service{Store: st, TopLimit: cfg.TopHoldingsLimit},
		Exchange: &exchange.Service{DB: db},
		db:       db,
	}, nil
}

// Close releases the underlying database connection.
func (a *App) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
