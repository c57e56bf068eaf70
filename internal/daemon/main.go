// Package daemon assembles the application: database, configuration
// store, settings service and web frontend.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/config"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/dsn"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/models"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/notify"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/secrets"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/settings"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Setting{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	store := secrets.NewStore(db, dsn.Identifier(cfg))
	if store.Degraded() {
		log.Warn().Msg("configuration store running degraded, secrets are not encrypted")
	}

	seed(store)

	svc := settings.New(store, &notify.SMTPMailer{
		Host: cfg.Mail.Host,
		Port: cfg.Mail.Port,
	})

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, svc),
	}
}

// openDialector selects the gorm driver for the configured engine.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.Engine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg))
	default:
		// sqlite wants its parent directory to exist
		if dir := filepath.Dir(cfg.DB.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				log.Error().Err(err).Str("dir", dir).Msg("can't create database directory")
			}
		}

		return sqlite.Open(dsn.Create(cfg))
	}
}
