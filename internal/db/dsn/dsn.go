// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/config"
)

// Create builds the Data Source Name from the configuration for the selected engine.
// For sqlite the DSN is simply the database file path.
func Create(cfg *config.Config) string {
	switch cfg.DB.Engine {
	case config.EnginePostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	case config.EngineSQLite:
		return cfg.DB.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}
}

// Identifier returns a stable identifier for the storage location.
// It is used as key derivation salt, so it must not change across restarts
// of the same deployment and must not contain credentials.
func Identifier(cfg *config.Config) string {
	if cfg.DB.Engine == config.EngineSQLite {
		return cfg.DB.Path
	}

	return fmt.Sprintf("%s://%s:%d/%s", cfg.DB.Engine, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
}
