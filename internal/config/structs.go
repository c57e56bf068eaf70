package config

import (
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Mail      Mail
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CacheEnabled   bool   // true = enable cache, false = disable cache
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Mail holds the SMTP relay used for test mail delivery.
// Sender, password and receivers live in the settings store, not here.
type Mail struct {
	Host string
	Port int
}
