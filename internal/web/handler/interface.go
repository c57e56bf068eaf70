package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/config"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/settings"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, svc *settings.Service) error
}
