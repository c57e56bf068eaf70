// Package settings provides the settings page handler: masked overview
// rendering and the per-group save endpoints.
package settings

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/config"
	service "github.com/StockWatch-Admin/StockWatch-Admin/internal/settings"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/web/handler"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/web/navigation"
)

const (
	// Path is the path to the settings page.
	Path = "/settings"

	// TemplateName is the name of the settings template.
	TemplateName = "settings/settings"

	msgTypeSuccess = "success"
	msgTypeError   = "error"
)

// Service is the settings page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *service.Service
}

// Handler is the settings page handler.
var Handler = Service{}

// Init initializes the settings page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, svc *service.Service) error {
	if app == nil || cfg == nil || svc == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.svc = svc

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post("/api-keys", s.PostAPIKeys)
		router.Post("/stocks", s.PostStocks)
		router.Post("/email", s.PostEmail)
		router.Post("/schedule", s.PostSchedule)
		router.Post("/test-email", s.PostTestEmail)
	})

	return nil
}

// Get handles the settings page rendering. Flash messages arrive through
// the msg and type query parameters set by the save endpoints.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Settings", "settings").
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Settings", Path, true)

	msgType := c.Query("type", msgTypeSuccess)
	if msgType != msgTypeSuccess && msgType != msgTypeError {
		msgType = msgTypeSuccess
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation":  nav,
		"Overview":    s.svc.Overview(),
		"Degraded":    s.svc.Degraded(),
		"Message":     c.Query("msg", ""),
		"MessageType": msgType,
	}, handler.BaseLayout)
}

// PostAPIKeys handles the API credential form submission.
func (s *Service) PostAPIKeys(c *fiber.Ctx) error {
	form := &service.APIKeysForm{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse API key settings form")
		return redirectWithMessage(c, "Invalid form data", msgTypeError)
	}

	if err := s.svc.SaveAPIKeys(form); err != nil {
		log.Error().Err(err).Msg("failed to save API key settings")
		return redirectWithMessage(c, "Failed to save API key settings", msgTypeError)
	}

	return redirectWithMessage(c, "API key settings saved", msgTypeSuccess)
}

// PostStocks handles the watchlist form submission.
func (s *Service) PostStocks(c *fiber.Ctx) error {
	count, err := s.svc.SaveWatchlist(c.FormValue("stock_list"))
	if err != nil {
		var invalidErr *service.InvalidStockCodesError
		if errors.As(err, &invalidErr) {
			return redirectWithMessage(c, "Rejected "+invalidErr.Error(), msgTypeError)
		}

		log.Error().Err(err).Msg("failed to save watchlist")

		return redirectWithMessage(c, "Failed to save watchlist", msgTypeError)
	}

	return redirectWithMessage(c, fmt.Sprintf("Watchlist saved with %d codes", count), msgTypeSuccess)
}

// PostEmail handles the mail settings form submission.
func (s *Service) PostEmail(c *fiber.Ctx) error {
	form := &service.EmailForm{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse mail settings form")
		return redirectWithMessage(c, "Invalid form data", msgTypeError)
	}

	if err := s.svc.SaveEmail(form); err != nil {
		log.Error().Err(err).Msg("failed to save mail settings")
		return redirectWithMessage(c, "Failed to save mail settings", msgTypeError)
	}

	return redirectWithMessage(c, "Mail settings saved", msgTypeSuccess)
}

// PostSchedule handles the schedule form submission. Checkboxes are read
// by presence, an unchecked box sends no field at all.
func (s *Service) PostSchedule(c *fiber.Ctx) error {
	form := &service.ScheduleForm{
		Enabled:             c.FormValue("schedule_enabled") != "",
		Time:                c.FormValue("schedule_time"),
		MarketReviewEnabled: c.FormValue("market_review_enabled") != "",
	}

	if err := s.svc.SaveSchedule(form); err != nil {
		log.Error().Err(err).Msg("failed to save schedule settings")
		return redirectWithMessage(c, "Invalid schedule settings", msgTypeError)
	}

	return redirectWithMessage(c, "Schedule settings saved", msgTypeSuccess)
}

// PostTestEmail triggers a test mail and answers JSON for the page script.
func (s *Service) PostTestEmail(c *fiber.Ctx) error {
	if err := s.svc.TestEmail(); err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Test mail sent",
	})
}

// redirectWithMessage sends the browser back to the settings page with a
// flash message in the query string.
func redirectWithMessage(c *fiber.Ctx, msg, msgType string) error {
	return c.Redirect(Path+"?msg="+url.QueryEscape(msg)+"&type="+msgType, fiber.StatusFound)
}
