// Package dashboard provides the dashboard handler summarizing the stored configuration.
package dashboard

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/config"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/controller/setting"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/db/models"
	service "github.com/StockWatch-Admin/StockWatch-Admin/internal/settings"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/web/handler"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"
)

// CategoryCount represents one settings category for template rendering.
type CategoryCount struct {
	Name      string
	Count     int
	Encrypted int
}

// Data represents the complete dashboard data.
type Data struct {
	Categories  []CategoryCount
	Total       int
	Encrypted   int
	Degraded    bool
	NextRunTime string
	LastUpdated string
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
	svc *service.Service
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, svc *service.Service) error {
	if app == nil || cfg == nil || db == nil || svc == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.db = db
	s.svc = svc

	app.Get(Path, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard").
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb("Dashboard", Path, true)

	records, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings for dashboard")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	data := buildData(records)
	data.Degraded = s.svc.Degraded()

	overview := s.svc.Overview()
	data.NextRunTime = overview.NextRunTime

	log.Debug().
		Int("total_settings", data.Total).
		Int("encrypted_settings", data.Encrypted).
		Bool("degraded", data.Degraded).
		Msg("dashboard settings summarized")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data":       data,
	}, handler.BaseLayout)
}

// buildData groups the stored settings by category.
func buildData(records []models.Setting) Data {
	byCategory := make(map[string]*CategoryCount)

	data := Data{}

	var lastUpdated time.Time

	for i := range records {
		record := &records[i]

		cc, ok := byCategory[record.Category]
		if !ok {
			cc = &CategoryCount{Name: record.Category}
			byCategory[record.Category] = cc
		}

		cc.Count++
		data.Total++

		if record.IsEncrypted {
			cc.Encrypted++
			data.Encrypted++
		}

		if record.UpdatedAt.After(lastUpdated) {
			lastUpdated = record.UpdatedAt
		}
	}

	if !lastUpdated.IsZero() {
		data.LastUpdated = lastUpdated.Format("2006-01-02 15:04")
	}

	data.Categories = make([]CategoryCount, 0, len(byCategory))
	for _, cc := range byCategory {
		data.Categories = append(data.Categories, *cc)
	}

	sort.Slice(data.Categories, func(i, j int) bool {
		return data.Categories[i].Name < data.Categories[j].Name
	})

	return data
}
