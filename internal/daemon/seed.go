package daemon

import (
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/secrets"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/settings"
)

// defaultSetting is one seeded record.
type defaultSetting struct {
	key         string
	value       string
	category    string
	description string
}

// Seed initial non-sensitive settings. Credentials are never seeded.
var defaults = []defaultSetting{
	{"gemini_model", "gemini-2.0-flash", settings.CategoryAPIKeys, "primary analysis model"},
	{"gemini_model_fallback", "gemini-1.5-flash", settings.CategoryAPIKeys, "fallback analysis model"},
	{"schedule_enabled", "false", settings.CategorySchedule, "scheduled analysis switch"},
	{"schedule_time", "09:00", settings.CategorySchedule, "scheduled analysis run times"},
	{"market_review_enabled", "true", settings.CategorySchedule, "market review switch"},
}

func seed(store *secrets.Store) {
	for _, d := range defaults {
		if store.Exists(d.key) {
			continue
		}

		store.Set(d.key, d.value, d.category, d.description)
	}
}
