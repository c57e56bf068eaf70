// Package settings implements the settings business logic on top of the
// secret-aware configuration store: masked overviews for rendering,
// validated save operations per settings group and the test mail action.
package settings

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/notify"
	"github.com/StockWatch-Admin/StockWatch-Admin/internal/secrets"
)

// Setting categories as persisted in the settings table.
const (
	CategoryAPIKeys  = "api_keys"
	CategoryStocks   = "stocks"
	CategoryEmail    = "email"
	CategorySchedule = "schedule"
	CategoryGeneral  = "general"
)

var (
	// ErrMailNotConfigured is returned by TestEmail when sender or password is missing.
	ErrMailNotConfigured = errors.New("configure the sender address and password first")

	// ErrSaveFailed is returned when one or more settings could not be persisted.
	ErrSaveFailed = errors.New("failed to save settings")
)

// Service wraps the configuration store with settings business logic.
type Service struct {
	store    *secrets.Store
	mailer   notify.Mailer
	validate *validator.Validate
}

// New creates a settings service around store. mailer may be nil if test
// mail delivery is not wired.
func New(store *secrets.Store, mailer notify.Mailer) *Service {
	v := validator.New()

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("stockcodes", validateStockCodesField)
	_ = v.RegisterValidation("scheduletimes", validateScheduleTimesField)

	return &Service{
		store:    store,
		mailer:   mailer,
		validate: v,
	}
}

// APIKeysForm carries the API credential group of the settings page.
type APIKeysForm struct {
	GeminiAPIKey        string `form:"gemini_api_key"`
	GeminiModel         string `form:"gemini_model"`
	GeminiModelFallback string `form:"gemini_model_fallback"`
	TushareToken        string `form:"tushare_token"`
	TavilyAPIKeys       string `form:"tavily_api_keys"`
	SerpAPIKeys         string `form:"serpapi_keys"`
	OpenAIAPIKey        string `form:"openai_api_key"`
	OpenAIBaseURL       string `form:"openai_base_url" validate:"omitempty,url"`
	OpenAIModel         string `form:"openai_model"`
	DeepSeekAPIKey      string `form:"deepseek_api_key"`
	ZhipuAPIKey         string `form:"zhipu_api_key"`
}

// EmailForm carries the mail delivery group of the settings page.
type EmailForm struct {
	Sender    string `form:"email_sender"    validate:"omitempty,email"`
	Password  string `form:"email_password"`
	Receivers string `form:"email_receivers"`
}

// ScheduleForm carries the scheduled analysis group of the settings page.
type ScheduleForm struct {
	Enabled             bool   `form:"schedule_enabled"`
	Time                string `form:"schedule_time"         validate:"omitempty,scheduletimes"`
	MarketReviewEnabled bool   `form:"market_review_enabled"`
}

// SaveAPIKeys validates and persists the API credential group.
func (s *Service) SaveAPIKeys(form *APIKeysForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err //nolint:wrapcheck
	}

	values := map[string]string{
		"gemini_api_key":        strings.TrimSpace(form.GeminiAPIKey),
		"gemini_model":          strings.TrimSpace(form.GeminiModel),
		"gemini_model_fallback": strings.TrimSpace(form.GeminiModelFallback),
		"tushare_token":         strings.TrimSpace(form.TushareToken),
		"tavily_api_keys":       strings.TrimSpace(form.TavilyAPIKeys),
		"serpapi_keys":          strings.TrimSpace(form.SerpAPIKeys),
		"openai_api_key":        strings.TrimSpace(form.OpenAIAPIKey),
		"openai_base_url":       strings.TrimSpace(form.OpenAIBaseURL),
		"openai_model":          strings.TrimSpace(form.OpenAIModel),
		"deepseek_api_key":      strings.TrimSpace(form.DeepSeekAPIKey),
		"zhipu_api_key":         strings.TrimSpace(form.ZhipuAPIKey),
	}

	if !s.store.SetBatch(values, CategoryAPIKeys) {
		return ErrSaveFailed
	}

	log.Info().Msg("API key settings saved")

	return nil
}

// SaveWatchlist validates, normalizes and persists the stock watchlist.
// The submission is rejected as a whole if any code is invalid.
func (s *Service) SaveWatchlist(codes string) (int, error) {
	normalized, invalid := NormalizeStockList(codes)
	if len(invalid) > 0 {
		return 0, &InvalidStockCodesError{Codes: invalid}
	}

	if !s.store.Set("stock_list", strings.Join(normalized, ","), CategoryStocks, "stock watchlist") {
		return 0, ErrSaveFailed
	}

	log.Info().Int("count", len(normalized)).Msg("watchlist saved")

	return len(normalized), nil
}

// SaveEmail validates and persists the mail delivery group.
func (s *Service) SaveEmail(form *EmailForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err //nolint:wrapcheck
	}

	values := map[string]string{
		"email_sender":    strings.TrimSpace(form.Sender),
		"email_password":  strings.TrimSpace(form.Password),
		"email_receivers": strings.TrimSpace(form.Receivers),
	}

	if !s.store.SetBatch(values, CategoryEmail) {
		return ErrSaveFailed
	}

	log.Info().Msg("mail settings saved")

	return nil
}

// SaveSchedule validates and persists the scheduled analysis group.
func (s *Service) SaveSchedule(form *ScheduleForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err //nolint:wrapcheck
	}

	values := map[string]string{
		"schedule_enabled":      formatBool(form.Enabled),
		"schedule_time":         strings.TrimSpace(form.Time),
		"market_review_enabled": formatBool(form.MarketReviewEnabled),
	}

	if !s.store.SetBatch(values, CategorySchedule) {
		return ErrSaveFailed
	}

	log.Info().Msg("schedule settings saved")

	return nil
}

// TestEmail sends a fixed test message through the configured mail
// account. The message never contains credential values.
func (s *Service) TestEmail() error {
	sender, _ := s.store.Get("email_sender")
	password, _ := s.store.Get("email_password")

	if sender == "" || password == "" {
		return ErrMailNotConfigured
	}

	receivers := splitList(firstNonEmpty(s.storeValue("email_receivers"), sender))

	const body = "This is a test mail from StockWatch-Admin.\n\n" +
		"If you received it, the mail settings are correct.\n\n" +
		"-- sent automatically"

	if err := s.mailer.Send(sender, password, receivers, "StockWatch-Admin test mail", body); err != nil {
		log.Error().Err(err).Msg("test mail delivery failed")
		return err //nolint:wrapcheck
	}

	log.Info().Msg("test mail sent")

	return nil
}

// Degraded reports whether the underlying store runs without working
// encryption, so pages can surface a warning.
func (s *Service) Degraded() bool {
	return s.store.Degraded()
}

func (s *Service) storeValue(key string) string {
	value, _ := s.store.Get(key)
	return value
}

func formatBool(b bool) string {
	if b {
		return "true"
	}

	return "false"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// splitList splits a comma or newline separated list, dropping empties.
func splitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
