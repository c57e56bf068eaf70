package settings

import (
	"time"

	"github.com/StockWatch-Admin/StockWatch-Admin/internal/secrets"
)

// Overview is the settings page model. Sensitive values appear masked;
// the Raw variants carry the plaintext so forms can round-trip values
// without re-entering them. Raw values must never be logged.
type Overview struct {
	GeminiAPIKey        string
	GeminiAPIKeyRaw     string
	GeminiModel         string
	GeminiModelFallback string

	TushareToken    string
	TushareTokenRaw string

	TavilyAPIKeys    string
	TavilyAPIKeysRaw string
	SerpAPIKeys      string
	SerpAPIKeysRaw   string

	OpenAIAPIKey    string
	OpenAIAPIKeyRaw string
	OpenAIBaseURL   string
	OpenAIModel     string

	DeepSeekAPIKey    string
	DeepSeekAPIKeyRaw string
	ZhipuAPIKey       string
	ZhipuAPIKeyRaw    string

	StockList string

	EmailSender      string
	EmailPassword    string
	EmailPasswordRaw string
	EmailReceivers   string

	ScheduleEnabled     bool
	ScheduleTime        string
	MarketReviewEnabled bool
	NextRunTime         string
}

// Overview loads all settings for page rendering. Secrets come back
// masked; a single unreadable field renders empty without affecting the
// rest of the page.
func (s *Service) Overview() *Overview {
	values := s.store.GetAll("")

	o := &Overview{
		GeminiAPIKey:        secrets.Mask(values["gemini_api_key"]),
		GeminiAPIKeyRaw:     values["gemini_api_key"],
		GeminiModel:         values["gemini_model"],
		GeminiModelFallback: values["gemini_model_fallback"],

		TushareToken:    secrets.Mask(values["tushare_token"]),
		TushareTokenRaw: values["tushare_token"],

		TavilyAPIKeys:    secrets.Mask(values["tavily_api_keys"]),
		TavilyAPIKeysRaw: values["tavily_api_keys"],
		SerpAPIKeys:      secrets.Mask(values["serpapi_keys"]),
		SerpAPIKeysRaw:   values["serpapi_keys"],

		OpenAIAPIKey:    secrets.Mask(values["openai_api_key"]),
		OpenAIAPIKeyRaw: values["openai_api_key"],
		OpenAIBaseURL:   values["openai_base_url"],
		OpenAIModel:     values["openai_model"],

		DeepSeekAPIKey:    secrets.Mask(values["deepseek_api_key"]),
		DeepSeekAPIKeyRaw: values["deepseek_api_key"],
		ZhipuAPIKey:       secrets.Mask(values["zhipu_api_key"]),
		ZhipuAPIKeyRaw:    values["zhipu_api_key"],

		StockList: values["stock_list"],

		EmailSender:      values["email_sender"],
		EmailPassword:    secrets.Mask(values["email_password"]),
		EmailPasswordRaw: values["email_password"],
		EmailReceivers:   values["email_receivers"],

		ScheduleEnabled:     parseBool(values["schedule_enabled"], false),
		ScheduleTime:        values["schedule_time"],
		MarketReviewEnabled: parseBool(values["market_review_enabled"], true),
	}

	o.NextRunTime = NextRunTime(o.ScheduleEnabled, o.ScheduleTime, time.Now())

	return o
}
