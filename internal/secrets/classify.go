package secrets

// sensitiveKeys is the fixed set of setting keys that are encrypted at
// rest. Extending it is a deployment-time decision; plaintext records
// written before a key became sensitive stay plaintext until rewritten.
var sensitiveKeys = map[string]struct{}{
	"gemini_api_key":      {},
	"tushare_token":       {},
	"tavily_api_keys":     {},
	"serpapi_keys":        {},
	"bocha_api_keys":      {},
	"email_password":      {},
	"openai_api_key":      {},
	"deepseek_api_key":    {},
	"zhipu_api_key":       {},
	"telegram_bot_token":  {},
	"discord_bot_token":   {},
	"feishu_app_secret":   {},
	"dingtalk_app_secret": {},
}

// IsSensitive reports whether values stored under key must be encrypted.
func IsSensitive(key string) bool {
	_, ok := sensitiveKeys[key]
	return ok
}
