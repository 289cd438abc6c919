package llmprovider

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	ProviderGroq     = "groq"
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderOpenAI   = "openai"
)

// Base URLs for OpenAI-compatible providers served by the groq client.
var compatibleBaseURLs = map[string]string{
	ProviderGroq:     "https://api.groq.com/openai/v1",
	ProviderDeepSeek: "https://api.deepseek.com/v1",
	ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	ProviderOpenAI:   "https://api.openai.com/v1",
}
