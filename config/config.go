package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Storage
	SQLite SQLiteConfig

	// Chat assistant
	Chat   ChatConfig
	Skills SkillsConfig
	Notes  NotesConfig

	// Retrieval
	Retrieval RetrievalConfig
	Qdrant    QdrantConfig
	Chromem   ChromemConfig
	Voyage    VoyageConfig

	// Integrations
	Memos    MemosConfig
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SQLiteConfig struct {
	Path string
}

// ChatConfig tunes the conversation pipeline.
type ChatConfig struct {
	Passkey          string
	MemoryPolicy     string
	MemoryTokenLimit int
	MemoryMaxEntries int
	MemoryMaxUsers   int
	MemoryTTL        time.Duration
	PendingTTL       time.Duration
	SummaryThreshold int
	SummaryWindow    int
	RetrieveTopK     int
	RetrieveTimeout  time.Duration
	MaxPassageChars  int
}

// SkillsConfig overrides the keyword lists used for team recommendations.
// Empty lists keep the built-in defaults.
type SkillsConfig struct {
	Tech   []string
	Design []string
	PR     []string
}

type NotesConfig struct {
	Backend string
	Path    string
	Tag     string
}

type RetrievalConfig struct {
	Backend string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

type ChromemConfig struct {
	Path       string
	Collection string
	Compress   bool
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type MemosConfig struct {
	URL         string
	AccessToken string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// EnvConfigPath names an explicit config file, overriding the search paths.
const EnvConfigPath = "CONFIG_PATH"

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	if path := os.Getenv(EnvConfigPath); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Chat
	cfg.Chat.Passkey = expandEnvVar(viper.GetString("chat.passkey"))
	if passkey := viper.GetString("sccse_passkey"); passkey != "" {
		cfg.Chat.Passkey = passkey
	}
	cfg.Chat.MemoryPolicy = viper.GetString("chat.memory_policy")
	cfg.Chat.MemoryTokenLimit = viper.GetInt("chat.memory_token_limit")
	cfg.Chat.MemoryMaxEntries = viper.GetInt("chat.memory_max_entries")
	cfg.Chat.MemoryMaxUsers = viper.GetInt("chat.memory_max_users")
	cfg.Chat.MemoryTTL = viper.GetDuration("chat.memory_ttl")
	cfg.Chat.PendingTTL = viper.GetDuration("chat.pending_ttl")
	cfg.Chat.SummaryThreshold = viper.GetInt("chat.summary_threshold")
	cfg.Chat.SummaryWindow = viper.GetInt("chat.summary_window")
	cfg.Chat.RetrieveTopK = viper.GetInt("chat.retrieve_top_k")
	cfg.Chat.RetrieveTimeout = viper.GetDuration("chat.retrieve_timeout")
	cfg.Chat.MaxPassageChars = viper.GetInt("chat.max_passage_chars")

	cfg.Skills.Tech = splitList(viper.GetStringSlice("skills.tech"))
	cfg.Skills.Design = splitList(viper.GetStringSlice("skills.design"))
	cfg.Skills.PR = splitList(viper.GetStringSlice("skills.pr"))

	cfg.Notes.Backend = viper.GetString("notes.backend")
	cfg.Notes.Path = viper.GetString("notes.path")
	cfg.Notes.Tag = viper.GetString("notes.tag")

	// Retrieval
	cfg.Retrieval.Backend = viper.GetString("retrieval.backend")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Chromem.Path = viper.GetString("chromem.path")
	cfg.Chromem.Collection = viper.GetString("chromem.collection")
	cfg.Chromem.Compress = viper.GetBool("chromem.compress")

	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Integrations
	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = expandEnvVar(viper.GetString("memos.access_token"))
	if memosURL := viper.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateChatConfig(&cfg.Chat); err != nil {
		return nil, fmt.Errorf("invalid chat config: %w", err)
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("cors.allowed_origins", []string{"*"})

	viper.SetDefault("sqlite.path", "data/chat_history.db")

	// Chat defaults
	viper.SetDefault("chat.memory_policy", "tokens")
	viper.SetDefault("chat.memory_token_limit", 2000)
	viper.SetDefault("chat.memory_max_entries", 20)
	viper.SetDefault("chat.memory_max_users", 10000)
	viper.SetDefault("chat.memory_ttl", "24h")
	viper.SetDefault("chat.pending_ttl", "10m")
	viper.SetDefault("chat.summary_threshold", 20)
	viper.SetDefault("chat.summary_window", 50)
	viper.SetDefault("chat.retrieve_top_k", 3)
	viper.SetDefault("chat.retrieve_timeout", "10s")
	viper.SetDefault("chat.max_passage_chars", 500)

	viper.SetDefault("notes.backend", "file")
	viper.SetDefault("notes.path", "data/notes.txt")
	viper.SetDefault("notes.tag", "sccse-notes")

	viper.SetDefault("retrieval.backend", "chromem")
	viper.SetDefault("qdrant.collection_name", "sccse_handbook")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("chromem.path", "data/chromem")
	viper.SetDefault("chromem.collection", "sccse_handbook")
	viper.SetDefault("chromem.compress", false)
	viper.SetDefault("voyage.model", "voyage-3")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.temperature", 0.0)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList flattens comma separated entries, which is how list values
// arrive when they come from the environment.
func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, item := range strings.Split(r, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// validateLLMConfig validates the LLM configuration
func validateChatConfig(cfg *ChatConfig) error {
	switch cfg.MemoryPolicy {
	case "", "tokens", "count":
		return nil
	default:
		return fmt.Errorf("chat.memory_policy %q: want tokens or count", cfg.MemoryPolicy)
	}
}

func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
