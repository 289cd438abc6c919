package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"sccse-chatbot/config"
	"sccse-chatbot/pkg/gemini"
	"sccse-chatbot/pkg/groq"
	"sccse-chatbot/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped and logged.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed to initialize, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// NewManagerFromConfig parses the durations in cfg and builds a Manager.
func NewManagerFromConfig(providers []Provider, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	retryDelay, err := parseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, l), nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout, err := parseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
	}
	var httpClient *http.Client
	if timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}

	name := strings.ToLower(cfg.Name)
	switch name {
	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderGroq, ProviderDeepSeek, ProviderQwen, ProviderOpenAI:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = compatibleBaseURLs[name]
		}
		client, err := groq.New(groq.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewCompatibleAdapter(name, client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}

func parseDuration(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
