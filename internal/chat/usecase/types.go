package usecase

import (
	"context"
	"time"

	"sccse-chatbot/internal/memory"
	"sccse-chatbot/internal/skill"
	"sccse-chatbot/pkg/llmprovider"
)

// Generator produces answer text. Satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the use case. Zero values fall back to defaults.
type Config struct {
	Passkey    string
	PendingTTL time.Duration

	// MemoryPolicy is memory.PolicyTokens (default) or memory.PolicyCount.
	MemoryPolicy     string
	MemoryTokenLimit int
	MemoryMaxEntries int
	MemoryMaxUsers   int
	MemoryTTL        time.Duration

	Skills skill.Map

	SummaryThreshold int
	SummaryWindow    int

	RetrieveTopK    int
	RetrieveTimeout time.Duration
	MaxPassageChars int

	Temperature float64
	MaxTokens   int
}

const (
	defaultPendingTTL       = 10 * time.Minute
	defaultMemoryTokenLimit = 2000
	defaultMemoryMaxEntries = 20
	defaultMemoryMaxUsers   = 10000
	defaultMemoryTTL        = 24 * time.Hour
	defaultSummaryThreshold = 20
	defaultSummaryWindow    = 50
	defaultRetrieveTopK     = 3
	defaultRetrieveTimeout  = 10 * time.Second
	defaultMaxPassageChars  = 500
	retrieveAttempts        = 2
)

func (c Config) memoryLimit() int {
	if c.MemoryPolicy == memory.PolicyCount {
		return c.MemoryMaxEntries
	}
	return c.MemoryTokenLimit
}

func (c Config) withDefaults() Config {
	if c.PendingTTL <= 0 {
		c.PendingTTL = defaultPendingTTL
	}
	if c.MemoryTokenLimit <= 0 {
		c.MemoryTokenLimit = defaultMemoryTokenLimit
	}
	if c.MemoryPolicy == "" {
		c.MemoryPolicy = memory.PolicyTokens
	}
	if c.MemoryMaxEntries <= 0 {
		c.MemoryMaxEntries = defaultMemoryMaxEntries
	}
	if c.MemoryMaxUsers <= 0 {
		c.MemoryMaxUsers = defaultMemoryMaxUsers
	}
	if c.MemoryTTL <= 0 {
		c.MemoryTTL = defaultMemoryTTL
	}
	if c.SummaryThreshold <= 0 {
		c.SummaryThreshold = defaultSummaryThreshold
	}
	if c.SummaryWindow <= 0 {
		c.SummaryWindow = defaultSummaryWindow
	}
	if c.RetrieveTopK <= 0 {
		c.RetrieveTopK = defaultRetrieveTopK
	}
	if c.RetrieveTimeout <= 0 {
		c.RetrieveTimeout = defaultRetrieveTimeout
	}
	if c.MaxPassageChars <= 0 {
		c.MaxPassageChars = defaultMaxPassageChars
	}
	return c
}
