package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Batch I/O
	InputDir  string
	OutputDir string

	// Embedding service (OpenAI-compatible /embeddings endpoint)
	EmbedBaseURL string
	EmbedModel   string
	EmbedAPIKey  string

	// Ranking
	MaxSections    int
	PerDocCap      int
	BoostIncrement float64
	DomainHints    []string
	BoostKeywords  []string

	// Advisory wall-clock budget for one run.
	TimeBudget time.Duration

	// Serve mode
	Port           string
	DocsiftAPIKey  string
	WorkerCount    int
	MaxQueueSize   int
	RunTTL         time.Duration
	MaxRequestSize int64
}

// DefaultDomainHints seed the query template. They encode the travel/leisure
// prior of the reference persona; override DOMAIN_HINTS to repurpose the
// system for other domains.
var DefaultDomainHints = []string{
	"activities", "coastal adventures", "nightlife", "dining", "cities",
	"practical tips for young adults traveling together in groups",
}

// DefaultBoostKeywords trigger the additive relevance boost. Tunable
// configuration, not business logic.
var DefaultBoostKeywords = []string{
	"coastal", "beach", "nightlife", "entertainment", "bar", "club",
	"activities", "things to do", "comprehensive guide", "cities",
	"culinary", "cooking", "wine", "group", "friends", "young",
	"packing", "tips", "tricks", "practical",
}

func Load() Config {
	cfg := Config{
		InputDir:  envOr("DOCSIFT_INPUT_DIR", "input"),
		OutputDir: envOr("DOCSIFT_OUTPUT_DIR", "output"),

		EmbedBaseURL: envOr("EMBED_BASE_URL", "http://localhost:11434/v1"),
		EmbedModel:   envOr("EMBED_MODEL", "all-minilm"),
		EmbedAPIKey:  os.Getenv("EMBED_API_KEY"),

		MaxSections:    envInt("MAX_SECTIONS", 5),
		PerDocCap:      envInt("PER_DOC_CAP", 2),
		BoostIncrement: envFloat("BOOST_INCREMENT", 0.1),
		DomainHints:    envList("DOMAIN_HINTS", DefaultDomainHints),
		BoostKeywords:  envList("BOOST_KEYWORDS", DefaultBoostKeywords),

		TimeBudget: envDuration("TIME_BUDGET", 60*time.Second),

		Port:           envOr("PORT", "8094"),
		DocsiftAPIKey:  os.Getenv("DOCSIFT_API_KEY"),
		WorkerCount:    envInt("WORKER_COUNT", 2),
		MaxQueueSize:   envInt("MAX_QUEUE_SIZE", 32),
		RunTTL:         envDuration("RUN_TTL", 1*time.Hour),
		MaxRequestSize: envInt64("MAX_REQUEST_SIZE", 1<<20),
	}

	if cfg.MaxSections <= 0 {
		cfg.MaxSections = 5
	}
	if cfg.PerDocCap <= 0 {
		cfg.PerDocCap = 2
	}
	if cfg.BoostIncrement < 0 {
		cfg.BoostIncrement = 0.1
	}
	if cfg.TimeBudget <= 0 {
		cfg.TimeBudget = 60 * time.Second
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 32
	}
	if cfg.RunTTL <= 0 {
		cfg.RunTTL = 1 * time.Hour
	}
	if cfg.MaxRequestSize <= 0 {
		cfg.MaxRequestSize = 1 << 20
	}

	return cfg
}

// Validate checks requirements common to both modes.
func (c Config) Validate() error {
	if c.EmbedBaseURL == "" {
		return fmt.Errorf("EMBED_BASE_URL is required")
	}
	if c.EmbedModel == "" {
		return fmt.Errorf("EMBED_MODEL is required")
	}
	return nil
}

// ValidateServe checks the additional requirements of serve mode.
func (c Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DocsiftAPIKey == "" {
		return fmt.Errorf("DOCSIFT_API_KEY is required in serve mode")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
