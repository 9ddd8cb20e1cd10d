package llm

import (
	"os"
	"strconv"
	"strings"
)

// ModelID names a provider in the catalogue.
type ModelID string

const (
	ModelDeepSeek ModelID = "deepseek"
	ModelOpenAI   ModelID = "openai"
	ModelClaude   ModelID = "claude"
	ModelLocal    ModelID = "local"
)

// ModelSpec describes one provider.
type ModelSpec struct {
	ID          ModelID
	Name        string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float64
}

// Remote reports whether calls to the model leave the process.
func (m ModelSpec) Remote() bool { return m.ID != ModelLocal }

// Catalogue lists the supported models in display order.
var Catalogue = []ModelSpec{
	{ModelDeepSeek, "DeepSeek AI", "https://api.deepseek.com/v1/", "deepseek-chat", 4000, 0.7},
	{ModelOpenAI, "OpenAI GPT", "https://api.openai.com/v1/", "gpt-4o-mini", 4000, 0.7},
	{ModelClaude, "Anthropic Claude", "https://api.anthropic.com/", "claude-sonnet-4-5", 4000, 0.7},
	{ModelLocal, "本地规则引擎", "", "rule_based", 2000, 0},
}

// LookupModel finds id in the catalogue.
func LookupModel(id ModelID) (ModelSpec, bool) {
	for _, m := range Catalogue {
		if m.ID == id {
			return m, true
		}
	}
	return ModelSpec{}, false
}

// Config holds the process-level settings of the remote responder.
type Config struct {
	LogCalls  bool
	TimeoutMs int
	// CacheSize bounds the answer cache. Zero disables caching.
	CacheSize int
	// BaseURLs overrides catalogue endpoints, keyed by model.
	BaseURLs map[ModelID]string
}

// DefaultConfig returns a Config with a 30 second timeout and a small cache.
func DefaultConfig() Config {
	return Config{
		TimeoutMs: 30000,
		CacheSize: 128,
		BaseURLs:  map[ModelID]string{},
	}
}

// LoadConfig reads HAVEN_LLM_* and HAVEN_<MODEL>_BASE_URL, falling back to
// defaults for unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("HAVEN_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HAVEN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("HAVEN_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheSize = n
		}
	}
	for _, m := range Catalogue {
		if !m.Remote() {
			continue
		}
		if v := os.Getenv("HAVEN_" + strings.ToUpper(string(m.ID)) + "_BASE_URL"); v != "" {
			cfg.BaseURLs[m.ID] = v
		}
	}
	return cfg
}

// BaseURL returns the endpoint for m, honouring overrides. The result always
// ends in a slash so SDK paths join cleanly.
func (c Config) BaseURL(m ModelSpec) string {
	u := m.BaseURL
	if o, ok := c.BaseURLs[m.ID]; ok && o != "" {
		u = o
	}
	if u != "" && !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}
