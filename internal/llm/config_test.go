package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_ThirtySecondTimeout(t *testing.T) {
	assert.Equal(t, 30000, DefaultConfig().TimeoutMs)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HAVEN_LLM_TIMEOUT_MS", "9000")
	t.Setenv("HAVEN_LOG_CALLS", "true")
	t.Setenv("HAVEN_CACHE_SIZE", "0")
	t.Setenv("HAVEN_DEEPSEEK_BASE_URL", "http://127.0.0.1:9999/v1")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, 0, cfg.CacheSize)
	spec, _ := LookupModel(ModelDeepSeek)
	assert.Equal(t, "http://127.0.0.1:9999/v1/", cfg.BaseURL(spec))
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("HAVEN_LLM_TIMEOUT_MS", "soon")
	t.Setenv("HAVEN_CACHE_SIZE", "-4")

	cfg := LoadConfig()

	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 128, cfg.CacheSize)
}

func TestLookupModel(t *testing.T) {
	m, ok := LookupModel(ModelLocal)
	assert.True(t, ok)
	assert.False(t, m.Remote())

	_, ok = LookupModel("gemini")
	assert.False(t, ok)
}
