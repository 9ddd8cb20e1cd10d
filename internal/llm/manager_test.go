package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/haven/internal/config"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSettings map[string]string

func (s memSettings) GetString(key string) string { return s[key] }

func (s memSettings) Set(key string, value any) error {
	s[key] = value.(string)
	return nil
}

type failingSettings struct{ memSettings }

func (failingSettings) Set(string, any) error { return errors.New("read-only filesystem") }

func newTestManager(t *testing.T, settings Settings, baseURLs map[ModelID]string) *Manager {
	t.Helper()
	cfg := DefaultConfig()
	cfg.TimeoutMs = 2000
	cfg.BaseURLs = baseURLs
	m, err := NewManager(cfg, settings, NoopObserver{})
	require.NoError(t, err)
	return m
}

type chatServer struct {
	calls atomic.Int32
	srv   *httptest.Server
}

func newChatServer(t *testing.T, handler http.HandlerFunc) *chatServer {
	t.Helper()
	cs := &chatServer{}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func chatCompletionJSON(content string, tokens int) string {
	return `{"id":"c1","object":"chat.completion","created":0,"model":"deepseek-chat",` +
		`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":` +
		mustJSON(content) + `}}],"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":` +
		mustJSON(tokens) + `}}`
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestGenerate_DeepSeekSendsScenarioPromptAndContext(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deepseek-chat", body.Model)
		require.Len(t, body.Messages, 3)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Contains(t, body.Messages[0].Content, "僵尸末日")
		assert.Equal(t, "背景信息：在城市里", body.Messages[1].Content)
		assert.Equal(t, "怎么找水", body.Messages[2].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionJSON("先找雨水", 42)))
	})

	settings := memSettings{config.APIKeyPath("deepseek"): "sk-test", config.KeyModel: "deepseek"}
	m := newTestManager(t, settings, map[ModelID]string{ModelDeepSeek: cs.srv.URL + "/v1"})

	res := m.Generate(context.Background(), Request{
		Question: "怎么找水", Context: "在城市里", Scenario: domain.ScenarioZombie,
	})

	require.True(t, res.OK, "err: %v", res.Err)
	assert.Equal(t, "先找雨水", res.Text)
	assert.Equal(t, 42, res.TokensUsed)
	assert.Equal(t, ModelDeepSeek, res.Model)
	assert.Equal(t, Usage{Requests: 1, Tokens: 42}, m.Stats()[ModelDeepSeek])
}

func TestGenerate_CachesRemoteAnswers(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionJSON("答案", 5)))
	})
	settings := memSettings{config.APIKeyPath("openai"): "sk-o", config.KeyModel: "openai"}
	m := newTestManager(t, settings, map[ModelID]string{ModelOpenAI: cs.srv.URL})

	req := Request{Question: "q", Scenario: domain.ScenarioNormal}
	first := m.Generate(context.Background(), req)
	second := m.Generate(context.Background(), req)

	require.True(t, first.OK)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, int32(1), cs.calls.Load())

	m.Generate(context.Background(), Request{Question: "q", Scenario: domain.ScenarioAlien})
	assert.Equal(t, int32(2), cs.calls.Load())
}

func TestGenerate_MissingCredentialSendsNothing(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {})
	settings := memSettings{config.KeyModel: "deepseek"}
	m := newTestManager(t, settings, map[ModelID]string{ModelDeepSeek: cs.srv.URL})

	res := m.Generate(context.Background(), Request{Question: "q"})

	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrMissingCredential)
	assert.Equal(t, int32(0), cs.calls.Load())
}

func TestGenerate_BadStatus(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
	})
	settings := memSettings{config.APIKeyPath("deepseek"): "sk-bad", config.KeyModel: "deepseek"}
	m := newTestManager(t, settings, map[ModelID]string{ModelDeepSeek: cs.srv.URL})

	res := m.Generate(context.Background(), Request{Question: "q"})

	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrBadStatus)
	assert.Equal(t, int32(1), cs.calls.Load(), "no retries")
	assert.Equal(t, Usage{Requests: 1, Failures: 1}, m.Stats()[ModelDeepSeek])
}

func TestGenerate_EmptyChoicesIsInvalidOutput(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":0,"model":"m","choices":[]}`))
	})
	settings := memSettings{config.APIKeyPath("deepseek"): "k", config.KeyModel: "deepseek"}
	m := newTestManager(t, settings, map[ModelID]string{ModelDeepSeek: cs.srv.URL})

	res := m.Generate(context.Background(), Request{Question: "q"})
	assert.ErrorIs(t, res.Err, ErrInvalidOutput)
}

func TestGenerate_Timeout(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	})
	settings := memSettings{config.APIKeyPath("deepseek"): "k", config.KeyModel: "deepseek"}
	cfg := DefaultConfig()
	cfg.TimeoutMs = 50
	cfg.BaseURLs = map[ModelID]string{ModelDeepSeek: cs.srv.URL}
	m, err := NewManager(cfg, settings, nil)
	require.NoError(t, err)

	res := m.Generate(context.Background(), Request{Question: "q"})
	assert.ErrorIs(t, res.Err, ErrTimeout)
}

func TestGenerate_Unavailable(t *testing.T) {
	settings := memSettings{config.APIKeyPath("deepseek"): "k", config.KeyModel: "deepseek"}
	m := newTestManager(t, settings, map[ModelID]string{ModelDeepSeek: "http://127.0.0.1:1"})

	res := m.Generate(context.Background(), Request{Question: "q"})
	assert.ErrorIs(t, res.Err, ErrProviderUnavailable)
}

func TestGenerate_Claude(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))

		var body struct {
			System []struct {
				Text string `json:"text"`
			} `json:"system"`
			Messages []struct {
				Role    string `json:"role"`
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.System, 1)
		assert.Contains(t, body.System[0].Text, "核辐射")
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		require.Len(t, body.Messages[0].Content, 1)
		assert.Equal(t, "碘片怎么吃", body.Messages[0].Content[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5",` +
			`"content":[{"type":"text","text":"成人每天130mg"}],"stop_reason":"end_turn",` +
			`"usage":{"input_tokens":3,"output_tokens":7}}`))
	})
	settings := memSettings{config.APIKeyPath("claude"): "sk-ant", config.KeyModel: "claude"}
	m := newTestManager(t, settings, map[ModelID]string{ModelClaude: cs.srv.URL})

	res := m.Generate(context.Background(), Request{Question: "碘片怎么吃", Scenario: domain.ScenarioNuclear})

	require.True(t, res.OK, "err: %v", res.Err)
	assert.Equal(t, "成人每天130mg", res.Text)
	assert.Equal(t, 10, res.TokensUsed)
}

func TestGenerate_LocalEchoesFallback(t *testing.T) {
	m := newTestManager(t, memSettings{}, nil)

	res := m.Generate(context.Background(), Request{Question: "q", Fallback: "本地答案"})

	assert.True(t, res.OK)
	assert.Equal(t, "本地答案", res.Text)
	assert.Equal(t, ModelLocal, res.Model)
}

func TestCurrent_UnknownStoredIDFallsBackToLocal(t *testing.T) {
	m := newTestManager(t, memSettings{config.KeyModel: "gemini"}, nil)
	assert.Equal(t, ModelLocal, m.Current().ID)
}

func TestSetCurrent(t *testing.T) {
	settings := memSettings{}
	m := newTestManager(t, settings, nil)

	assert.ErrorIs(t, m.SetCurrent("gemini"), ErrUnknownModel)
	assert.ErrorIs(t, m.SetCurrent(ModelClaude), ErrMissingCredential)
	assert.Equal(t, ModelLocal, m.Current().ID)

	require.NoError(t, m.SetAPIKey(ModelClaude, "  sk-ant  "))
	assert.Equal(t, "sk-ant", settings[config.APIKeyPath("claude")])
	require.NoError(t, m.SetCurrent(ModelClaude))
	assert.Equal(t, "claude", settings[config.KeyModel])
}

func TestSetCurrent_PersistFailureSurfaces(t *testing.T) {
	m := newTestManager(t, failingSettings{memSettings{}}, nil)
	assert.Error(t, m.SetCurrent(ModelLocal))
}

func TestSetAPIKey_Rejects(t *testing.T) {
	m := newTestManager(t, memSettings{}, nil)
	assert.ErrorIs(t, m.SetAPIKey(ModelLocal, "x"), ErrUnknownModel)
	assert.ErrorIs(t, m.SetAPIKey(ModelOpenAI, "   "), ErrMissingCredential)
}

func TestAvailableModels(t *testing.T) {
	m := newTestManager(t, memSettings{config.APIKeyPath("openai"): "k"}, nil)

	got := map[ModelID]ModelStatus{}
	for _, s := range m.AvailableModels() {
		got[s.ID] = s
	}
	assert.True(t, got[ModelLocal].HasAPIKey)
	assert.True(t, got[ModelLocal].Current)
	assert.True(t, got[ModelOpenAI].HasAPIKey)
	assert.False(t, got[ModelDeepSeek].HasAPIKey)
	assert.False(t, got[ModelClaude].HasAPIKey)
}

func TestTestConnection(t *testing.T) {
	cs := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionJSON("ok", 1)))
	})
	settings := memSettings{config.APIKeyPath("deepseek"): "k"}
	m := newTestManager(t, settings, map[ModelID]string{ModelDeepSeek: cs.srv.URL})
	ctx := context.Background()

	assert.Equal(t, ConnectionResult{OK: true, Message: "本地规则引擎连接正常"}, m.TestConnection(ctx, ModelLocal))
	assert.Equal(t, ConnectionResult{Message: "未设置OpenAI GPT的API密钥"}, m.TestConnection(ctx, ModelOpenAI))
	assert.False(t, m.TestConnection(ctx, "gemini").OK)

	res := m.TestConnection(ctx, ModelDeepSeek)
	assert.True(t, res.OK)
	assert.Equal(t, "DeepSeek AI API连接正常", res.Message)
	assert.Equal(t, ModelLocal, m.Current().ID, "a connection test must not switch the active model")

	m.TestConnection(ctx, ModelDeepSeek)
	assert.Equal(t, int32(2), cs.calls.Load(), "connection tests bypass the cache")
}

func TestLogObserver_Format(t *testing.T) {
	var buf bytes.Buffer
	NewLogObserver(&buf).OnCallComplete(CallEvent{
		Provider: ModelDeepSeek, Model: "deepseek-chat", LatencyMs: 12, ErrorCode: "TIMEOUT",
	})
	line := buf.String()
	assert.True(t, strings.Contains(line, "llm_call provider=deepseek model=deepseek-chat latency_ms=12"))
	assert.True(t, strings.HasSuffix(line, "status=err:TIMEOUT\n"))
}

func TestSystemPrompt_UnknownScenarioUsesNormal(t *testing.T) {
	assert.Equal(t, SystemPrompt(domain.ScenarioNormal), SystemPrompt("pirates"))
	assert.Contains(t, SystemPrompt(domain.ScenarioAlien), "外星人入侵")
}
