package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/haven/internal/config"
	"github.com/alexanderramin/haven/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Settings is the slice of the configuration store the manager needs.
type Settings interface {
	GetString(key string) string
	Set(key string, value any) error
}

// Request is one question for the remote responder.
type Request struct {
	Question string
	Context  string
	Scenario domain.Scenario
	// Fallback is what the local model answers with.
	Fallback string
}

// Result is the outcome of Generate. Failures never escape as errors: OK is
// false and Err says why.
type Result struct {
	OK         bool
	Text       string
	TokensUsed int
	Model      ModelID
	Err        error
}

// ModelStatus is a catalogue entry plus the caller-visible state.
type ModelStatus struct {
	ModelSpec
	HasAPIKey bool
	Current   bool
}

// Usage counts calls made through the manager in this process.
type Usage struct {
	Requests int
	Failures int
	Tokens   int
}

// ConnectionResult is the outcome of TestConnection.
type ConnectionResult struct {
	OK      bool
	Message string
}

// Manager selects the active model, holds credentials through Settings and
// routes requests to the matching provider.
type Manager struct {
	cfg      Config
	settings Settings
	observer Observer
	http     *http.Client
	cache    *lru.Cache[string, Completion]

	mu    sync.Mutex
	usage map[ModelID]Usage
}

func NewManager(cfg Config, settings Settings, observer Observer) (*Manager, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	m := &Manager{
		cfg:      cfg,
		settings: settings,
		observer: observer,
		http:     newHTTPClient(),
		usage:    make(map[ModelID]Usage),
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, Completion](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating answer cache: %w", err)
		}
		m.cache = cache
	}
	return m, nil
}

// Current returns the active model. An unknown stored id falls back to local.
func (m *Manager) Current() ModelSpec {
	spec, ok := LookupModel(ModelID(m.settings.GetString(config.KeyModel)))
	if !ok {
		spec, _ = LookupModel(ModelLocal)
	}
	return spec
}

func (m *Manager) apiKey(id ModelID) string {
	return strings.TrimSpace(m.settings.GetString(config.APIKeyPath(string(id))))
}

// SetCurrent switches the active model. Remote models need a stored key.
func (m *Manager) SetCurrent(id ModelID) error {
	spec, ok := LookupModel(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModel, id)
	}
	if spec.Remote() && m.apiKey(id) == "" {
		return fmt.Errorf("%w: %s", ErrMissingCredential, spec.Name)
	}
	return m.settings.Set(config.KeyModel, string(id))
}

// SetAPIKey stores the credential for a remote model.
func (m *Manager) SetAPIKey(id ModelID, key string) error {
	spec, ok := LookupModel(id)
	if !ok || !spec.Remote() {
		return fmt.Errorf("%w: %s", ErrUnknownModel, id)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: empty key for %s", ErrMissingCredential, spec.Name)
	}
	return m.settings.Set(config.APIKeyPath(string(id)), key)
}

// AvailableModels lists the catalogue with credential and selection flags.
func (m *Manager) AvailableModels() []ModelStatus {
	current := m.Current().ID
	out := make([]ModelStatus, 0, len(Catalogue))
	for _, spec := range Catalogue {
		out = append(out, ModelStatus{
			ModelSpec: spec,
			HasAPIKey: !spec.Remote() || m.apiKey(spec.ID) != "",
			Current:   spec.ID == current,
		})
	}
	return out
}

// Stats returns a copy of the per-model usage counters.
func (m *Manager) Stats() map[ModelID]Usage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[ModelID]Usage, len(m.usage))
	for k, v := range m.usage {
		out[k] = v
	}
	return out
}

// Generate answers req with the active model.
func (m *Manager) Generate(ctx context.Context, req Request) Result {
	return m.generate(ctx, m.Current(), req, true)
}

// TestConnection sends a short test request to id without touching the cache or
// the active model.
func (m *Manager) TestConnection(ctx context.Context, id ModelID) ConnectionResult {
	spec, ok := LookupModel(id)
	if !ok {
		return ConnectionResult{Message: fmt.Sprintf("未知模型: %s", id)}
	}
	if !spec.Remote() {
		return ConnectionResult{OK: true, Message: "本地规则引擎连接正常"}
	}
	if m.apiKey(id) == "" {
		return ConnectionResult{Message: fmt.Sprintf("未设置%s的API密钥", spec.Name)}
	}

	res := m.generate(ctx, spec, Request{Question: "测试连接", Scenario: domain.ScenarioNormal}, false)
	if !res.OK {
		return ConnectionResult{Message: fmt.Sprintf("%s API连接失败: %v", spec.Name, res.Err)}
	}
	return ConnectionResult{OK: true, Message: fmt.Sprintf("%s API连接正常", spec.Name)}
}

func (m *Manager) generate(ctx context.Context, spec ModelSpec, req Request, useCache bool) Result {
	key := m.apiKey(spec.ID)
	if spec.Remote() && key == "" {
		return m.fail(spec, 0, fmt.Errorf("%w: %s", ErrMissingCredential, spec.Name))
	}

	useCache = useCache && spec.Remote() && m.cache != nil
	cacheKey := strings.Join([]string{string(spec.ID), string(req.Scenario), req.Context, req.Question}, "\x00")
	if useCache {
		if c, ok := m.cache.Get(cacheKey); ok {
			m.observer.OnCallComplete(CallEvent{
				Provider: spec.ID, Model: c.Model, Success: true, Cached: true, TokensUsed: c.TokensUsed,
			})
			return Result{OK: true, Text: c.Text, TokensUsed: c.TokensUsed, Model: spec.ID}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(m.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	start := time.Now()
	c, err := m.provider(spec, key).Complete(ctx, Prompt{
		System:   SystemPrompt(req.Scenario),
		Context:  req.Context,
		Question: req.Question,
		Fallback: req.Fallback,
	})
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return m.fail(spec, latency, err)
	}

	if useCache {
		m.cache.Add(cacheKey, c)
	}
	m.record(spec.ID, true, c.TokensUsed)
	m.observer.OnCallComplete(CallEvent{
		Provider: spec.ID, Model: c.Model, LatencyMs: latency, TokensUsed: c.TokensUsed, Success: true,
	})
	return Result{OK: true, Text: c.Text, TokensUsed: c.TokensUsed, Model: spec.ID}
}

func (m *Manager) fail(spec ModelSpec, latency int64, err error) Result {
	m.record(spec.ID, false, 0)
	m.observer.OnCallComplete(CallEvent{
		Provider: spec.ID, Model: spec.ModelName, LatencyMs: latency, ErrorCode: errorCode(err),
	})
	return Result{Model: spec.ID, Err: err}
}

func (m *Manager) record(id ModelID, ok bool, tokens int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.usage[id]
	u.Requests++
	if !ok {
		u.Failures++
	}
	u.Tokens += tokens
	m.usage[id] = u
}

func (m *Manager) provider(spec ModelSpec, key string) Provider {
	switch spec.ID {
	case ModelDeepSeek, ModelOpenAI:
		return newChatProvider(spec, key, m.cfg.BaseURL(spec), m.http)
	case ModelClaude:
		return newClaudeProvider(spec, key, m.cfg.BaseURL(spec), m.http)
	}
	return localProvider{}
}
