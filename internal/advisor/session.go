package advisor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/haven/internal/config"
	"github.com/alexanderramin/haven/internal/domain"
)

// ErrUnknownScenario is returned when a scenario id is not one of the six.
var ErrUnknownScenario = errors.New("unknown scenario")

// Settings is the slice of the configuration store a session needs.
type Settings interface {
	GetString(key string) string
	Set(key string, value any) error
}

// Session carries the active scenario for one user. It is loaded from and
// saved to Settings; nothing else holds scenario state.
type Session struct {
	mu       sync.RWMutex
	scenario domain.Scenario
	settings Settings
}

// NewSession loads the active scenario from settings. A missing or unknown
// stored id yields normal.
func NewSession(settings Settings) *Session {
	return &Session{
		scenario: domain.ScenarioOrDefault(settings.GetString(config.KeyScenario)),
		settings: settings,
	}
}

func (s *Session) Scenario() domain.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scenario
}

// Info is the catalogue entry of the active scenario.
func (s *Session) Info() domain.ScenarioMeta {
	return s.Scenario().Meta()
}

// SetScenario validates id, persists it and then makes it active. On any
// error the active scenario is unchanged.
func (s *Session) SetScenario(id string) error {
	sc, ok := domain.ParseScenario(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.settings.Set(config.KeyScenario, string(sc)); err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}
	s.scenario = sc
	return nil
}

// Reload re-reads the active scenario after the settings changed underneath
// the session, for example after a reset.
func (s *Session) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenario = domain.ScenarioOrDefault(s.settings.GetString(config.KeyScenario))
}
