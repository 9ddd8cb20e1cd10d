// Package config is the persistent settings file. Every Set writes the file
// before returning so a crash never loses an acknowledged change.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyScenario          = "scenarios.current"
	KeyModel             = "ai.current_model"
	KeyAPIKeys           = "ai.api_keys"
	KeyMaxResponseLength = "ai.max_response_length"
	KeyUserID            = "app.user_id"
)

// APIKeyPath returns the key under which the credential for provider is stored.
func APIKeyPath(provider string) string {
	return KeyAPIKeys + "." + provider
}

// Store is a YAML settings file addressed by dotted key paths.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads the settings file at path, creating it with defaults when it
// does not exist. A missing app.user_id is generated and persisted.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := newViper(path)
	s := &Store{v: v, path: path}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v.GetString(KeyUserID) == "" {
		if err := s.Set(KeyUserID, uuid.NewString()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newViper returns an empty settings tree bound to path with the built-in
// defaults applied.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(KeyScenario, "normal")
	v.SetDefault(KeyModel, "local")
	v.SetDefault(KeyMaxResponseLength, 1000)
	return v
}

// Path is the file backing the store.
func (s *Store) Path() string { return s.path }

func (s *Store) GetString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key)
}

func (s *Store) GetInt(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetInt(key)
}

// GetStringMap returns the string values nested under key.
func (s *Store) GetStringMap(key string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetStringMapString(key)
}

// Set changes key and persists the whole file. On a write failure the
// in-memory value is rolled back.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.v.Get(key), s.v.IsSet(key)
	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		if had {
			s.v.Set(key, prev)
		} else {
			s.v.Set(key, nil)
		}
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// All returns every setting, defaults included, as a nested map.
func (s *Store) All() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.AllSettings()
}

// Reset drops every stored setting, API keys included, and writes the
// defaults back. app.user_id survives so skill progress stays attached.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := newViper(s.path)
	fresh.Set(KeyUserID, s.v.GetString(KeyUserID))
	if err := fresh.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.v = fresh
	return nil
}
