package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "haven", "config.yaml")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpen_Defaults(t *testing.T) {
	s, path := openTemp(t)

	assert.Equal(t, "normal", s.GetString(KeyScenario))
	assert.Equal(t, "local", s.GetString(KeyModel))
	assert.Equal(t, 1000, s.GetInt(KeyMaxResponseLength))
	_, err := uuid.Parse(s.GetString(KeyUserID))
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSet_PersistsImmediately(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Set(KeyScenario, "zombie"))
	require.NoError(t, s.Set(APIKeyPath("deepseek"), "sk-test"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "zombie", reopened.GetString(KeyScenario))
	assert.Equal(t, "sk-test", reopened.GetString(APIKeyPath("deepseek")))
	assert.Equal(t, map[string]string{"deepseek": "sk-test"}, reopened.GetStringMap(KeyAPIKeys))
	assert.Equal(t, s.GetString(KeyUserID), reopened.GetString(KeyUserID))
}

func TestSet_WriteFailureRollsBack(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Set(KeyModel, "openai"))

	// Replace the file with a directory so the next write fails.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	err := s.Set(KeyModel, "claude")
	assert.Error(t, err)
	assert.Equal(t, "openai", s.GetString(KeyModel))
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: [unclosed"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("HAVEN_DB", "/tmp/x.db")
	t.Setenv("HAVEN_CONFIG", "/tmp/x.yaml")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, Env{DBPath: "/tmp/x.db", ConfigPath: "/tmp/x.yaml"}, env)
}

func TestAll_IncludesDefaultsAndNestedKeys(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Set(APIKeyPath("openai"), "sk-x"))

	all := s.All()
	assert.Equal(t, map[string]any{"current": "normal"}, all["scenarios"])
	ai, ok := all["ai"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "local", ai["current_model"])
	assert.Equal(t, map[string]any{"openai": "sk-x"}, ai["api_keys"])
}

func TestReset_RestoresDefaultsAndKeepsUserID(t *testing.T) {
	s, path := openTemp(t)
	userID := s.GetString(KeyUserID)
	require.NoError(t, s.Set(KeyScenario, "zombie"))
	require.NoError(t, s.Set(KeyModel, "claude"))
	require.NoError(t, s.Set(KeyMaxResponseLength, 50))
	require.NoError(t, s.Set(APIKeyPath("claude"), "sk-ant"))

	require.NoError(t, s.Reset())

	for _, store := range []*Store{s, mustOpen(t, path)} {
		assert.Equal(t, "normal", store.GetString(KeyScenario))
		assert.Equal(t, "local", store.GetString(KeyModel))
		assert.Equal(t, 1000, store.GetInt(KeyMaxResponseLength))
		assert.Empty(t, store.GetString(APIKeyPath("claude")))
		assert.Empty(t, store.GetStringMap(KeyAPIKeys))
		assert.Equal(t, userID, store.GetString(KeyUserID))
	}
}

func TestReset_WriteFailureKeepsSettings(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Set(KeyScenario, "alien"))

	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	assert.Error(t, s.Reset())
	assert.Equal(t, "alien", s.GetString(KeyScenario))
}

func mustOpen(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	return s
}
