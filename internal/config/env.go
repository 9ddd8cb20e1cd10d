package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Env holds the file locations resolved from the environment.
type Env struct {
	DBPath     string
	ConfigPath string
}

// LoadEnv reads HAVEN_DB and HAVEN_CONFIG, defaulting both to ~/.haven.
func LoadEnv() (Env, error) {
	env := Env{
		DBPath:     os.Getenv("HAVEN_DB"),
		ConfigPath: os.Getenv("HAVEN_CONFIG"),
	}
	if env.DBPath != "" && env.ConfigPath != "" {
		return env, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Env{}, fmt.Errorf("finding home directory: %w", err)
	}
	if env.DBPath == "" {
		env.DBPath = filepath.Join(home, ".haven", "haven.db")
	}
	if env.ConfigPath == "" {
		env.ConfigPath = filepath.Join(home, ".haven", "config.yaml")
	}
	return env, nil
}
