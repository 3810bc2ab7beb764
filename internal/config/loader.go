package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads settings from config.yaml.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu     sync.RWMutex
	loaded bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads config.yaml from appDir and returns a Config with defaults
// applied for missing fields. A missing file yields defaults. An invalid
// file is skipped with a warning.
func (l *Loader) Load(appDir string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = false
	cfg := NewDefaultConfig()

	wrapper := &fileWrapper{UIPrompt: *cfg}
	loaded, err := loadYAMLFile(filepath.Clean(appDir), FileName, wrapper)
	if err != nil {
		slog.Warn("failed to load settings, using defaults", "error", err)
		return cfg, nil
	}
	if loaded {
		*cfg = wrapper.UIPrompt
		l.loaded = true
	}

	return cfg, nil
}

// Loaded reports whether the last Load found and parsed config.yaml.
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
