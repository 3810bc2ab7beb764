package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// managerState represents the lifecycle state of the ConfigManager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// ResolveAppDir returns $UIPROMPT_HOME when set, otherwise ~/.uiprompt.
func ResolveAppDir() (string, error) {
	if dir := os.Getenv("UIPROMPT_HOME"); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, AppDirName), nil
}

// @MX:ANCHOR: [AUTO] ConfigManager is the single source of settings for the composition root.
// @MX:REASON: [AUTO] fan_in=5, read by deps wiring, storage, logging, share and send
// ConfigManager provides thread-safe settings management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu     sync.RWMutex
	config *Config
	dir    string
	state  managerState
	loader *Loader
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads settings from appDir/config.yaml, merges them with compiled
// defaults and applies environment variable overrides. The result is
// validated before being stored.
func (m *ConfigManager) Load(appDir string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.loader.Load(appDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Environment variables have higher priority than the file
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.dir = filepath.Clean(appDir)
	m.state = stateInitialized

	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Dir returns the application directory passed to Load.
func (m *ConfigManager) Dir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dir
}

// Path returns the settings file path.
func (m *ConfigManager) Path() string {
	return filepath.Join(m.Dir(), FileName)
}

// DataDir returns storage.path, or <app dir>/data when unset.
func (m *ConfigManager) DataDir() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == stateUninitialized {
		return "", ErrNotInitialized
	}
	if p := m.config.Storage.Path; p != "" {
		return expandHome(p), nil
	}
	return filepath.Join(m.dir, DataDirName), nil
}

// Save persists the current configuration to config.yaml atomically.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(fileWrapper{UIPrompt: *m.config})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", FileName, err)
	}
	return atomicWrite(filepath.Join(m.dir, FileName), data)
}

// Reload forces a re-read from disk, replacing the in-memory configuration.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	cfg, err := m.loader.Load(m.dir)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if backend := os.Getenv("UIPROMPT_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if level := os.Getenv("UIPROMPT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if noColor := os.Getenv("UIPROMPT_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.UI.NoColor = true
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return filepath.Clean(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(p)
	}
	return filepath.Join(home, p[2:])
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".uiprompt-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
