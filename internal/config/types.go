package config

// Config is the root settings aggregate, read from config.yaml in the
// application directory.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	UI       UIConfig       `yaml:"ui"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Share    ShareConfig    `yaml:"share"`
	Dispatch DispatchConfig `yaml:"dispatch"`
}

// StorageConfig selects where configurator state is persisted.
type StorageConfig struct {
	// Backend is one of "file", "sqlite", "memory".
	Backend string `yaml:"backend"`
	// Path is the data directory. Empty means <app dir>/data.
	Path string `yaml:"path"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of "", "debug", "info", "warn", "error". Empty discards logs.
	Level string `yaml:"level"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// DefaultsConfig holds values applied to fresh sessions.
type DefaultsConfig struct {
	TechStack string `yaml:"tech_stack"`
}

// ShareConfig controls share link generation.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// DispatchConfig configures the optional OpenAI-compatible endpoint that
// generated prompts can be sent to.
type DispatchConfig struct {
	Model string `yaml:"model"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`
	// BaseURL overrides the API endpoint. Empty uses the library default.
	BaseURL string `yaml:"base_url"`
}

// fileWrapper is the on-disk shape of config.yaml.
type fileWrapper struct {
	UIPrompt Config `yaml:"uiprompt"`
}
