package config

import "github.com/modu-ai/uiprompt/pkg/models"

// Default value constants to avoid magic numbers and strings.
const (
	DefaultBackend      = "file"
	DefaultLogLevel     = ""
	DefaultShareBaseURL = "http://localhost:5173/"
	DefaultModel        = "gpt-4o-mini"
	DefaultAPIKeyEnv    = "OPENAI_API_KEY"

	// AppDirName is the application directory under the user's home.
	AppDirName = ".uiprompt"
	// FileName is the settings file inside the application directory.
	FileName = "config.yaml"
	// DataDirName is the default data directory inside the application directory.
	DataDirName = "data"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: DefaultBackend,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Defaults: DefaultsConfig{
			TechStack: string(models.DefaultTechStack),
		},
		Share: ShareConfig{
			BaseURL: DefaultShareBaseURL,
		},
		Dispatch: DispatchConfig{
			Model:     DefaultModel,
			APIKeyEnv: DefaultAPIKeyEnv,
		},
	}
}
