package config

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate unexpanded template variables.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

var validBackends = map[string]bool{
	"file":   true,
	"sqlite": true,
	"memory": true,
}

var validLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for correctness. All problems are
// reported together as *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if !validBackends[cfg.Storage.Backend] {
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: "must be one of: file, sqlite, memory",
			Value:   cfg.Storage.Backend,
			Wrapped: ErrInvalidBackend,
		})
	}

	if !validLogLevels[cfg.Log.Level] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: debug, info, warn, error",
			Value:   cfg.Log.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if cfg.Defaults.TechStack != "" {
		if _, ok := models.ParseTechStack(cfg.Defaults.TechStack); !ok {
			errs = append(errs, ValidationError{
				Field:   "defaults.tech_stack",
				Message: fmt.Sprintf("must be one of: %q, %q", models.TechStackReactTailwind, models.TechStackHTMLCSS),
				Value:   cfg.Defaults.TechStack,
				Wrapped: ErrInvalidTechStack,
			})
		}
	}

	errs = append(errs, validateURL("share.base_url", cfg.Share.BaseURL, true)...)
	errs = append(errs, validateURL("dispatch.base_url", cfg.Dispatch.BaseURL, false)...)

	// Check for unexpanded dynamic tokens
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateURL checks that value is an absolute http(s) URL.
func validateURL(field, value string, required bool) []ValidationError {
	if value == "" {
		if required {
			return []ValidationError{{
				Field:   field,
				Message: "required field is empty",
				Wrapped: ErrInvalidConfig,
			}}
		}
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []ValidationError{{
			Field:   field,
			Message: "must be an absolute http or https URL",
			Value:   value,
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}

// validateDynamicTokens checks all string fields for unexpanded dynamic tokens.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError

	errs = append(errs, checkStringField("storage.path", cfg.Storage.Path)...)
	errs = append(errs, checkStringField("share.base_url", cfg.Share.BaseURL)...)
	errs = append(errs, checkStringField("dispatch.model", cfg.Dispatch.Model)...)
	errs = append(errs, checkStringField("dispatch.api_key_env", cfg.Dispatch.APIKeyEnv)...)
	errs = append(errs, checkStringField("dispatch.base_url", cfg.Dispatch.BaseURL)...)

	return errs
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
