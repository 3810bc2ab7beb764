package store

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// Namespaces under which the two stores persist their snapshots.
const (
	ConfigNamespace      = "ui-prompt-generator-config"
	PreferencesNamespace = "ui-prompt-generator-ui"
)

// configSnapshot is the persisted subset of Store state. The generated
// prompt is derived and never persisted.
type configSnapshot struct {
	CurrentUIType  models.UIType                          `yaml:"currentUIType"`
	TechStack      models.TechStack                       `yaml:"techStack,omitempty"`
	Configurations map[models.UIType]models.Configuration `yaml:"configurations"`
	SavedConfigs   []models.SavedConfiguration            `yaml:"savedConfigs"`
}

// preferencesSnapshot is the persisted Preferences state.
type preferencesSnapshot struct {
	Theme Theme `yaml:"theme"`
}

// readSnapshot loads key from b into target. Returns (false, nil) when the
// key has never been written.
func readSnapshot(b Backend, key string, target any) (bool, error) {
	data, ok, err := b.Get(key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, key, err)
	}
	return true, nil
}

// writeSnapshot marshals v to YAML and stores it under key.
func writeSnapshot(b Backend, key string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := b.Put(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
