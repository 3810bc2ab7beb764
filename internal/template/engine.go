// Package template holds the UI type schemas, the per-type prompt
// generators, and the Engine that binds them together.
package template

import (
	"fmt"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// Generator turns a configuration and tech stack into prompt text.
// Implementations must be deterministic and must not retain or modify cfg.
type Generator interface {
	Generate(cfg models.Configuration, stack models.TechStack) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(cfg models.Configuration, stack models.TechStack) (string, error)

// Generate calls f(cfg, stack).
func (f GeneratorFunc) Generate(cfg models.Configuration, stack models.TechStack) (string, error) {
	return f(cfg, stack)
}

// Entry binds a schema to its generator.
type Entry struct {
	Schema    models.UITypeSchema
	Generator Generator
}

// @MX:ANCHOR: [AUTO] Engine is the single entry point the CLI, store and exporters call into.
// @MX:REASON: [AUTO] fan_in=4, used by store, cli, wizard and export tests
// Engine is the registry and dispatcher for UI types. It is built once and
// read-only afterwards, so it is safe for concurrent use.
type Engine struct {
	order   []models.UIType
	entries map[models.UIType]Entry
}

// NewEngine builds an Engine from entries, preserving their order.
// Every schema is validated; duplicates return ErrDuplicateUIType.
func NewEngine(entries ...Entry) (*Engine, error) {
	e := &Engine{
		order:   make([]models.UIType, 0, len(entries)),
		entries: make(map[models.UIType]Entry, len(entries)),
	}
	for _, entry := range entries {
		t := entry.Schema.Type
		if _, dup := e.entries[t]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUIType, t)
		}
		if entry.Generator == nil {
			return nil, fmt.Errorf("%w: %s: nil generator", ErrInvalidSchema, t)
		}
		if err := ValidateSchema(entry.Schema); err != nil {
			return nil, err
		}
		e.order = append(e.order, t)
		e.entries[t] = entry
	}
	return e, nil
}

// New returns an Engine with the five built-in UI types registered.
func New() *Engine {
	e, err := NewEngine(builtinEntries()...)
	if err != nil {
		panic(fmt.Sprintf("template: built-in registry: %v", err))
	}
	return e
}

// ListTypes returns the registered UI types in registration order.
// The returned slice is a copy.
func (e *Engine) ListTypes() []models.UIType {
	out := make([]models.UIType, len(e.order))
	copy(out, e.order)
	return out
}

// Schema returns the schema for t.
func (e *Engine) Schema(t models.UIType) (models.UITypeSchema, error) {
	entry, err := e.lookup(t)
	if err != nil {
		return models.UITypeSchema{}, err
	}
	return entry.Schema, nil
}

// DefaultConfig returns a freshly built configuration holding every option's
// default value. Each call returns independent storage.
func (e *Engine) DefaultConfig(t models.UIType) (models.Configuration, error) {
	entry, err := e.lookup(t)
	if err != nil {
		return nil, err
	}
	cfg := make(models.Configuration, len(entry.Schema.Options))
	for _, opt := range entry.Schema.Options {
		cfg[opt.ID] = opt.Default()
	}
	return cfg, nil
}

// ValidateConfig reports whether every option id of t's schema is present
// in cfg. Only key presence is checked; value shapes are not.
func (e *Engine) ValidateConfig(t models.UIType, cfg models.Configuration) (bool, error) {
	entry, err := e.lookup(t)
	if err != nil {
		return false, err
	}
	for _, opt := range entry.Schema.Options {
		if !cfg.Has(opt.ID) {
			return false, nil
		}
	}
	return true, nil
}

// Generate dispatches to t's generator. The generator receives a deep copy,
// so cfg is never modified.
func (e *Engine) Generate(t models.UIType, cfg models.Configuration, stack models.TechStack) (string, error) {
	entry, err := e.lookup(t)
	if err != nil {
		return "", err
	}
	out, err := entry.Generator.Generate(cfg.Clone(), stack)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", t, err)
	}
	return out, nil
}

func (e *Engine) lookup(t models.UIType) (Entry, error) {
	entry, ok := e.entries[t]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownUIType, t)
	}
	return entry, nil
}

// ValidateSchema checks the form model invariants: a non-empty type, known
// option types, unique ids, and defaults drawn from the declared choices.
func ValidateSchema(s models.UITypeSchema) error {
	if s.Type == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidSchema)
	}
	seen := make(map[string]bool, len(s.Options))
	for _, opt := range s.Options {
		if opt.ID == "" {
			return fmt.Errorf("%w: %s: option with empty id", ErrInvalidSchema, s.Type)
		}
		if seen[opt.ID] {
			return fmt.Errorf("%w: %s: duplicate option id %q", ErrInvalidSchema, s.Type, opt.ID)
		}
		seen[opt.ID] = true
		if !opt.Type.IsValid() {
			return fmt.Errorf("%w: %s.%s: unknown option type %q", ErrInvalidSchema, s.Type, opt.ID, opt.Type)
		}
		if err := validateDefault(opt); err != nil {
			return fmt.Errorf("%w: %s.%s: %v", ErrInvalidSchema, s.Type, opt.ID, err)
		}
	}
	return nil
}

func validateDefault(opt models.ConfigOption) error {
	switch opt.Type {
	case models.OptionSelect:
		def, ok := opt.DefaultValue.(string)
		if !ok {
			return fmt.Errorf("default must be a string")
		}
		if len(opt.Options) == 0 {
			return fmt.Errorf("select requires options")
		}
		if !opt.HasChoice(def) {
			return fmt.Errorf("default %q is not a declared option", def)
		}
	case models.OptionMultiSelect:
		defs, ok := opt.DefaultValue.([]string)
		if !ok {
			return fmt.Errorf("default must be a list of strings")
		}
		if len(opt.Options) == 0 {
			return fmt.Errorf("multiSelect requires options")
		}
		for _, d := range defs {
			if !opt.HasChoice(d) {
				return fmt.Errorf("default %q is not a declared option", d)
			}
		}
	case models.OptionText, models.OptionTextarea:
		if _, ok := opt.DefaultValue.(string); !ok {
			return fmt.Errorf("default must be a string")
		}
	case models.OptionToggle:
		if _, ok := opt.DefaultValue.(bool); !ok {
			return fmt.Errorf("default must be a boolean")
		}
	}
	return nil
}
