package store

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// GenerationErrorPrompt replaces the prompt when generation fails.
const GenerationErrorPrompt = "Error generating prompt. Please check your configuration."

// Engine is the subset of the template engine the store depends on.
type Engine interface {
	ListTypes() []models.UIType
	Schema(t models.UIType) (models.UITypeSchema, error)
	DefaultConfig(t models.UIType) (models.Configuration, error)
	Generate(t models.UIType, cfg models.Configuration, stack models.TechStack) (string, error)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load warnings and generation failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the clock used for saved configuration timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the saved configuration id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithDefaultTechStack sets the stack used by fresh sessions and by
// snapshots whose stack is missing or unsupported. Invalid stacks are ignored.
func WithDefaultTechStack(stack models.TechStack) Option {
	return func(s *Store) {
		if stack.IsValid() {
			s.defaultStack = stack
		}
	}
}

// @MX:ANCHOR: [AUTO] Store owns all mutable configurator state; every CLI command goes through it.
// @MX:REASON: [AUTO] fan_in=15+, single owner of the persisted snapshot
// Store holds the configurator state and persists it through a Backend.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	engine  Engine
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string

	defaultStack models.TechStack

	current models.UIType
	stack   models.TechStack
	configs map[models.UIType]models.Configuration
	prompt  string
	saved   []models.SavedConfiguration
}

// Open builds a Store seeded with every registered type's defaults, then
// overlays the snapshot persisted under ConfigNamespace, if any. The
// snapshot is read exactly once. The prompt for the current type is
// generated before Open returns.
func Open(b Backend, e Engine, opts ...Option) (*Store, error) {
	s := &Store{
		backend: b,
		engine:  e,
		logger:  slog.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
		configs: make(map[models.UIType]models.Configuration),

		defaultStack: models.DefaultTechStack,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.stack = s.defaultStack

	types := e.ListTypes()
	if len(types) == 0 {
		return nil, errors.New("store: engine has no registered UI types")
	}
	s.current = types[0]
	for _, t := range types {
		cfg, err := e.DefaultConfig(t)
		if err != nil {
			return nil, fmt.Errorf("default config %s: %w", t, err)
		}
		s.configs[t] = cfg
	}

	var snap configSnapshot
	found, err := readSnapshot(b, ConfigNamespace, &snap)
	if err != nil {
		return nil, err
	}
	if found {
		s.restore(snap)
	}

	s.generateLocked()
	return s, nil
}

// restore overlays a decoded snapshot onto the seeded state.
func (s *Store) restore(snap configSnapshot) {
	if s.registered(snap.CurrentUIType) {
		s.current = snap.CurrentUIType
	} else if snap.CurrentUIType != "" {
		s.logger.Warn("persisted UI type not registered, using default",
			"uiType", snap.CurrentUIType, "default", s.current)
	}

	s.stack = s.fallbackStack(snap.TechStack)

	for t, cfg := range snap.Configurations {
		if !s.registered(t) {
			s.logger.Warn("dropping configuration for unknown UI type", "uiType", t)
			continue
		}
		s.configs[t] = cfg.Clone()
	}

	for _, sc := range snap.SavedConfigs {
		if !s.registered(sc.UIType) {
			s.logger.Warn("dropping saved configuration for unknown UI type",
				"id", sc.ID, "name", sc.Name, "uiType", sc.UIType)
			continue
		}
		sc.Config = sc.Config.Clone()
		s.saved = append(s.saved, sc)
	}
}

// fallbackStack maps a missing or unsupported persisted stack to the
// default. Older snapshots predate the tech stack field.
func (s *Store) fallbackStack(stack models.TechStack) models.TechStack {
	if stack == "" {
		return s.defaultStack
	}
	if !stack.IsValid() {
		s.logger.Warn("persisted tech stack not supported, using default",
			"techStack", stack, "default", s.defaultStack)
		return s.defaultStack
	}
	return stack
}

func (s *Store) registered(t models.UIType) bool {
	_, ok := s.configs[t]
	return ok
}

// checkType returns the engine's unknown type error for t. Every
// registered type has a configuration seeded in Open.
func (s *Store) checkType(t models.UIType) error {
	_, err := s.engine.Schema(t)
	return err
}

// CurrentUIType returns the selected UI type.
func (s *Store) CurrentUIType() models.UIType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// TechStack returns the selected tech stack.
func (s *Store) TechStack() models.TechStack {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stack
}

// Prompt returns the most recently generated prompt.
func (s *Store) Prompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt
}

// Configuration returns a copy of the configuration held for t.
func (s *Store) Configuration(t models.UIType) (models.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkType(t); err != nil {
		return nil, err
	}
	return s.configs[t].Clone(), nil
}

// SavedConfigurations returns the saved configurations in save order.
func (s *Store) SavedConfigurations() []models.SavedConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SavedConfiguration, len(s.saved))
	for i, sc := range s.saved {
		sc.Config = sc.Config.Clone()
		out[i] = sc
	}
	return out
}

// SetUIType selects t and regenerates the prompt.
func (s *Store) SetUIType(t models.UIType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkType(t); err != nil {
		return err
	}
	s.current = t
	s.generateLocked()
	return s.persistLocked()
}

// SetTechStack selects stack and regenerates the prompt.
func (s *Store) SetTechStack(stack models.TechStack) error {
	if !stack.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTechStack, stack)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stack = stack
	s.generateLocked()
	return s.persistLocked()
}

// UpdateConfig shallow-merges partial into t's configuration. The prompt is
// regenerated when t is the current type.
func (s *Store) UpdateConfig(t models.UIType, partial models.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkType(t); err != nil {
		return err
	}
	return s.updateLocked(t, partial)
}

func (s *Store) updateLocked(t models.UIType, partial models.Configuration) error {
	s.configs[t] = s.configs[t].Merge(partial)
	if t == s.current {
		s.generateLocked()
	}
	return s.persistLocked()
}

// ToggleOption adds choice to the multiSelect option id of t when absent
// and removes it when present.
func (s *Store) ToggleOption(t models.UIType, id, choice string) error {
	schema, err := s.engine.Schema(t)
	if err != nil {
		return err
	}
	opt, ok := schema.Option(id)
	if !ok || opt.Type != models.OptionMultiSelect {
		return fmt.Errorf("%w: %s.%s", ErrNotMultiSelect, t, id)
	}
	if !opt.HasChoice(choice) {
		return fmt.Errorf("%w: %s.%s: %q", ErrUnknownChoice, t, id, choice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := models.ToggleChoice(s.configs[t].List(id), choice)
	return s.updateLocked(t, models.Configuration{id: values})
}

// ResetConfig restores t's defaults. The prompt is regenerated when t is
// the current type.
func (s *Store) ResetConfig(t models.UIType) error {
	cfg, err := s.engine.DefaultConfig(t)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs[t] = cfg
	if t == s.current {
		s.generateLocked()
	}
	return s.persistLocked()
}

// GeneratePrompt regenerates and returns the prompt for the current type.
// A generation failure is logged and yields GenerationErrorPrompt.
func (s *Store) GeneratePrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generateLocked()
	return s.prompt
}

func (s *Store) generateLocked() {
	prompt, err := s.engine.Generate(s.current, s.configs[s.current], s.stack)
	if err != nil {
		s.logger.Error("error generating prompt", "uiType", s.current, "error", err)
		s.prompt = GenerationErrorPrompt
		return
	}
	s.prompt = prompt
}

// SaveConfiguration snapshots the current type's configuration and tech
// stack under name. The saved copy shares no storage with the live state.
func (s *Store) SaveConfiguration(name string) (models.SavedConfiguration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedConfiguration{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := models.SavedConfiguration{
		ID:        s.newID(),
		Name:      name,
		UIType:    s.current,
		TechStack: s.stack,
		Config:    s.configs[s.current].Clone(),
		Timestamp: s.now().UnixMilli(),
	}
	s.saved = append(s.saved, sc)

	if err := s.persistLocked(); err != nil {
		return models.SavedConfiguration{}, err
	}
	sc.Config = sc.Config.Clone()
	return sc, nil
}

// LoadConfiguration makes the saved configuration id current: its type,
// tech stack and a copy of its configuration. Saved entries without a
// tech stack load with the default stack.
func (s *Store) LoadConfiguration(id string) (models.SavedConfiguration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.SavedConfiguration{}, fmt.Errorf("%w: %s", ErrSavedNotFound, id)
	}
	sc := s.saved[i]

	s.current = sc.UIType
	s.stack = s.fallbackStack(sc.TechStack)
	s.configs[sc.UIType] = sc.Config.Clone()
	s.generateLocked()

	if err := s.persistLocked(); err != nil {
		return models.SavedConfiguration{}, err
	}
	sc.Config = sc.Config.Clone()
	return sc, nil
}

// DeleteConfiguration removes the saved configuration id.
func (s *Store) DeleteConfiguration(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSavedNotFound, id)
	}
	s.saved = slices.Delete(s.saved, i, i+1)
	return s.persistLocked()
}

// ClearSavedConfigurations removes every saved configuration and returns
// how many were removed.
func (s *Store) ClearSavedConfigurations() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.saved)
	s.saved = nil
	return n, s.persistLocked()
}

// FindSaved resolves a saved configuration by exact id, then by unique id
// prefix, then by exact name.
func (s *Store) FindSaved(ref string) (models.SavedConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(ref); i >= 0 {
		return cloneSaved(s.saved[i]), nil
	}

	match := -1
	for i, sc := range s.saved {
		if ref != "" && strings.HasPrefix(sc.ID, ref) {
			if match >= 0 {
				match = -2
				break
			}
			match = i
		}
	}
	if match >= 0 {
		return cloneSaved(s.saved[match]), nil
	}

	for _, sc := range s.saved {
		if sc.Name == ref {
			return cloneSaved(sc), nil
		}
	}
	return models.SavedConfiguration{}, fmt.Errorf("%w: %s", ErrSavedNotFound, ref)
}

func cloneSaved(sc models.SavedConfiguration) models.SavedConfiguration {
	sc.Config = sc.Config.Clone()
	return sc
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.saved, func(sc models.SavedConfiguration) bool {
		return sc.ID == id
	})
}

func (s *Store) persistLocked() error {
	snap := configSnapshot{
		CurrentUIType:  s.current,
		TechStack:      s.stack,
		Configurations: s.configs,
		SavedConfigs:   s.saved,
	}
	return writeSnapshot(s.backend, ConfigNamespace, snap)
}
