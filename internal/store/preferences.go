package store

import (
	"fmt"
	"sync"
)

// Theme is the terminal color theme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used until the user picks one.
const DefaultTheme = ThemeDark

// IsValid checks if the theme is dark or light.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Preferences persists UI preferences under PreferencesNamespace. It only
// records the choice; applying it to the terminal is up to the caller.
type Preferences struct {
	mu      sync.RWMutex
	backend Backend
	theme   Theme
}

// OpenPreferences reads the persisted preferences once. A missing or
// unsupported theme falls back to DefaultTheme.
func OpenPreferences(b Backend) (*Preferences, error) {
	p := &Preferences{backend: b, theme: DefaultTheme}

	var snap preferencesSnapshot
	found, err := readSnapshot(b, PreferencesNamespace, &snap)
	if err != nil {
		return nil, err
	}
	if found && snap.Theme.IsValid() {
		p.theme = snap.Theme
	}
	return p, nil
}

// Theme returns the current theme.
func (p *Preferences) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// SetTheme records theme.
func (p *Preferences) SetTheme(theme Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.theme = theme
	return writeSnapshot(p.backend, PreferencesNamespace, preferencesSnapshot{Theme: theme})
}

// ToggleTheme switches between dark and light and returns the new theme.
func (p *Preferences) ToggleTheme() (Theme, error) {
	next := ThemeDark
	if p.Theme() == ThemeDark {
		next = ThemeLight
	}
	return next, p.SetTheme(next)
}
