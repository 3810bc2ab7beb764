// Package cli provides the Cobra command tree and dependency injection
// wiring for the uiprompt CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/modu-ai/uiprompt/internal/config"
	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/template"
	"github.com/modu-ai/uiprompt/internal/ui"
	"github.com/modu-ai/uiprompt/pkg/models"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.ConfigManager
	Engine   *template.Engine
	Backend  store.Backend
	Store    *store.Store
	Prefs    *store.Preferences
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// DepsOptions carries the global flags that influence wiring.
type DepsOptions struct {
	// AppDir overrides the resolved application directory.
	AppDir string
	// Verbose forces debug logging to LogOutput.
	Verbose bool
	// Ephemeral keeps all state in memory for this run.
	Ephemeral bool
	// LogOutput receives log records. Nil means os.Stderr.
	LogOutput io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// errNoDeps is returned by commands run before InitDependencies.
var errNoDeps = errors.New("dependencies not initialized")

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all domain modules
// @MX:REASON: [AUTO] fan_in=3, called from root PersistentPreRunE, deps_test.go, cli tests
// InitDependencies loads settings, opens the storage backend and restores
// the configurator state.
func InitDependencies(opts DepsOptions) (*Dependencies, error) {
	appDir := opts.AppDir
	if appDir == "" {
		dir, err := config.ResolveAppDir()
		if err != nil {
			return nil, err
		}
		appDir = dir
	}

	mgr := config.NewConfigManager()
	cfg, err := mgr.Load(appDir)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := newLogger(cfg.Log.Level, opts.Verbose, out)

	var backend store.Backend
	if opts.Ephemeral {
		backend = store.NewMemoryBackend()
	} else {
		dataDir, err := mgr.DataDir()
		if err != nil {
			return nil, err
		}
		backend, err = store.OpenBackend(cfg.Storage.Backend, dataDir)
		if err != nil {
			return nil, fmt.Errorf("open %s backend: %w", cfg.Storage.Backend, err)
		}
	}

	d, err := wireDependencies(mgr, backend, logger)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return d, nil
}

// wireDependencies builds the store layer on top of an opened backend.
func wireDependencies(mgr *config.ConfigManager, backend store.Backend, logger *slog.Logger) (*Dependencies, error) {
	engine := template.New()
	cfg := mgr.Get()

	st, err := store.Open(backend, engine,
		store.WithLogger(logger),
		store.WithDefaultTechStack(models.TechStack(cfg.Defaults.TechStack)),
	)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	prefs, err := store.OpenPreferences(backend)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}

	return &Dependencies{
		Config:   mgr,
		Engine:   engine,
		Backend:  backend,
		Store:    st,
		Prefs:    prefs,
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
	}, nil
}

// newLogger builds the CLI logger. With no level configured and no
// --verbose flag, records are discarded.
func newLogger(level string, verbose bool, w io.Writer) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Theme resolves the terminal theme from the persisted preference and the
// no_color setting.
func (d *Dependencies) Theme() *ui.Theme {
	cfg := d.Config.Get()
	return ui.NewTheme(ui.ThemeConfig{
		Mode:    string(d.Prefs.Theme()),
		NoColor: cfg != nil && cfg.UI.NoColor,
	})
}

// Close releases the storage backend.
func (d *Dependencies) Close() error {
	if d == nil || d.Backend == nil {
		return nil
	}
	return d.Backend.Close()
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not run.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// requireDeps returns the global dependencies or errNoDeps.
func requireDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, errNoDeps
	}
	return deps, nil
}
