package cli

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/modu-ai/uiprompt/internal/export"
	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/template"
	"github.com/modu-ai/uiprompt/pkg/models"
)

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("uiprompt %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestTypesCommand(t *testing.T) {
	newTestDeps(t)
	out := mustRun(t, "types")
	for _, want := range []string{"UI Types", "website", "dashboard", "mobileApp", "desktopApp", "componentLibrary", "Component Library"} {
		if !strings.Contains(out, want) {
			t.Errorf("types output missing %q:\n%s", want, out)
		}
	}
}

func TestSchemaAndDefaultsCommands(t *testing.T) {
	newTestDeps(t)

	out := mustRun(t, "schema", "Dashboard")
	if !strings.Contains(out, "type: dashboard") || !strings.Contains(out, "id: dataVisualization") {
		t.Errorf("schema output unexpected:\n%s", out)
	}

	out = mustRun(t, "defaults", "dashboard")
	if !strings.Contains(out, "layout: Bento Grid") {
		t.Errorf("defaults output unexpected:\n%s", out)
	}

	if _, err := runCLI(t, "schema", "spreadsheet"); !errors.Is(err, template.ErrUnknownUIType) {
		t.Errorf("expected ErrUnknownUIType, got %v", err)
	}
}

func TestUseAndGenerate(t *testing.T) {
	d := newTestDeps(t)

	mustRun(t, "use", "dashboard")
	if d.Store.CurrentUIType() != models.UITypeDashboard {
		t.Fatalf("current type = %s", d.Store.CurrentUIType())
	}

	out := mustRun(t, "generate")
	if !strings.Contains(out, "## DASHBOARD SPECIFICATIONS") {
		t.Errorf("generate should print the dashboard prompt:\n%s", out)
	}

	out = mustRun(t, "generate", "website")
	if strings.Contains(out, "## DASHBOARD SPECIFICATIONS") {
		t.Error("generate website should not print the dashboard prompt")
	}
	if d.Store.CurrentUIType() != models.UITypeDashboard {
		t.Error("generate with a type must not change the current type")
	}
}

func TestStackCommand(t *testing.T) {
	d := newTestDeps(t)

	out := mustRun(t, "stack")
	if !strings.Contains(out, "React + Tailwind v4") || !strings.Contains(out, "HTML + CSS") {
		t.Errorf("stack listing unexpected:\n%s", out)
	}

	mustRun(t, "stack", "HTML", "+", "CSS")
	if d.Store.TechStack() != models.TechStackHTMLCSS {
		t.Errorf("stack = %s, want HTML + CSS", d.Store.TechStack())
	}
	mustRun(t, "stack", "react")
	if d.Store.TechStack() != models.TechStackReactTailwind {
		t.Errorf("stack = %s, want React + Tailwind v4", d.Store.TechStack())
	}

	if _, err := runCLI(t, "stack", "Svelte"); !errors.Is(err, store.ErrInvalidTechStack) {
		t.Errorf("expected ErrInvalidTechStack, got %v", err)
	}
}

func TestSetCommand(t *testing.T) {
	d := newTestDeps(t)
	mustRun(t, "use", "dashboard")

	mustRun(t, "set", "theme=Light Mode", "dataVisualization=Maps, Heatmaps,Maps")
	cfg, _ := d.Store.Configuration(models.UITypeDashboard)
	if cfg.String("theme") != "Light Mode" {
		t.Errorf("theme = %q", cfg.String("theme"))
	}
	if got := cfg.List("dataVisualization"); len(got) != 2 || got[0] != "Maps" || got[1] != "Heatmaps" {
		t.Errorf("dataVisualization = %v", got)
	}
	if !strings.Contains(d.Store.Prompt(), "- Theme: Light Mode") {
		t.Error("prompt should be regenerated after set")
	}

	mustRun(t, "set", "--type", "componentLibrary", "features=Dark Mode Support")
	lib, _ := d.Store.Configuration(models.UITypeComponentLibrary)
	if got := lib.List("features"); len(got) != 1 || got[0] != "Dark Mode Support" {
		t.Errorf("componentLibrary features = %v", got)
	}
	if d.Store.CurrentUIType() != models.UITypeDashboard {
		t.Error("set --type must not change the current type")
	}

	tests := []struct {
		name string
		args []string
	}{
		{"no equals", []string{"set", "theme"}},
		{"unknown option", []string{"set", "colour=Blue"}},
		{"bad choice", []string{"set", "theme=Sepia"}},
		{"bad list choice", []string{"set", "features=Teleport"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestToggleAndReset(t *testing.T) {
	d := newTestDeps(t)
	mustRun(t, "use", "dashboard")

	out := mustRun(t, "toggle", "features", "Export Data")
	if !strings.Contains(out, "Export Data added") {
		t.Errorf("unexpected toggle output:\n%s", out)
	}
	cfg, _ := d.Store.Configuration(models.UITypeDashboard)
	if !cfg.Contains("features", "Export Data") {
		t.Error("Export Data should be selected")
	}

	out = mustRun(t, "toggle", "features", "Export Data")
	if !strings.Contains(out, "Export Data removed") {
		t.Errorf("unexpected toggle output:\n%s", out)
	}

	if _, err := runCLI(t, "toggle", "theme", "Dark Mode"); !errors.Is(err, store.ErrNotMultiSelect) {
		t.Errorf("expected ErrNotMultiSelect, got %v", err)
	}

	mustRun(t, "set", "layout=Split View")
	mustRun(t, "reset")
	cfg, _ = d.Store.Configuration(models.UITypeDashboard)
	if cfg.String("layout") != "Bento Grid" {
		t.Errorf("layout after reset = %q", cfg.String("layout"))
	}
}

func TestConfigureHeadlessKeepsValues(t *testing.T) {
	d := newTestDeps(t)
	before, _ := d.Store.Configuration(models.UITypeWebsite)

	out := mustRun(t, "configure", "website")
	if !strings.Contains(out, "configured") {
		t.Errorf("unexpected configure output:\n%s", out)
	}
	after, _ := d.Store.Configuration(models.UITypeWebsite)
	if !after.Equal(before) {
		t.Error("headless configure should keep the current values")
	}
}

func TestSavedConfigurationCommands(t *testing.T) {
	d := newTestDeps(t)

	out := mustRun(t, "saved")
	if !strings.Contains(out, "No saved configurations") {
		t.Errorf("expected empty listing:\n%s", out)
	}

	mustRun(t, "use", "dashboard")
	mustRun(t, "save", "Ops", "board")
	saved := d.Store.SavedConfigurations()
	if len(saved) != 1 || saved[0].Name != "Ops board" {
		t.Fatalf("saved = %+v", saved)
	}

	out = mustRun(t, "saved")
	if !strings.Contains(out, "Ops board") || !strings.Contains(out, "dashboard") {
		t.Errorf("listing missing entry:\n%s", out)
	}

	mustRun(t, "use", "website")
	mustRun(t, "load", "Ops board")
	if d.Store.CurrentUIType() != models.UITypeDashboard {
		t.Error("load should switch to the saved type")
	}

	if _, err := runCLI(t, "load", "nope"); !errors.Is(err, store.ErrSavedNotFound) {
		t.Errorf("expected ErrSavedNotFound, got %v", err)
	}
	if _, err := runCLI(t, "save", "  "); !errors.Is(err, store.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	mustRun(t, "delete", saved[0].ID[:6])
	if len(d.Store.SavedConfigurations()) != 0 {
		t.Error("delete should remove the entry")
	}

	mustRun(t, "save", "a")
	mustRun(t, "save", "b")
	if _, err := runCLI(t, "clear-saved"); err == nil {
		t.Error("clear-saved without a terminal should require --force")
	}
	out = mustRun(t, "clear-saved", "--force")
	if !strings.Contains(out, "Cleared 2") {
		t.Errorf("unexpected clear output:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	d := newTestDeps(t)
	orig := exportNow
	exportNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { exportNow = orig }()

	out := mustRun(t, "export", "--format", "md", "--output", "-")
	if !strings.HasPrefix(out, export.MarkdownHeading) {
		t.Errorf("markdown export should start with the heading:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "out", "config.json")
	mustRun(t, "export", "-f", "json", "-o", path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"exportedAt": "2024-05-01T12:00:00.000Z"`) ||
		!strings.Contains(string(data), `"uiType": "`+string(d.Store.CurrentUIType())+`"`) {
		t.Errorf("unexpected json export:\n%s", data)
	}

	if _, err := runCLI(t, "export", "--format", "pdf"); !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestShareAndOpenLink(t *testing.T) {
	d := newTestDeps(t)
	mustRun(t, "use", "mobileApp")
	mustRun(t, "set", "platform=Android")

	link := strings.TrimSpace(mustRun(t, "share", "--base", "https://example.com/app"))
	if !strings.HasPrefix(link, "https://example.com/app?config=") {
		t.Fatalf("unexpected link %q", link)
	}

	mustRun(t, "reset")
	mustRun(t, "use", "website")
	mustRun(t, "open-link", link)
	if d.Store.CurrentUIType() != models.UITypeMobileApp {
		t.Errorf("open-link should switch to mobileApp, got %s", d.Store.CurrentUIType())
	}
	cfg, _ := d.Store.Configuration(models.UITypeMobileApp)
	if cfg.String("platform") != "Android" {
		t.Errorf("platform = %q, want Android", cfg.String("platform"))
	}

	defaultLink := strings.TrimSpace(mustRun(t, "share"))
	if !strings.HasPrefix(defaultLink, "http://localhost:5173/?config=") {
		t.Errorf("default base url not used: %q", defaultLink)
	}

	if _, err := runCLI(t, "open-link", "https://example.com/?config=%%%"); !errors.Is(err, errInvalidShareLink) {
		t.Errorf("expected errInvalidShareLink, got %v", err)
	}
}

func TestThemeCommand(t *testing.T) {
	d := newTestDeps(t)

	out := mustRun(t, "theme")
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("default theme = %q", out)
	}
	out = mustRun(t, "theme", "toggle")
	if !strings.Contains(out, "Light theme enabled") {
		t.Errorf("toggle output unexpected:\n%s", out)
	}
	if d.Prefs.Theme() != store.ThemeLight {
		t.Errorf("theme after toggle = %s", d.Prefs.Theme())
	}
	mustRun(t, "theme", "dark")
	if d.Prefs.Theme() != store.ThemeDark {
		t.Errorf("theme = %s", d.Prefs.Theme())
	}
	if _, err := runCLI(t, "theme", "sepia"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestSendRequiresAPIKey(t *testing.T) {
	newTestDeps(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := runCLI(t, "send")
	if err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("expected missing key error naming OPENAI_API_KEY, got %v", err)
	}
}

func TestSendShowsRetryProgress(t *testing.T) {
	d := newTestDeps(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "slow down", "type": "rate_limit"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": "x", "model": "gpt-4o-mini", "choices": [{"index": 0, "message": {"role": "assistant", "content": "Here is your design."}}]}`))
	}))
	t.Cleanup(srv.Close)
	d.Config.Get().Dispatch.BaseURL = srv.URL + "/v1"

	out := mustRun(t, "send")
	for _, want := range []string{
		"Sending prompt to gpt-4o-mini...",
		"gpt-4o-mini is busy, retry 1/2 in ",
		"Here is your design.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("send output missing %q:\n%s", want, out)
		}
	}
	if calls.Load() != 2 {
		t.Errorf("endpoint called %d times, want 2", calls.Load())
	}
}

func TestRetryTitle(t *testing.T) {
	got := retryTitle("gpt-4o-mini", 1, 2, 740*time.Millisecond)
	if got != "gpt-4o-mini is busy, retry 1/2 in 700ms..." {
		t.Errorf("retryTitle = %q", got)
	}
}

// engineWithBrokenWebsite wraps the built-in engine so that generating a
// website prompt always fails.
func engineWithBrokenWebsite(t *testing.T) *template.Engine {
	t.Helper()
	base := template.New()
	var entries []template.Entry
	for _, ty := range base.ListTypes() {
		schema, err := base.Schema(ty)
		if err != nil {
			t.Fatalf("schema %s: %v", ty, err)
		}
		gen := template.GeneratorFunc(func(cfg models.Configuration, stack models.TechStack) (string, error) {
			if ty == models.UITypeWebsite {
				return "", errors.New("template missing")
			}
			return base.Generate(ty, cfg, stack)
		})
		entries = append(entries, template.Entry{Schema: schema, Generator: gen})
	}
	e, err := template.NewEngine(entries...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestGenerationFailureIsReported(t *testing.T) {
	d := newTestDeps(t)
	d.Engine = engineWithBrokenWebsite(t)
	s, err := store.Open(store.NewMemoryBackend(), d.Engine, store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	d.Store = s

	const warning = "Prompt generation failed. Run with --verbose for details."
	for _, args := range [][]string{{"generate"}, {"preview"}, {"export", "--output", "-"}} {
		out := mustRun(t, args...)
		if !strings.Contains(out, store.GenerationErrorPrompt) {
			t.Errorf("%v should print the placeholder prompt:\n%s", args, out)
		}
		if !strings.Contains(out, warning) {
			t.Errorf("%v should warn about the failure:\n%s", args, out)
		}
	}

	mustRun(t, "use", "dashboard")
	if out := mustRun(t, "generate"); strings.Contains(out, warning) {
		t.Errorf("working generator should not warn:\n%s", out)
	}
}

func TestConfigCommands(t *testing.T) {
	d := newTestDeps(t)

	out := mustRun(t, "config", "path")
	if strings.TrimSpace(out) != d.Config.Path() {
		t.Errorf("config path = %q, want %q", out, d.Config.Path())
	}

	out = mustRun(t, "config", "show")
	if !strings.Contains(out, "backend: file") {
		t.Errorf("config show output unexpected:\n%s", out)
	}

	mustRun(t, "config", "init")
	if _, err := os.Stat(d.Config.Path()); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	if _, err := runCLI(t, "config", "init"); err == nil {
		t.Error("config init should refuse to overwrite without --force")
	}
	mustRun(t, "config", "init", "--force")
}
