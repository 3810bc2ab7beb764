package cli

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/ui"
	"github.com/modu-ai/uiprompt/pkg/models"
)

func TestParseOptionValue(t *testing.T) {
	sel := models.ConfigOption{ID: "theme", Type: models.OptionSelect, Options: []string{"Light", "Dark"}}
	multi := models.ConfigOption{ID: "widgets", Type: models.OptionMultiSelect, Options: []string{"A", "B"}}
	toggle := models.ConfigOption{ID: "dense", Type: models.OptionToggle}
	text := models.ConfigOption{ID: "title", Type: models.OptionText}

	tests := []struct {
		name    string
		opt     models.ConfigOption
		raw     string
		want    any
		wantErr bool
	}{
		{"select", sel, "Dark", "Dark", false},
		{"select unknown", sel, "Sepia", nil, true},
		{"multi", multi, "B, A", []string{"B", "A"}, false},
		{"multi empty", multi, "", []string{}, false},
		{"multi unknown", multi, "C", nil, true},
		{"toggle true", toggle, "true", true, false},
		{"toggle zero", toggle, "0", false, false},
		{"toggle invalid", toggle, "maybe", nil, true},
		{"text", text, "Anything goes", "Anything goes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptionValue(tt.opt, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, ok := tt.want.([]string); ok {
				if !slices.Equal(got.([]string), want) {
					t.Errorf("got %v, want %v", got, want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	_, err := parseOptionValue(sel, "Sepia")
	if !errors.Is(err, store.ErrUnknownChoice) {
		t.Errorf("expected ErrUnknownChoice, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Sepia" is not one of Light or Dark`) {
		t.Errorf("error should list the choices, got %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{[]string{"a", "b"}, "a, b"},
		{[]string{}, "(none)"},
		{"", "(empty)"},
		{"x", "x"},
		{true, "true"},
		{nil, "(unset)"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigPairs(t *testing.T) {
	schema := models.UITypeSchema{
		Options: []models.ConfigOption{
			{ID: "theme", Label: "Theme"},
			{ID: "colorScheme"},
		},
	}
	cfg := models.Configuration{
		"theme":          "Dark",
		"colorScheme":    "Blue",
		"legacyWidgets":  []string{"Clock"},
		"accentStrength": "",
	}

	want := []ui.KV{
		{Key: "Theme", Value: "Dark"},
		{Key: "Color Scheme", Value: "Blue"},
		{Key: "Accent Strength", Value: "(empty)"},
		{Key: "Legacy Widgets", Value: "Clock"},
	}
	if got := configPairs(schema, cfg); !slices.Equal(got, want) {
		t.Errorf("configPairs = %v, want %v", got, want)
	}
}

func TestResolveUIType(t *testing.T) {
	d := newTestDeps(t)

	got, err := resolveUIType(d, "MOBILEAPP")
	if err != nil || got != models.UITypeMobileApp {
		t.Errorf("resolveUIType(MOBILEAPP) = %q, %v", got, err)
	}
	got, err = resolveUIType(d, "")
	if err != nil || got != d.Store.CurrentUIType() {
		t.Errorf("empty arg should select the current type, got %q, %v", got, err)
	}
	if _, err := resolveUIType(d, "kiosk"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
