package template

import (
	"embed"
	"sync"

	"github.com/modu-ai/uiprompt/pkg/models"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// promptRenderer parses the embedded prompt templates once, on first use.
var promptRenderer = sync.OnceValues(func() (Renderer, error) {
	return NewRenderer(promptFS, "prompts/*.tmpl")
})

// builtinEntries returns the five built-in UI types in display order.
// Generators are resolved lazily so the templates are parsed only when the
// first prompt is generated.
func builtinEntries() []Entry {
	return []Entry{
		{Schema: websiteSchema(), Generator: deferred(newWebsiteGenerator)},
		{Schema: dashboardSchema(), Generator: deferred(newDashboardGenerator)},
		{Schema: mobileAppSchema(), Generator: deferred(newMobileAppGenerator)},
		{Schema: desktopAppSchema(), Generator: deferred(newDesktopAppGenerator)},
		{Schema: componentLibrarySchema(), Generator: deferred(newComponentLibraryGenerator)},
	}
}

func deferred(build func(Renderer) Generator) Generator {
	return Lazy(func() (Generator, error) {
		r, err := promptRenderer()
		if err != nil {
			return nil, err
		}
		return build(r), nil
	})
}

// selectOption declares a single-choice option.
func selectOption(id, label string, options []string, def, desc string) models.ConfigOption {
	return models.ConfigOption{
		ID:           id,
		Label:        label,
		Type:         models.OptionSelect,
		Options:      options,
		DefaultValue: def,
		Description:  desc,
	}
}

// multiSelectOption declares a multiple-choice option.
func multiSelectOption(id, label string, options, def []string, desc string) models.ConfigOption {
	return models.ConfigOption{
		ID:           id,
		Label:        label,
		Type:         models.OptionMultiSelect,
		Options:      options,
		DefaultValue: def,
		Description:  desc,
	}
}
