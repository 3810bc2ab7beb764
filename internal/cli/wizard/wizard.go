package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// question binds one schema option to the huh field that edits it and a
// getter for the edited value.
type question struct {
	option models.ConfigOption
	field  huh.Field
	value  func() any
}

// @MX:ANCHOR: [AUTO] Run is the single entry point for interactive configuration
// @MX:REASON: [AUTO] fan_in=3, called from configure command, wizard tests, cli tests
// Run asks for every option of schema, starting from current, and returns
// the edited configuration. Each question runs as its own huh.Form to avoid
// the huh v0.8.x YOffset scroll bug that occurs when several groups share a
// viewport. In headless mode current is returned unchanged.
func Run(schema models.UITypeSchema, current models.Configuration, opts Options) (models.Configuration, error) {
	if len(schema.Options) == 0 {
		return nil, ErrNoQuestions
	}
	result := current.Clone()
	if opts.Headless {
		return result, nil
	}

	theme := newWizardTheme(opts.Mode)
	for _, opt := range schema.Options {
		q, err := buildQuestion(opt, result)
		if err != nil {
			return nil, err
		}

		form := huh.NewForm(huh.NewGroup(q.field)).
			WithTheme(theme).
			WithAccessible(opts.Accessible)
		if opts.Input != nil {
			form = form.WithInput(opts.Input)
		}
		if opts.Output != nil {
			form = form.WithOutput(opts.Output)
		}

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		result[opt.ID] = q.value()
	}
	return result, nil
}

// buildQuestion creates the huh field matching opt.Type, seeded from cfg.
func buildQuestion(opt models.ConfigOption, cfg models.Configuration) (question, error) {
	switch opt.Type {
	case models.OptionSelect:
		return buildSelectField(opt, cfg), nil
	case models.OptionMultiSelect:
		return buildMultiSelectField(opt, cfg), nil
	case models.OptionText:
		return buildInputField(opt, cfg), nil
	case models.OptionTextarea:
		return buildTextField(opt, cfg), nil
	case models.OptionToggle:
		return buildConfirmField(opt, cfg), nil
	}
	return question{}, fmt.Errorf("%w: %s (%s)", ErrUnsupportedOption, opt.Type, opt.ID)
}

func initialString(opt models.ConfigOption, cfg models.Configuration) string {
	if cfg.Has(opt.ID) {
		return cfg.String(opt.ID)
	}
	s, _ := opt.Default().(string)
	return s
}

func buildSelectField(opt models.ConfigOption, cfg models.Configuration) question {
	selected := initialString(opt, cfg)
	if !opt.HasChoice(selected) && len(opt.Options) > 0 {
		selected = opt.Options[0]
	}

	sel := huh.NewSelect[string]().
		Title(opt.Label).
		Description(opt.Description).
		Options(huh.NewOptions(opt.Options...)...).
		Value(&selected)

	return question{option: opt, field: sel, value: func() any { return selected }}
}

func buildMultiSelectField(opt models.ConfigOption, cfg models.Configuration) question {
	var chosen []string
	if cfg.Has(opt.ID) {
		chosen = cfg.List(opt.ID)
	} else {
		chosen, _ = opt.Default().([]string)
	}

	options := make([]huh.Option[string], len(opt.Options))
	for i, c := range opt.Options {
		options[i] = huh.NewOption(c, c).Selected(slices.Contains(chosen, c))
	}

	ms := huh.NewMultiSelect[string]().
		Title(opt.Label).
		Description(opt.Description).
		Options(options...).
		Value(&chosen)

	return question{option: opt, field: ms, value: func() any {
		if chosen == nil {
			return []string{}
		}
		return slices.Clone(chosen)
	}}
}

func buildInputField(opt models.ConfigOption, cfg models.Configuration) question {
	value := initialString(opt, cfg)

	inp := huh.NewInput().
		Title(opt.Label).
		Description(opt.Description).
		Value(&value)
	if opt.Placeholder != "" {
		inp = inp.Placeholder(opt.Placeholder)
	}

	return question{option: opt, field: inp, value: func() any { return value }}
}

func buildTextField(opt models.ConfigOption, cfg models.Configuration) question {
	value := initialString(opt, cfg)

	txt := huh.NewText().
		Title(opt.Label).
		Description(opt.Description).
		Lines(5).
		Value(&value)
	if opt.Placeholder != "" {
		txt = txt.Placeholder(opt.Placeholder)
	}

	return question{option: opt, field: txt, value: func() any { return value }}
}

func buildConfirmField(opt models.ConfigOption, cfg models.Configuration) question {
	on := cfg.Bool(opt.ID)
	if !cfg.Has(opt.ID) {
		on, _ = opt.Default().(bool)
	}

	c := huh.NewConfirm().
		Title(opt.Label).
		Description(opt.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&on)

	return question{option: opt, field: c, value: func() any { return on }}
}

// newWizardTheme creates a huh.Theme with uiprompt branding.
func newWizardTheme(mode string) *huh.Theme {
	t := huh.ThemeBase()

	primary := themeColor(mode, "#C45A3C", "#DA7756")
	secondary := themeColor(mode, "#5B21B6", "#A78BFA")
	green := themeColor(mode, "#059669", "#10B981")
	red := themeColor(mode, "#DC2626", "#EF4444")
	text := themeColor(mode, "#111827", "#F3F4F6")
	muted := themeColor(mode, "#9CA3AF", "#6B7280")
	border := themeColor(mode, "#D1D5DB", "#4B5563")

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(themeColor(mode, "#E5E7EB", "#374151"))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}

// themeColor pins the palette when mode is set and lets lipgloss pick by
// terminal background otherwise.
func themeColor(mode, light, dark string) lipgloss.TerminalColor {
	switch mode {
	case "light":
		return lipgloss.Color(light)
	case "dark":
		return lipgloss.Color(dark)
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
