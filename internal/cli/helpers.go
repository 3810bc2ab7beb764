package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/template"
	"github.com/modu-ai/uiprompt/internal/ui"
	"github.com/modu-ai/uiprompt/pkg/models"
)

// resolveUIType matches arg against the registered types, ignoring case.
// An empty arg selects the current type.
func resolveUIType(d *Dependencies, arg string) (models.UIType, error) {
	if arg == "" {
		return d.Store.CurrentUIType(), nil
	}
	for _, t := range d.Engine.ListTypes() {
		if strings.EqualFold(string(t), arg) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", template.ErrUnknownUIType, arg)
}

// optionalArg returns args[0] or "".
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// parseOptionValue converts the command-line text for opt into the value
// type the option stores.
func parseOptionValue(opt models.ConfigOption, raw string) (any, error) {
	switch opt.Type {
	case models.OptionSelect:
		if !opt.HasChoice(raw) {
			return nil, unknownChoice(opt, raw)
		}
		return raw, nil
	case models.OptionMultiSelect:
		values := []string{}
		for part := range strings.SplitSeq(raw, ",") {
			v := strings.TrimSpace(part)
			if v == "" || slices.Contains(values, v) {
				continue
			}
			if !opt.HasChoice(v) {
				return nil, unknownChoice(opt, v)
			}
			values = append(values, v)
		}
		return values, nil
	case models.OptionToggle:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("option %s expects true or false, got %q", opt.ID, raw)
		}
		return b, nil
	}
	return raw, nil
}

func unknownChoice(opt models.ConfigOption, value string) error {
	return fmt.Errorf("%w: %q is not one of %s", store.ErrUnknownChoice, value, template.FormatList(opt.Options, "or"))
}

// formatValue renders a configuration value for display.
func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "(none)"
		}
		return strings.Join(val, ", ")
	case string:
		if val == "" {
			return "(empty)"
		}
		return val
	case nil:
		return "(unset)"
	}
	return fmt.Sprint(v)
}

// configPairs lists cfg in schema order. Keys the schema does not declare,
// as a share link may carry, follow in sorted order under a label derived
// from the key.
func configPairs(schema models.UITypeSchema, cfg models.Configuration) []ui.KV {
	pairs := make([]ui.KV, 0, len(cfg))
	for _, opt := range schema.Options {
		label := opt.Label
		if label == "" {
			label = template.ToSentenceCase(opt.ID)
		}
		pairs = append(pairs, ui.KV{Key: label, Value: formatValue(cfg[opt.ID])})
	}

	var extra []string
	for id := range cfg {
		if _, ok := schema.Option(id); !ok {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	for _, id := range extra {
		pairs = append(pairs, ui.KV{Key: template.ToSentenceCase(id), Value: formatValue(cfg[id])})
	}
	return pairs
}

// typeTitle renders a UI type heading with its icon glyph.
func typeTitle(schema models.UITypeSchema) string {
	return ui.Glyph(schema.Icon) + "  " + schema.Label
}

// warnIfGenerationFailed tells the user on stderr when prompt is the
// placeholder the store substitutes for a failed generation.
func warnIfGenerationFailed(cmd *cobra.Command, d *Dependencies, prompt string) {
	if prompt != store.GenerationErrorPrompt {
		return
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
		d.Theme().Warning().Render("⚠ Prompt generation failed. Run with --verbose for details."))
}

// printCard writes a card to the command's stdout.
func printCard(cmd *cobra.Command, card string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), card)
}
