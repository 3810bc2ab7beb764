package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/cli/wizard"
	"github.com/modu-ai/uiprompt/pkg/models"
)

// flagSetType and flagToggleType select a UI type other than the current one.
var (
	flagSetType    string
	flagToggleType string
)

var setCmd = &cobra.Command{
	Use:   "set <id>=<value>...",
	Short: "Set options of the current UI type",
	Long: `Set one or more options of the current UI type (or --type).

Multi-select values are comma separated and replace the whole list;
toggles accept true or false.

Examples:
  uiprompt set layout="Bento Grid" style=Minimalist
  uiprompt set dataVisualization=Charts,Maps --type dashboard
  uiprompt set darkMode=false`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id> <choice>",
	Short: "Add or remove one choice of a multi-select option",
	Args:  cobra.ExactArgs(2),
	RunE:  runToggle,
}

var configureCmd = &cobra.Command{
	Use:   "configure [type]",
	Short: "Edit every option of a UI type in an interactive form",
	Long: `Walk through every option of a UI type (default: the current type) in an
interactive form. Without a terminal the current values are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigure,
}

var resetCmd = &cobra.Command{
	Use:   "reset [type]",
	Short: "Restore the default configuration of a UI type",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReset,
}

func init() {
	setCmd.Flags().StringVarP(&flagSetType, "type", "t", "", "UI type to modify (default: current)")
	toggleCmd.Flags().StringVarP(&flagToggleType, "type", "t", "", "UI type to modify (default: current)")
	rootCmd.AddCommand(setCmd, toggleCmd, configureCmd, resetCmd)
}

// parseAssignments turns id=value arguments into a partial configuration
// checked against schema.
func parseAssignments(schema models.UITypeSchema, args []string) (models.Configuration, error) {
	partial := models.Configuration{}
	for _, arg := range args {
		id, raw, ok := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected <id>=<value>", arg)
		}
		opt, found := schema.Option(id)
		if !found {
			return nil, fmt.Errorf("unknown option %q for %s (options: %s)",
				id, schema.Type, strings.Join(schema.OptionIDs(), ", "))
		}
		v, err := parseOptionValue(opt, strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		partial[id] = v
	}
	return partial, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, flagSetType)
	if err != nil {
		return err
	}
	schema, err := d.Engine.Schema(t)
	if err != nil {
		return err
	}
	partial, err := parseAssignments(schema, args)
	if err != nil {
		return err
	}
	if err := d.Store.UpdateConfig(t, partial); err != nil {
		return err
	}

	cfg, err := d.Store.Configuration(t)
	if err != nil {
		return err
	}
	theme := d.Theme()
	printCard(cmd, theme.SuccessCard(fmt.Sprintf("Updated %d option(s) of %s", len(partial), schema.Label),
		theme.KeyValueLines(configPairs(schema, cfg))))
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, flagToggleType)
	if err != nil {
		return err
	}
	id, choice := args[0], args[1]
	if err := d.Store.ToggleOption(t, id, choice); err != nil {
		return err
	}

	cfg, err := d.Store.Configuration(t)
	if err != nil {
		return err
	}
	state := "removed"
	if cfg.Contains(id, choice) {
		state = "added"
	}
	printCard(cmd, d.Theme().SuccessCard(fmt.Sprintf("%s %s", choice, state),
		fmt.Sprintf("%s: %s", id, formatValue(cfg.List(id)))))
	return nil
}

func runConfigure(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, optionalArg(args))
	if err != nil {
		return err
	}
	schema, err := d.Engine.Schema(t)
	if err != nil {
		return err
	}
	current, err := d.Store.Configuration(t)
	if err != nil {
		return err
	}

	headless := d.Headless.IsHeadless()
	if headless {
		d.Logger.Info("no terminal attached, keeping current values", "uiType", t)
	}
	edited, err := wizard.Run(schema, current, wizard.Options{
		Headless: headless,
		Mode:     string(d.Prefs.Theme()),
	})
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Configuration unchanged.")
		return nil
	}
	if err != nil {
		return err
	}
	if err := d.Store.UpdateConfig(t, edited); err != nil {
		return err
	}

	theme := d.Theme()
	printCard(cmd, theme.SuccessCard(typeTitle(schema)+" configured",
		theme.KeyValueLines(configPairs(schema, edited))))
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, optionalArg(args))
	if err != nil {
		return err
	}
	if err := d.Store.ResetConfig(t); err != nil {
		return err
	}
	schema, err := d.Engine.Schema(t)
	if err != nil {
		return err
	}
	printCard(cmd, d.Theme().SuccessCard(schema.Label+" reset to defaults"))
	return nil
}
