package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/template"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show, set or toggle the colour theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(store.ThemeDark), string(store.ThemeLight), "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	switch arg := optionalArg(args); arg {
	case "":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), d.Prefs.Theme())
		return err
	case "toggle":
		if _, err := d.Prefs.ToggleTheme(); err != nil {
			return err
		}
	default:
		if err := d.Prefs.SetTheme(store.Theme(arg)); err != nil {
			return err
		}
	}
	printCard(cmd, d.Theme().SuccessCard(template.Capitalize(string(d.Prefs.Theme()))+" theme enabled"))
	return nil
}
