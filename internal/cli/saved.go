package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/ui"
	"github.com/modu-ai/uiprompt/pkg/models"
)

// savedTimeLayout formats saved configuration timestamps for listings.
const savedTimeLayout = "2006-01-02 15:04"

var flagClearForce bool

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current configuration under a name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSave,
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved configurations",
	Args:  cobra.NoArgs,
	RunE:  runSaved,
}

var loadCmd = &cobra.Command{
	Use:   "load <id|name>",
	Short: "Make a saved configuration current",
	Long: `Load a saved configuration by id, unique id prefix or exact name. Its UI
type, tech stack and options become current.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a saved configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearSavedCmd = &cobra.Command{
	Use:   "clear-saved",
	Short: "Delete every saved configuration",
	Args:  cobra.NoArgs,
	RunE:  runClearSaved,
}

func init() {
	clearSavedCmd.Flags().BoolVarP(&flagClearForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(saveCmd, savedCmd, loadCmd, deleteCmd, clearSavedCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	sc, err := d.Store.SaveConfiguration(strings.Join(args, " "))
	if err != nil {
		return err
	}
	theme := d.Theme()
	printCard(cmd, theme.SuccessCard("Configuration saved", theme.KeyValueLines(savedPairs(sc))))
	return nil
}

func runSaved(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	theme := d.Theme()
	saved := d.Store.SavedConfigurations()
	title := ui.IconFolderOpen.Glyph() + "  Saved Configurations"
	if len(saved) == 0 {
		printCard(cmd, theme.Card(title, theme.Muted().Render("No saved configurations yet. Use 'uiprompt save <name>'.")))
		return nil
	}

	rows := make([]string, len(saved))
	for i, sc := range saved {
		rows[i] = fmt.Sprintf("%s  %s\n   %s",
			theme.Muted().Render(shortID(sc.ID)),
			theme.Primary().Render(sc.Name),
			theme.Muted().Render(fmt.Sprintf("%s · %s · %s", sc.UIType, stackOrDefault(sc.TechStack), formatTimestamp(sc.Timestamp))))
	}
	printCard(cmd, theme.Card(title, strings.Join(rows, "\n")))
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	found, err := d.Store.FindSaved(args[0])
	if err != nil {
		return err
	}
	sc, err := d.Store.LoadConfiguration(found.ID)
	if err != nil {
		return err
	}
	theme := d.Theme()
	printCard(cmd, theme.SuccessCard("Loaded "+sc.Name, theme.KeyValueLines(savedPairs(sc))))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	sc, err := d.Store.FindSaved(args[0])
	if err != nil {
		return err
	}
	if err := d.Store.DeleteConfiguration(sc.ID); err != nil {
		return err
	}
	printCard(cmd, d.Theme().SuccessCard(ui.IconTrash2.Glyph()+"  Deleted "+sc.Name))
	return nil
}

func runClearSaved(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	if !flagClearForce {
		if d.Headless.IsHeadless() {
			return errors.New("refusing to clear saved configurations without a terminal; pass --force")
		}
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete all %d saved configurations?", len(d.Store.SavedConfigurations()))).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Nothing deleted.")
			return nil
		}
	}

	n, err := d.Store.ClearSavedConfigurations()
	if err != nil {
		return err
	}
	printCard(cmd, d.Theme().SuccessCard(fmt.Sprintf("Cleared %d saved configuration(s)", n)))
	return nil
}

func savedPairs(sc models.SavedConfiguration) []ui.KV {
	return []ui.KV{
		{Key: "ID", Value: sc.ID},
		{Key: "Name", Value: sc.Name},
		{Key: "UI type", Value: string(sc.UIType)},
		{Key: "Tech stack", Value: string(stackOrDefault(sc.TechStack))},
		{Key: "Saved", Value: formatTimestamp(sc.Timestamp)},
	}
}

func stackOrDefault(s models.TechStack) models.TechStack {
	if s == "" {
		return models.DefaultTechStack
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format(savedTimeLayout)
}
