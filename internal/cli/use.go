package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/ui"
	"github.com/modu-ai/uiprompt/pkg/models"
)

var useCmd = &cobra.Command{
	Use:   "use <type>",
	Short: "Select the current UI type",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

var stackCmd = &cobra.Command{
	Use:   "stack [stack]",
	Short: "Show or select the tech stack",
	Long: `Show the current tech stack, or select one of:

  React + Tailwind v4   (alias: react)
  HTML + CSS            (alias: html)

Quote the stack name or pass it as separate words.`,
	RunE: runStack,
}

func init() {
	rootCmd.AddCommand(useCmd, stackCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, args[0])
	if err != nil {
		return err
	}
	if err := d.Store.SetUIType(t); err != nil {
		return err
	}
	schema, err := d.Engine.Schema(t)
	if err != nil {
		return err
	}
	printCard(cmd, d.Theme().SuccessCard("Current UI type: "+typeTitle(schema)))
	return nil
}

func runStack(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	theme := d.Theme()

	if len(args) == 0 {
		current := d.Store.TechStack()
		lines := make([]string, 0, len(models.TechStacks()))
		for _, s := range models.TechStacks() {
			marker := "  "
			if s == current {
				marker = theme.Primary().Render("▸ ")
			}
			lines = append(lines, marker+string(s))
		}
		printCard(cmd, theme.Card("Tech Stack", strings.Join(lines, "\n")))
		return nil
	}

	stack, ok := models.ParseTechStack(strings.Join(args, " "))
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrInvalidTechStack, strings.Join(args, " "))
	}
	if err := d.Store.SetTechStack(stack); err != nil {
		return err
	}
	printCard(cmd, theme.SuccessCard("Tech stack set", theme.KeyValueLines([]ui.KV{{Key: "Stack", Value: string(stack)}})))
	return nil
}
