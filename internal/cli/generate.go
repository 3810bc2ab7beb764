package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/ui"
)

var flagRender bool

var generateCmd = &cobra.Command{
	Use:   "generate [type]",
	Short: "Print the prompt for the current UI type or the given one",
	Long: `Print the generated Markdown prompt. With a type argument the prompt is
built from that type's stored configuration without changing the current
type. --render formats the Markdown for the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Open the current prompt in a scrollable pager",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	generateCmd.Flags().BoolVarP(&flagRender, "render", "r", false, "Render Markdown for the terminal")
	rootCmd.AddCommand(generateCmd, previewCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, optionalArg(args))
	if err != nil {
		return err
	}

	var prompt string
	if t == d.Store.CurrentUIType() {
		prompt = d.Store.GeneratePrompt()
		warnIfGenerationFailed(cmd, d, prompt)
	} else {
		cfg, err := d.Store.Configuration(t)
		if err != nil {
			return err
		}
		prompt, err = d.Engine.Generate(t, cfg, d.Store.TechStack())
		if err != nil {
			return fmt.Errorf("generate %s prompt: %w", t, err)
		}
	}

	out := cmd.OutOrStdout()
	if flagRender {
		rendered, err := ui.RenderMarkdown(d.Theme(), prompt, ui.DefaultWrapWidth)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	}
	_, err = fmt.Fprintln(out, prompt)
	return err
}

func runPreview(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	schema, err := d.Engine.Schema(d.Store.CurrentUIType())
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s  ·  %s", typeTitle(schema), d.Store.TechStack())
	prompt := d.Store.GeneratePrompt()
	warnIfGenerationFailed(cmd, d, prompt)
	return ui.Preview(d.Theme(), d.Headless, cmd.OutOrStdout(), title, prompt)
}
