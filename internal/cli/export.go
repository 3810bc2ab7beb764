package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/export"
	"github.com/modu-ai/uiprompt/internal/ui"
)

var (
	flagExportFormat string
	flagExportOutput string
	flagShareBase    string
)

// errInvalidShareLink is returned when a link carries no decodable configuration.
var errInvalidShareLink = errors.New("link does not contain a valid shared configuration")

// exportNow is the clock used for exportedAt; tests replace it.
var exportNow = time.Now

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current prompt to a file",
	Long: `Write the current prompt as plain text, Markdown or JSON.

Default file names are prompt.txt, prompt.md and config.json. Use
--output - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a link that encodes the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runShare,
}

var openLinkCmd = &cobra.Command{
	Use:   "open-link <url>",
	Short: "Apply the configuration encoded in a share link",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpenLink,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", string(export.FormatMarkdown), "Output format: text, markdown or json")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output path (default: prompt.txt, prompt.md or config.json)")
	shareCmd.Flags().StringVar(&flagShareBase, "base", "", "Base URL of the link (default: share.base_url setting)")
	rootCmd.AddCommand(exportCmd, shareCmd, openLinkCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	t := d.Store.CurrentUIType()
	cfg, err := d.Store.Configuration(t)
	if err != nil {
		return err
	}
	prompt := d.Store.GeneratePrompt()
	warnIfGenerationFailed(cmd, d, prompt)
	data, err := export.Render(format, t, cfg, prompt, exportNow())
	if err != nil {
		return err
	}

	if flagExportOutput == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	path := flagExportOutput
	if path == "" {
		path = format.DefaultFilename()
	}
	if err := export.WriteFile(path, data); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	theme := d.Theme()
	printCard(cmd, theme.SuccessCard("Prompt exported", theme.KeyValueLines([]ui.KV{
		{Key: "Format", Value: string(format)},
		{Key: "File", Value: abs},
		{Key: "Size", Value: fmt.Sprintf("%d bytes", len(data))},
	})))
	return nil
}

func runShare(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	base := flagShareBase
	if base == "" {
		base = d.Config.Get().Share.BaseURL
	}

	t := d.Store.CurrentUIType()
	cfg, err := d.Store.Configuration(t)
	if err != nil {
		return err
	}
	link, err := export.ShareLink(base, t, cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
	return err
}

func runOpenLink(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	payload, ok := export.ParseShareLink(args[0])
	if !ok {
		return errInvalidShareLink
	}
	if err := d.Store.SetUIType(payload.UIType); err != nil {
		return err
	}
	if err := d.Store.UpdateConfig(payload.UIType, payload.Config); err != nil {
		return err
	}

	schema, err := d.Engine.Schema(payload.UIType)
	if err != nil {
		return err
	}
	cfg, err := d.Store.Configuration(payload.UIType)
	if err != nil {
		return err
	}
	theme := d.Theme()
	printCard(cmd, theme.SuccessCard("Shared configuration applied: "+typeTitle(schema),
		theme.KeyValueLines(configPairs(schema, cfg))))
	return nil
}
