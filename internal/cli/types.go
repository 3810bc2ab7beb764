package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available UI types",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

var schemaCmd = &cobra.Command{
	Use:   "schema <type>",
	Short: "Print the option schema of a UI type as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults <type>",
	Short: "Print the default configuration of a UI type as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runDefaults,
}

func init() {
	rootCmd.AddCommand(typesCmd, schemaCmd, defaultsCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	theme := d.Theme()
	current := d.Store.CurrentUIType()

	var body strings.Builder
	for i, t := range d.Engine.ListTypes() {
		schema, err := d.Engine.Schema(t)
		if err != nil {
			return err
		}
		if i > 0 {
			body.WriteString("\n\n")
		}
		marker := "  "
		if t == current {
			marker = theme.Primary().Render("▸ ")
		}
		fmt.Fprintf(&body, "%s%s  %s\n    %s",
			marker, typeTitle(schema), theme.Muted().Render(string(t)), schema.Description)
	}
	printCard(cmd, theme.Card("UI Types", body.String()))
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, args[0])
	if err != nil {
		return err
	}
	schema, err := d.Engine.Schema(t)
	if err != nil {
		return err
	}
	return writeYAML(cmd, schema)
}

func runDefaults(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	t, err := resolveUIType(d, args[0])
	if err != nil {
		return err
	}
	cfg, err := d.Engine.DefaultConfig(t)
	if err != nil {
		return err
	}
	return writeYAML(cmd, cfg)
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
