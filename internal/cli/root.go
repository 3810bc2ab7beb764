package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/pkg/version"
)

// Global flag values.
var (
	flagVerbose   bool
	flagEphemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "uiprompt",
	Short: "Compose structured UI design prompts from a few choices",
	Long: `uiprompt turns a handful of design choices into a detailed, ready-to-paste
prompt describing a user interface for an AI assistant.

Pick a UI type (website, dashboard, mobile app, desktop app, component
library), adjust its options with 'configure' or 'set', then 'generate',
'preview', 'export' or 'send' the prompt. Configurations can be saved,
reloaded and shared as links.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: ensureDependencies,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the uiprompt CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/uiprompt/main.go and root_test.go
// Execute runs the root command and releases dependencies afterwards.
func Execute() error {
	defer func() {
		if d := GetDeps(); d != nil {
			_ = d.Close()
		}
	}()
	return rootCmd.Execute()
}

// ensureDependencies wires dependencies on first use. Tests install their
// own through SetDeps beforehand.
func ensureDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil || skipsDependencies(cmd) {
		return nil
	}
	d, err := InitDependencies(DepsOptions{
		Verbose:   flagVerbose,
		Ephemeral: flagEphemeral,
		LogOutput: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// skipsDependencies reports whether cmd runs without settings or storage.
func skipsDependencies(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["deps"] == "none" {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("uiprompt %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep state in memory for this run only")
}
