package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/modu-ai/uiprompt/internal/dispatch"
	"github.com/modu-ai/uiprompt/internal/store"
	"github.com/modu-ai/uiprompt/internal/ui"
)

// defaultSendTimeout bounds one round trip to the completion endpoint.
const defaultSendTimeout = 2 * time.Minute

var (
	flagSendModel   string
	flagSendTimeout time.Duration
	flagSendSystem  string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the current prompt to an OpenAI-compatible endpoint",
	Long: `Send the current prompt as a chat completion request and print the reply.

The API key is read from the environment variable named by the
dispatch.api_key_env setting (default OPENAI_API_KEY). dispatch.base_url
points the request at any OpenAI-compatible server.`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&flagSendModel, "model", "m", "", "Model name (default: dispatch.model setting)")
	sendCmd.Flags().DurationVar(&flagSendTimeout, "timeout", defaultSendTimeout, "Request timeout")
	sendCmd.Flags().StringVar(&flagSendSystem, "system", "", "Optional system message sent before the prompt")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	prompt := d.Store.GeneratePrompt()
	if prompt == store.GenerationErrorPrompt {
		return errors.New("current configuration does not produce a prompt")
	}

	settings := d.Config.Get().Dispatch
	model := flagSendModel
	if model == "" {
		model = settings.Model
	}
	dcfg := dispatch.ConfigFromEnv(settings.APIKeyEnv, model, settings.BaseURL)
	dcfg.SystemPrompt = strings.TrimSpace(flagSendSystem)

	var sp ui.Spinner
	dcfg.Retry.OnRetry = func(attempt int, delay time.Duration, err error) {
		d.Logger.Debug("retrying chat completion", "attempt", attempt, "delay", delay, "error", err)
		sp.SetTitle(retryTitle(model, attempt, dcfg.Retry.MaxRetries, delay))
	}

	client, err := dispatch.New(dcfg)
	if err != nil {
		return fmt.Errorf("%w (set %s)", err, settings.APIKeyEnv)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, flagSendTimeout)
	defer cancel()

	sp = ui.NewSpinner(d.Theme(), d.Headless, cmd.ErrOrStderr(), "Sending prompt to "+model+"...")
	reply, err := client.Send(ctx, prompt)
	sp.Stop()
	if err != nil {
		return err
	}
	d.Logger.Debug("prompt sent", "model", reply.Model,
		"promptTokens", reply.PromptTokens, "completionTokens", reply.CompletionTokens)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
	return err
}

// retryTitle is the spinner title shown while a failed request waits to be
// retried.
func retryTitle(model string, attempt, maxRetries int, delay time.Duration) string {
	return fmt.Sprintf("%s is busy, retry %d/%d in %s...", model, attempt, maxRetries, delay.Round(100*time.Millisecond))
}
