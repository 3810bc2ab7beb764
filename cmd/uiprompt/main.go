// @MX:ANCHOR: [AUTO] main is the uiprompt entry point; it exits 1 on any command error.
// @MX:REASON: [AUTO] sole entry point of the binary, delegates to cli.Execute
package main

import (
	"os"

	"github.com/modu-ai/uiprompt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
