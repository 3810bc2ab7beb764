// Package wizard runs the interactive configuration form for one UI type,
// one huh form per schema option.
package wizard

import (
	"errors"
	"io"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when the schema has no options to ask about.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrUnsupportedOption is returned for an option type the wizard cannot render.
	ErrUnsupportedOption = errors.New("unsupported option type")
)

// Options controls how the wizard talks to the terminal.
type Options struct {
	// Headless skips every form and returns the current values unchanged.
	Headless bool
	// Accessible switches huh to its line-based accessible mode.
	Accessible bool
	// Mode selects the light or dark palette of the form theme.
	Mode string
	// Input and Output override the terminal streams; nil keeps huh's defaults.
	Input  io.Reader
	Output io.Writer
}
