package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts, the pager and the spinner may
// take over the terminal.
type HeadlessManager struct {
	forced *bool
	input  *os.File
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{input: os.Stdin}
}

// IsHeadless returns true when no interactive terminal is attached.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.input)
}

// IsInteractiveOutput reports whether w is a terminal the UI may draw on.
// It is always false in headless mode.
func (h *HeadlessManager) IsInteractiveOutput(w io.Writer) bool {
	if h.IsHeadless() {
		return false
	}
	if h.forced != nil {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
