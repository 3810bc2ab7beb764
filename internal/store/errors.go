// Package store persists the configurator state: the current UI type, the
// tech stack, one configuration per UI type, and the saved configurations.
// A separate Preferences store holds the terminal theme.
//
// Both stores read their durable snapshot exactly once, in Open, and write
// it back after every mutation. Neither touches the terminal.
package store

import "errors"

// Sentinel errors for store operations.
var (
	// ErrSavedNotFound indicates no saved configuration has the requested id.
	ErrSavedNotFound = errors.New("store: saved configuration not found")

	// ErrEmptyName indicates a saved configuration was given a blank name.
	ErrEmptyName = errors.New("store: configuration name must not be empty")

	// ErrInvalidTechStack indicates the tech stack is not one of the supported values.
	ErrInvalidTechStack = errors.New("store: invalid tech stack")

	// ErrNotMultiSelect indicates a toggle targeted an option that is not a multiSelect.
	ErrNotMultiSelect = errors.New("store: option is not a multiSelect")

	// ErrUnknownChoice indicates a toggle used a choice the option does not declare.
	ErrUnknownChoice = errors.New("store: choice not declared by option")

	// ErrInvalidTheme indicates a theme other than dark or light.
	ErrInvalidTheme = errors.New("store: invalid theme, must be one of: dark, light")

	// ErrInvalidKey indicates a backend key that cannot be stored safely.
	ErrInvalidKey = errors.New("store: invalid key")

	// ErrUnknownBackend indicates an unsupported backend kind.
	ErrUnknownBackend = errors.New("store: unknown backend")

	// ErrCorruptSnapshot indicates a persisted snapshot could not be decoded.
	ErrCorruptSnapshot = errors.New("store: corrupt snapshot")
)
