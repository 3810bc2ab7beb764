package template

import "errors"

// Sentinel errors for the template engine.
var (
	// ErrUnknownUIType indicates the requested UI type is not registered.
	ErrUnknownUIType = errors.New("template: unknown UI type")

	// ErrDuplicateUIType indicates two entries were registered for one UI type.
	ErrDuplicateUIType = errors.New("template: duplicate UI type")

	// ErrInvalidSchema indicates a schema violates the form model invariants.
	ErrInvalidSchema = errors.New("template: invalid schema")

	// ErrTemplateNotFound indicates a named prompt template does not exist.
	ErrTemplateNotFound = errors.New("template: prompt template not found")

	// ErrMissingTemplateKey indicates a prompt template referenced missing data.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates a prompt template still carries a foreign
	// interpolation token such as ${name}.
	ErrUnexpandedToken = errors.New("template: unexpanded token in prompt template")
)
