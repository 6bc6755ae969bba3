package shortcode

import "errors"

var (
	// ErrDuplicateDefinition indicates an attempt to register a directive name twice.
	ErrDuplicateDefinition = errors.New("shortcode: duplicate definition")
	// ErrInvalidDefinition occurs when a definition fails schema validation.
	ErrInvalidDefinition = errors.New("shortcode: invalid definition")
	// ErrUnknownDirective indicates content references a directive that is not registered.
	ErrUnknownDirective = errors.New("shortcode: unknown directive")
)
