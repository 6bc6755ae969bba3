package interfaces

// ShortcodeRegistry describes the lifecycle contract for registering and
// resolving directive definitions. Implementations must be safe for
// concurrent use.
type ShortcodeRegistry interface {
	// Register stores a definition and returns an error when a directive
	// with the same name already exists or the definition fails validation.
	Register(definition ShortcodeDefinition) error

	// Get returns the definition for the supplied directive name.
	Get(name string) (ShortcodeDefinition, bool)

	// List exposes the current catalogue, sorted at the implementor's discretion.
	List() []ShortcodeDefinition

	// Remove deletes the directive from the registry. Removing an unknown
	// directive must be a no-op.
	Remove(name string)
}

// ShortcodeParser extracts directive invocations from arbitrary content.
type ShortcodeParser interface {
	Parse(content string) ([]ParsedShortcode, error)
	Extract(content string) (placeholders string, shortcodes []ParsedShortcode, err error)
}

// ShortcodeDefinition captures the metadata and parameter schema the
// registry stores for one directive (e.g. image, github, info, warning).
type ShortcodeDefinition struct {
	Name        string
	Description string
	AllowInner  bool
	Schema      ShortcodeSchema
}

// ShortcodeSchema defines the contract for parameters accepted by a directive.
type ShortcodeSchema struct {
	Params   []ShortcodeParam
	Defaults map[string]any
}

// ShortcodeParam describes a single parameter, including optional custom validation.
type ShortcodeParam struct {
	Name     string
	Type     ShortcodeParamType
	Required bool
	Default  any
	Validate ShortcodeValidator
}

// ShortcodeParamType enumerates the supported parameter coercions.
type ShortcodeParamType string

const (
	ShortcodeParamString ShortcodeParamType = "string"
	ShortcodeParamInt    ShortcodeParamType = "int"
	ShortcodeParamBool   ShortcodeParamType = "bool"
	ShortcodeParamURL    ShortcodeParamType = "url"
)

// ShortcodeValidator allows definitions to perform custom validation.
type ShortcodeValidator func(value any) error

// ParsedShortcode represents a parsed invocation discovered by the parser layer.
type ParsedShortcode struct {
	Name   string
	Params map[string]any
	Inner  string
	Line   int
}
