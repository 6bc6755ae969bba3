package blogkit

import "github.com/reflectoring/blogkit/internal/runtimeconfig"

// Config aliases the runtime configuration so hosts only import the root package.
type Config = runtimeconfig.Config

// ContentConfig aliases the content discovery options.
type ContentConfig = runtimeconfig.ContentConfig

// ParserConfig aliases the Markdown parser options.
type ParserConfig = runtimeconfig.ParserConfig

// LintConfig aliases the lint rule options.
type LintConfig = runtimeconfig.LintConfig

// StorageConfig aliases the catalog storage options.
type StorageConfig = runtimeconfig.StorageConfig

// Features aliases the module feature toggles.
type Features = runtimeconfig.Features

// LoggingConfig aliases the logging adapter options.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns a configuration suitable for linting a conventional
// article tree rooted at "content".
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// DefaultLintLanguages enumerates the fence language tags accepted out of the box.
func DefaultLintLanguages() []string {
	return runtimeconfig.DefaultLintLanguages()
}
