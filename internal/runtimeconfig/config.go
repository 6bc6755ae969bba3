package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentDirRequired = errors.New("blogkit config: content directory is required")
var ErrStorageDriverUnknown = errors.New("blogkit config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("blogkit config: storage DSN is required when the catalog is enabled")
var ErrLintLanguagesRequired = errors.New("blogkit config: lint allowed languages must not be empty")
var ErrLintTitleLengthInvalid = errors.New("blogkit config: lint max title length must be zero or positive")
var ErrLoggingProviderRequired = errors.New("blogkit config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("blogkit config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blogkit config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blogkit config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the blogkit module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Content  ContentConfig
	Lint     LintConfig
	Storage  StorageConfig
	Features Features
	Logging  LoggingConfig
}

// ContentConfig captures how the article tree is discovered and parsed.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
	Parser    ParserConfig
}

// ParserConfig mirrors the Markdown parser options exposed per load call.
type ParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// LintConfig tunes the corpus lint rules.
type LintConfig struct {
	// AllowedLanguages whitelists fenced code block language tags.
	AllowedLanguages []string
	// RequireAuthors demands at least one author per article.
	RequireAuthors bool
	// MaxTitleLength flags overly long titles when positive.
	MaxTitleLength int
	// FailOnWarning promotes warnings to run failures.
	FailOnWarning bool
	// FrontMatterSchema optionally validates custom front-matter keys
	// against a JSON schema.
	FrontMatterSchema map[string]any
}

// StorageConfig selects the article catalog backend.
type StorageConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string
	DSN    string
}

// Features toggles module functionality.
type Features struct {
	Catalog    bool
	Lint       bool
	Shortcodes bool
	Logger     bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultLintLanguages enumerates the fence language tags accepted out of the
// box: the set observed across the corpus plus the untagged fallback handled
// separately by the linter.
func DefaultLintLanguages() []string {
	return []string{
		"java", "js", "javascript", "json", "yaml", "shell", "bash",
		"xml", "sql", "text", "go", "groovy", "properties", "html", "css",
	}
}

// DefaultConfig returns a configuration suitable for linting a conventional
// article tree rooted at "content".
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
			Parser: ParserConfig{
				Extensions: []string{"gfm", "linkify", "tasklist"},
			},
		},
		Lint: LintConfig{
			AllowedLanguages: DefaultLintLanguages(),
			RequireAuthors:   true,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file::memory:?cache=shared",
		},
		Features: Features{
			Lint:       true,
			Shortcodes: true,
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Features.Lint {
		if len(cfg.Lint.AllowedLanguages) == 0 {
			return ErrLintLanguagesRequired
		}
		if cfg.Lint.MaxTitleLength < 0 {
			return ErrLintTitleLengthInvalid
		}
	}
	if cfg.Features.Catalog {
		driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
		switch driver {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}
	if cfg.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "gologger" && provider != "noop" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
