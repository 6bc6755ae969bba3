// Package bootstrap shares module construction between the blogkit CLIs.
package bootstrap

import (
	"fmt"
	"strings"

	blogkit "github.com/reflectoring/blogkit"
	"github.com/reflectoring/blogkit/internal/logging"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// Options captures configuration for blogkit CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	Catalog        bool
	StorageDriver  string
	StorageDSN     string
	FailOnWarning  bool
	AllowedExtra   []string
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blogkit module with the loggers the CLIs use.
type Module struct {
	Module *blogkit.Module
	Logger interfaces.Logger
}

// BuildModule constructs a blogkit module configured for CLI operations.
func BuildModule(opts Options, moduleOpts ...blogkit.Option) (*Module, error) {
	cfg := blogkit.DefaultConfig()

	cfg.Content.Dir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive

	cfg.Lint.FailOnWarning = opts.FailOnWarning
	cfg.Lint.AllowedLanguages = append(cfg.Lint.AllowedLanguages, opts.AllowedExtra...)

	if opts.Catalog {
		cfg.Features.Catalog = true
		if driver := strings.TrimSpace(opts.StorageDriver); driver != "" {
			cfg.Storage.Driver = driver
		}
		if dsn := strings.TrimSpace(opts.StorageDSN); dsn != "" {
			cfg.Storage.DSN = dsn
		}
	}

	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "console"
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, blogkit.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blogkit.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blogkit module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: logging.ModuleLogger(module.LoggerProvider(), ""),
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
