package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/reflectoring/blogkit/cmd/internal/bootstrap"
	corpuscmd "github.com/reflectoring/blogkit/internal/commands/corpus"
	"github.com/reflectoring/blogkit/internal/lint"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	err := runLint(os.Args[1:], os.Stdout)
	if errors.Is(err, corpuscmd.ErrLintFailed) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("blogkit lint: %v", err)
	}
}

func runLint(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("blogkit-lint", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the article content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering article files")
	directory := fs.String("directory", ".", "Directory to lint, relative to the content root")
	languages := fs.String("languages", "", "Comma separated extra fence languages to allow")
	failOnWarning := fs.Bool("fail-on-warning", false, "Treat warnings as failures")
	format := fs.String("format", "text", "Report format: text or json")
	logLevel := fs.String("log-level", "warn", "Log level for diagnostic output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     true,
		FailOnWarning: *failOnWarning,
		AllowedExtra:  bootstrap.SplitList(*languages),
		LogLevel:      *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	linter := module.Module.Linter()
	if linter == nil {
		return fmt.Errorf("linter not configured; ensure Features.Lint is enabled")
	}

	var report *interfaces.Report
	handler := corpuscmd.NewLintDirectoryHandler(linter, module.Module.Corpus(), module.Logger,
		corpuscmd.FeatureGates{}, func(r *interfaces.Report) { report = r })

	execErr := handler.Execute(context.Background(), corpuscmd.LintDirectoryCommand{
		Directory:     *directory,
		FailOnWarning: *failOnWarning,
	})

	if report != nil {
		switch *format {
		case "json":
			encoded, encodeErr := lint.FormatJSON(report)
			if encodeErr != nil {
				return encodeErr
			}
			fmt.Fprintln(out, encoded)
		default:
			fmt.Fprint(out, lint.FormatText(report))
		}
	}

	return execErr
}
