package corpuscmd

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"

	"github.com/reflectoring/blogkit/internal/articles"
	"github.com/reflectoring/blogkit/internal/commands"
	"github.com/reflectoring/blogkit/internal/lint"
	"github.com/reflectoring/blogkit/internal/logging"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

const (
	lintOperation   = "corpus.lint_directory"
	importOperation = "corpus.import_directory"
	syncOperation   = "corpus.sync_directory"
)

var (
	// ErrLintFeatureDisabled is returned when the lint feature flag is disabled at runtime.
	ErrLintFeatureDisabled = errors.New("corpus command: lint feature disabled")
	// ErrCatalogFeatureDisabled is returned when the catalog feature flag is disabled at runtime.
	ErrCatalogFeatureDisabled = errors.New("corpus command: catalog feature disabled")
	// ErrLintFailed is returned when a lint run produced failing findings.
	ErrLintFailed = errors.New("corpus command: lint failed")
)

var (
	_ command.Commander[LintDirectoryCommand]   = (*LintDirectoryHandler)(nil)
	_ command.Commander[ImportDirectoryCommand] = (*ImportDirectoryHandler)(nil)
	_ command.Commander[SyncDirectoryCommand]   = (*SyncDirectoryHandler)(nil)
)

// LintDirectoryHandler runs lint commands via the shared handler foundation.
type LintDirectoryHandler struct {
	inner *commands.Handler[LintDirectoryCommand]
}

// NewLintDirectoryHandler creates a handler bound to the supplied linter and
// corpus service. The onReport callback, when set, receives every produced
// report before the pass/fail decision.
func NewLintDirectoryHandler(linter *lint.Linter, corpus interfaces.CorpusService, logger interfaces.Logger, gates FeatureGates, onReport func(*interfaces.Report), opts ...commands.HandlerOption[LintDirectoryCommand]) *LintDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg LintDirectoryCommand) error {
		if !gates.lintEnabled() {
			return ErrLintFeatureDisabled
		}

		report, err := linter.LintDirectory(ctx, corpus, msg.Directory)
		if err != nil {
			return err
		}
		if onReport != nil {
			onReport(report)
		}

		logging.WithFields(baseLogger, map[string]any{
			"checked":  report.Checked,
			"errors":   report.Errors(),
			"warnings": report.Warnings(),
		}).Info("corpus.command.lint_directory.completed")

		if linter.Failed(report) || (msg.FailOnWarning && report.Warnings() > 0) {
			return fmt.Errorf("%w: %d errors, %d warnings", ErrLintFailed, report.Errors(), report.Warnings())
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintDirectoryCommand]{
		commands.WithLogger[LintDirectoryCommand](baseLogger),
		commands.WithOperation[LintDirectoryCommand](lintOperation),
		commands.WithMessageFields(func(msg LintDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.FailOnWarning {
				fields["fail_on_warning"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[LintDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LintDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[LintDirectoryCommand].
func (h *LintDirectoryHandler) Execute(ctx context.Context, msg LintDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ImportDirectoryHandler runs catalog imports via the shared handler foundation.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied catalog service.
func NewImportDirectoryHandler(service *articles.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		if !gates.catalogEnabled() {
			return ErrCatalogFeatureDisabled
		}

		result, err := service.ImportDirectory(ctx, msg.Directory, interfaces.ImportOptions{
			UpdateExisting: msg.UpdateExisting,
			DryRun:         msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.CreatedIDs),
				"updated_count": len(result.UpdatedIDs),
				"skipped_count": len(result.SkippedIDs),
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("corpus.command.import_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](baseLogger),
		commands.WithOperation[ImportDirectoryCommand](importOperation),
		commands.WithMessageFields(func(msg ImportDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportDirectoryCommand].
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SyncDirectoryHandler runs catalog sync workflows via the shared handler foundation.
type SyncDirectoryHandler struct {
	inner *commands.Handler[SyncDirectoryCommand]
}

// NewSyncDirectoryHandler creates a handler bound to the supplied catalog service.
func NewSyncDirectoryHandler(service *articles.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncDirectoryCommand]) *SyncDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SyncDirectoryCommand) error {
		if !gates.catalogEnabled() {
			return ErrCatalogFeatureDisabled
		}

		result, err := service.SyncDirectory(ctx, msg.Directory, interfaces.SyncOptions{
			ImportOptions: interfaces.ImportOptions{
				UpdateExisting: msg.UpdateExisting,
				DryRun:         msg.DryRun,
			},
			DeleteOrphaned: msg.DeleteOrphaned,
		})
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count":   result.Created,
				"updated_count":   result.Updated,
				"deleted_count":   result.Deleted,
				"skipped_count":   result.Skipped,
				"error_count":     len(result.Errors),
				"dry_run":         msg.DryRun,
				"delete_orphans":  msg.DeleteOrphaned,
				"update_existing": msg.UpdateExisting,
			}).Info("corpus.command.sync_directory.completed")
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[SyncDirectoryCommand]{
		commands.WithLogger[SyncDirectoryCommand](baseLogger),
		commands.WithOperation[SyncDirectoryCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.DeleteOrphaned {
				fields["delete_orphaned"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncDirectoryCommand].
func (h *SyncDirectoryHandler) Execute(ctx context.Context, msg SyncDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
