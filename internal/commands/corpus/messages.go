package corpuscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	lintDirectoryMessageType   = "blogkit.corpus.lint_directory"
	importDirectoryMessageType = "blogkit.corpus.import_directory"
	syncDirectoryMessageType   = "blogkit.corpus.sync_directory"
)

// LintDirectoryCommand runs the corpus lint rules over every article under
// the provided Directory.
type LintDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load articles from.
	Directory string `json:"directory"`
	// FailOnWarning promotes warning findings to a run failure.
	FailOnWarning bool `json:"fail_on_warning,omitempty"`
}

// Type implements command.Message.
func (LintDirectoryCommand) Type() string { return lintDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd LintDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory("blogkit.corpus.lint_directory"))),
	)
}

// ImportDirectoryCommand imports every article under the provided Directory
// into the catalog, mapping directly onto interfaces.ImportOptions.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load articles from.
	Directory string `json:"directory"`
	// UpdateExisting overwrites catalog records when article files have changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
	// DryRun toggles preview mode to collect import diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory("blogkit.corpus.import_directory"))),
	)
}

// SyncDirectoryCommand reconciles the catalog with the article tree under
// the provided Directory, applying flags consistent with interfaces.SyncOptions.
type SyncDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load articles from.
	Directory string `json:"directory"`
	// UpdateExisting overwrites catalog records when article files have changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
	// DryRun toggles preview mode to collect sync diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// DeleteOrphaned removes catalog records without matching article files when true.
	DeleteOrphaned bool `json:"delete_orphaned,omitempty"`
}

// Type implements command.Message.
func (SyncDirectoryCommand) Type() string { return syncDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory("blogkit.corpus.sync_directory"))),
	)
}

func requireDirectory(messageType string) func(any) error {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(messageType+".directory_required", "directory is required")
		}
		return nil
	}
}
