package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across invocations so hosts can share a
// single parser between preview rendering and fence extraction.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
	// Fences returns every fenced code block discovered in the Markdown source.
	Fences(markdown []byte) ([]CodeFence, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CorpusService exposes the file workflows for an article tree: loading
// documents, rendering preview HTML, and extracting code fences.
type CorpusService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*DocumentResult, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	Fences(doc *Document) ([]CodeFence, error)
}

// Document represents a Markdown article with parsed metadata and content.
// The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so sync
	// workflows can detect changes without re-importing unchanged files.
	Checksum []byte
}

// DocumentResult pairs a parsed document with its raw source. When lenient
// loading is requested, Err carries the per-file failure and Document is nil.
type DocumentResult struct {
	Path     string
	Document *Document
	Source   []byte
	Err      error
}

// FrontMatter models the metadata block at the head of every article. The
// recognised keys follow the corpus convention (title, authors, categories,
// date, modified, excerpt, image, url, draft); anything else lands in Custom.
type FrontMatter struct {
	Title      string         `yaml:"title" json:"title"`
	Authors    []string       `yaml:"authors" json:"authors"`
	Categories []string       `yaml:"categories" json:"categories"`
	Date       time.Time      `yaml:"date" json:"date"`
	Modified   time.Time      `yaml:"modified" json:"modified"`
	Excerpt    string         `yaml:"excerpt" json:"excerpt"`
	Image      string         `yaml:"image" json:"image"`
	URL        string         `yaml:"url" json:"url"`
	Draft      bool           `yaml:"draft" json:"draft"`
	Custom     map[string]any `yaml:",inline" json:"custom"`
	Raw        map[string]any `yaml:"-" json:"raw"`
}

// CodeFence describes a fenced code block found in an article body.
type CodeFence struct {
	Language string
	Line     int
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	// ContinueOnError collects per-file parse failures into DocumentResult.Err
	// instead of aborting the directory walk. Linting relies on this mode.
	ContinueOnError bool
	Parser          ParseOptions
}

// ImportOptions controls how documents are converted into catalog articles.
type ImportOptions struct {
	UpdateExisting bool
	DryRun         bool
}

// SyncOptions extends ImportOptions with delete semantics for repeated runs.
type SyncOptions struct {
	ImportOptions
	DeleteOrphaned bool
}

// ImportResult reports the outcome of an import, exposing counts and IDs so
// callers can audit behaviour or trigger follow-up actions.
type ImportResult struct {
	CreatedIDs []uuid.UUID
	UpdatedIDs []uuid.UUID
	SkippedIDs []uuid.UUID
	Errors     []error
}

// SyncResult summarises a bulk sync run across many files.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
	Skipped int
	Errors  []error
}
