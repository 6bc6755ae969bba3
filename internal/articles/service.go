package articles

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/reflectoring/blogkit/internal/identity"
	"github.com/reflectoring/blogkit/internal/logging"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// ServiceConfig wires the catalog service dependencies.
type ServiceConfig struct {
	Repository Repository
	Corpus     interfaces.CorpusService
	Logger     interfaces.Logger
}

// Service converts loaded documents into catalog records and keeps the
// catalog in step with the Markdown tree across repeated runs.
type Service struct {
	repo   Repository
	corpus interfaces.CorpusService
	logger interfaces.Logger
}

// NewService builds a catalog service. The corpus service is only required
// for directory-level sync.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Repository == nil {
		return nil, ErrRepoRequired
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		repo:   cfg.Repository,
		corpus: cfg.Corpus,
		logger: logger,
	}, nil
}

// ListOptions filters catalog queries.
type ListOptions struct {
	Category      string
	Author        string
	IncludeDrafts bool
}

// GetByURL fetches one catalog record by its url.
func (s *Service) GetByURL(ctx context.Context, url string) (*Article, error) {
	return s.repo.GetByURL(ctx, strings.TrimSpace(url))
}

// GetByID fetches one catalog record by its identifier.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns catalog records matching the options, newest first. Drafts
// are excluded unless explicitly requested.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*Article, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*Article, 0, len(records))
	for _, record := range records {
		if record.Draft && !opts.IncludeDrafts {
			continue
		}
		if opts.Category != "" && !containsFold(record.Categories, opts.Category) {
			continue
		}
		if opts.Author != "" && !containsFold(record.Authors, opts.Author) {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.After(filtered[j].Date)
		}
		return filtered[i].URL < filtered[j].URL
	})
	return filtered, nil
}

// ImportDocument imports a single document into the catalog.
func (s *Service) ImportDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	return s.ImportDocuments(ctx, []*interfaces.Document{doc}, opts)
}

// ImportDocuments imports the supplied documents. Unchanged articles are
// detected by checksum and skipped; existing urls are only overwritten when
// UpdateExisting is set.
func (s *Service) ImportDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	acc := newImportAccumulator()
	for _, doc := range docs {
		if err := s.importOne(ctx, doc, opts, acc); err != nil {
			acc.addError(err)
		}
	}
	return acc.result(), firstError(acc.errors)
}

// ImportDirectory loads every article under dir and imports it. Per-file
// load failures are collected as result errors.
func (s *Service) ImportDirectory(ctx context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if s.corpus == nil {
		return nil, ErrCorpusRequired
	}

	results, err := s.corpus.LoadDirectory(ctx, dir, interfaces.LoadOptions{ContinueOnError: true})
	if err != nil {
		return nil, fmt.Errorf("articles: load directory %s: %w", dir, err)
	}

	acc := newImportAccumulator()
	for _, result := range results {
		if result == nil {
			continue
		}
		if result.Err != nil {
			acc.addError(fmt.Errorf("%s: %w", result.Path, result.Err))
			continue
		}
		if err := s.importOne(ctx, result.Document, opts, acc); err != nil {
			acc.addError(err)
		}
	}
	return acc.result(), firstError(acc.errors)
}

// SyncDirectory loads every article under dir and reconciles the catalog
// with it. Per-file load failures are collected as result errors.
func (s *Service) SyncDirectory(ctx context.Context, dir string, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if s.corpus == nil {
		return nil, ErrCorpusRequired
	}

	results, err := s.corpus.LoadDirectory(ctx, dir, interfaces.LoadOptions{ContinueOnError: true})
	if err != nil {
		return nil, fmt.Errorf("articles: load directory %s: %w", dir, err)
	}

	sync := &interfaces.SyncResult{}
	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		if result == nil {
			continue
		}
		if result.Err != nil {
			sync.Errors = append(sync.Errors, fmt.Errorf("%s: %w", result.Path, result.Err))
			continue
		}
		docs = append(docs, result.Document)
	}

	imported, _ := s.ImportDocuments(ctx, docs, opts.ImportOptions)
	sync.Created = len(imported.CreatedIDs)
	sync.Updated = len(imported.UpdatedIDs)
	sync.Skipped = len(imported.SkippedIDs)
	sync.Errors = append(sync.Errors, imported.Errors...)

	if opts.DeleteOrphaned {
		if err := s.deleteOrphaned(ctx, docs, opts, sync); err != nil {
			sync.Errors = append(sync.Errors, err)
		}
	}

	s.logger.Info("catalog sync complete",
		"created", sync.Created,
		"updated", sync.Updated,
		"deleted", sync.Deleted,
		"skipped", sync.Skipped,
		"errors", len(sync.Errors),
	)
	return sync, firstError(sync.Errors)
}

func (s *Service) importOne(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions, acc *importAccumulator) error {
	record, err := articleFromDocument(doc)
	if err != nil {
		return err
	}

	logger := logging.WithArticleContext(s.logger, record.SourcePath, record.URL, "")

	existing, err := s.repo.GetByURL(ctx, record.URL)
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("articles: lookup %s: %w", record.URL, err)
	}

	if existing == nil {
		if opts.DryRun {
			acc.skip(record.ID)
			return nil
		}
		created, createErr := s.repo.Create(ctx, record)
		if createErr != nil {
			return fmt.Errorf("articles: create %s: %w", record.URL, createErr)
		}
		acc.created(created.ID)
		logger.Info("article imported")
		return nil
	}

	if existing.Checksum == record.Checksum {
		acc.skip(existing.ID)
		return nil
	}
	if !opts.UpdateExisting {
		return fmt.Errorf("%w: %s", ErrURLExists, record.URL)
	}
	if opts.DryRun {
		acc.skip(existing.ID)
		return nil
	}

	record.ID = existing.ID
	updated, updateErr := s.repo.Update(ctx, record)
	if updateErr != nil {
		return fmt.Errorf("articles: update %s: %w", record.URL, updateErr)
	}
	acc.updated(updated.ID)
	logger.Info("article updated")
	return nil
}

func (s *Service) deleteOrphaned(ctx context.Context, docs []*interfaces.Document, opts interfaces.SyncOptions, sync *interfaces.SyncResult) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("articles: list catalog: %w", err)
	}

	keep := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		keep[urlKey(doc.FrontMatter.URL)] = struct{}{}
	}

	for _, record := range existing {
		if _, ok := keep[urlKey(record.URL)]; ok {
			continue
		}
		if opts.DryRun {
			sync.Deleted++
			continue
		}
		if err := s.repo.Delete(ctx, record.ID); err != nil {
			return fmt.Errorf("articles: delete %s: %w", record.URL, err)
		}
		logging.WithArticleContext(s.logger, record.SourcePath, record.URL, "delete").Info("article removed")
		sync.Deleted++
	}
	return nil
}

func articleFromDocument(doc *interfaces.Document) (*Article, error) {
	if doc == nil {
		return nil, errors.New("articles: nil document")
	}
	fm := doc.FrontMatter
	url := strings.TrimSpace(fm.URL)
	if url == "" {
		return nil, fmt.Errorf("%w: %s", ErrURLRequired, doc.FilePath)
	}

	record := &Article{
		ID:         identity.ArticleUUID(url),
		URL:        url,
		Title:      strings.TrimSpace(fm.Title),
		Authors:    append([]string(nil), fm.Authors...),
		Categories: append([]string(nil), fm.Categories...),
		Date:       fm.Date,
		Draft:      fm.Draft,
		Checksum:   hex.EncodeToString(doc.Checksum),
		Body:       string(doc.Body),
		BodyHTML:   string(doc.BodyHTML),
		SourcePath: doc.FilePath,
		Custom:     fm.Custom,
	}
	if record.Title == "" {
		record.Title = fallbackTitle(url)
	}
	if !fm.Modified.IsZero() {
		modified := fm.Modified
		record.Modified = &modified
	}
	if excerpt := strings.TrimSpace(fm.Excerpt); excerpt != "" {
		record.Excerpt = &excerpt
	}
	if image := strings.TrimSpace(fm.Image); image != "" {
		record.Image = &image
	}
	return record, nil
}

func fallbackTitle(url string) string {
	trimmed := strings.Trim(strings.TrimSpace(url), "/")
	if trimmed == "" {
		return "Untitled"
	}
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]
	words := strings.Fields(strings.ReplaceAll(last, "-", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func containsFold(values []string, needle string) bool {
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(needle)) {
			return true
		}
	}
	return false
}

type importAccumulator struct {
	createdIDs []uuid.UUID
	updatedIDs []uuid.UUID
	skippedIDs []uuid.UUID
	errors     []error
}

func newImportAccumulator() *importAccumulator {
	return &importAccumulator{
		createdIDs: []uuid.UUID{},
		updatedIDs: []uuid.UUID{},
		skippedIDs: []uuid.UUID{},
		errors:     []error{},
	}
}

func (a *importAccumulator) created(id uuid.UUID) {
	if id != uuid.Nil {
		a.createdIDs = append(a.createdIDs, id)
	}
}

func (a *importAccumulator) updated(id uuid.UUID) {
	if id != uuid.Nil {
		a.updatedIDs = append(a.updatedIDs, id)
	}
}

func (a *importAccumulator) skip(id uuid.UUID) {
	if id != uuid.Nil {
		a.skippedIDs = append(a.skippedIDs, id)
	}
}

func (a *importAccumulator) addError(err error) {
	if err != nil {
		a.errors = append(a.errors, err)
	}
}

func (a *importAccumulator) result() *interfaces.ImportResult {
	return &interfaces.ImportResult{
		CreatedIDs: a.createdIDs,
		UpdatedIDs: a.updatedIDs,
		SkippedIDs: a.skippedIDs,
		Errors:     a.errors,
	}
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
