// Package blogkit assembles the article corpus toolkit: Markdown loading and
// rendering, shortcode directive checking, corpus linting, and an optional
// persistent article catalog.
package blogkit

import (
	"io/fs"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/reflectoring/blogkit/internal/articles"
	"github.com/reflectoring/blogkit/internal/lint"
	"github.com/reflectoring/blogkit/internal/logging"
	"github.com/reflectoring/blogkit/internal/logging/gologger"
	"github.com/reflectoring/blogkit/internal/markdown"
	"github.com/reflectoring/blogkit/internal/runtimeconfig"
	"github.com/reflectoring/blogkit/internal/shortcode"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// CorpusService exports the corpus service contract for consumers of the root package.
type CorpusService = interfaces.CorpusService

// ShortcodeService exports the directive service contract.
type ShortcodeService = shortcode.Service

// Linter exports the corpus linter.
type Linter = lint.Linter

// CatalogService exports the article catalog service contract.
type CatalogService = articles.Service

// Article exports the catalog record model.
type Article = articles.Article

// Module is the top level blogkit runtime facade.
type Module struct {
	cfg        runtimeconfig.Config
	provider   interfaces.LoggerProvider
	corpus     interfaces.CorpusService
	shortcodes *shortcode.Service
	linter     *lint.Linter
	catalog    *articles.Service
	db         *bun.DB
	ownsDB     bool
}

type moduleOptions struct {
	fsys          fs.FS
	provider      interfaces.LoggerProvider
	repository    articles.Repository
	db            *bun.DB
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
}

// Option customises module construction.
type Option func(*moduleOptions)

// WithFS loads the corpus from an explicit filesystem instead of the
// configured content directory, mainly for tests and embedded corpora.
func WithFS(fsys fs.FS) Option {
	return func(o *moduleOptions) { o.fsys = fsys }
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) { o.provider = provider }
}

// WithArticleRepository overrides the catalog repository, bypassing storage
// configuration entirely. Useful for in-memory catalogs.
func WithArticleRepository(repo articles.Repository) Option {
	return func(o *moduleOptions) { o.repository = repo }
}

// WithDB supplies an existing bun database handle instead of opening one
// from the storage configuration.
func WithDB(db *bun.DB) Option {
	return func(o *moduleOptions) { o.db = db }
}

// WithRepositoryCache enables read-through caching on the catalog repository.
func WithRepositoryCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(o *moduleOptions) {
		o.cacheService = service
		o.keySerializer = serializer
	}
}

// New constructs a blogkit module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &moduleOptions{}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil && cfg.Features.Logger {
		switch cfg.Logging.Provider {
		case "gologger":
			built, err := gologger.NewProvider(gologger.Config{
				Level:     cfg.Logging.Level,
				Format:    cfg.Logging.Format,
				AddSource: cfg.Logging.AddSource,
			})
			if err != nil {
				return nil, err
			}
			provider = built
		default:
			// "noop" keeps the nil provider; module loggers degrade gracefully.
		}
	}

	module := &Module{cfg: cfg, provider: provider}

	corpusCfg := markdown.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Content.Parser.Extensions,
			HardWraps:  cfg.Content.Parser.HardWraps,
			SafeMode:   cfg.Content.Parser.SafeMode,
		},
	}
	parser := markdown.NewGoldmarkParser(corpusCfg.Parser)

	var corpus *markdown.Service
	var err error
	if options.fsys != nil {
		corpusCfg.BasePath = ""
		corpus, err = markdown.NewServiceWithFS(corpusCfg, parser, options.fsys)
	} else {
		corpus, err = markdown.NewService(corpusCfg, parser)
	}
	if err != nil {
		return nil, err
	}
	module.corpus = corpus

	if cfg.Features.Shortcodes {
		module.shortcodes, err = shortcode.NewService(shortcode.ServiceConfig{
			Logger: logging.ShortcodeLogger(provider),
		})
		if err != nil {
			return nil, err
		}
	}

	if cfg.Features.Lint {
		deps := lint.Dependencies{
			Parser: parser,
			Logger: logging.LintLogger(provider),
		}
		if module.shortcodes != nil {
			deps.Directives = module.shortcodes
		}
		module.linter, err = lint.New(lint.Config{
			AllowedLanguages:  cfg.Lint.AllowedLanguages,
			RequireAuthors:    cfg.Lint.RequireAuthors,
			MaxTitleLength:    cfg.Lint.MaxTitleLength,
			FailOnWarning:     cfg.Lint.FailOnWarning,
			FrontMatterSchema: cfg.Lint.FrontMatterSchema,
		}, deps)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Features.Catalog {
		repo := options.repository
		if repo == nil {
			db := options.db
			if db == nil {
				db, err = openDatabase(cfg.Storage)
				if err != nil {
					return nil, err
				}
				module.ownsDB = true
			}
			module.db = db
			repo = articles.NewBunArticleRepositoryWithCache(db, options.cacheService, options.keySerializer)
		}
		module.catalog, err = articles.NewService(articles.ServiceConfig{
			Repository: repo,
			Corpus:     module.corpus,
			Logger:     logging.ArticlesLogger(provider),
		})
		if err != nil {
			return nil, err
		}
	}

	return module, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// LoggerProvider exposes the provider used for module loggers; nil when
// logging is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// Corpus returns the configured corpus service.
func (m *Module) Corpus() CorpusService {
	return m.corpus
}

// Shortcodes returns the directive service when the feature is enabled.
func (m *Module) Shortcodes() *ShortcodeService {
	if m == nil {
		return nil
	}
	return m.shortcodes
}

// Linter returns the corpus linter when the feature is enabled.
func (m *Module) Linter() *Linter {
	if m == nil {
		return nil
	}
	return m.linter
}

// Catalog returns the article catalog service when the feature is enabled.
func (m *Module) Catalog() *CatalogService {
	if m == nil {
		return nil
	}
	return m.catalog
}

// DB exposes the database handle backing the catalog, whether the module
// opened it or received it via WithDB; nil when the catalog is disabled or an
// external repository was supplied.
func (m *Module) DB() *bun.DB {
	if m == nil {
		return nil
	}
	return m.db
}

// Close releases resources owned by the module. Handles injected via WithDB
// stay open; the caller that opened them closes them.
func (m *Module) Close() error {
	if m == nil || m.db == nil || !m.ownsDB {
		return nil
	}
	return m.db.Close()
}
