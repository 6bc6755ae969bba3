// Package lint checks an article corpus against the conventions the site
// build assumes: well-formed front matter, unique urls, known code fence
// languages, and valid shortcode directives.
package lint

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/reflectoring/blogkit/internal/logging"
	"github.com/reflectoring/blogkit/internal/markdown"
	"github.com/reflectoring/blogkit/internal/shortcode"
	schemaval "github.com/reflectoring/blogkit/internal/validation"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// DirectiveService is the slice of the shortcode service the linter needs:
// parsing invocations and resolving their definitions.
type DirectiveService interface {
	Parse(content string) ([]interfaces.ParsedShortcode, error)
	Registry() interfaces.ShortcodeRegistry
}

// Config tunes the rule set for a lint run.
type Config struct {
	// AllowedLanguages whitelists fence language tags; comparison is
	// case-insensitive. Untagged fences are reported as warnings.
	AllowedLanguages []string
	// RequireAuthors demands at least one author per article.
	RequireAuthors bool
	// MaxTitleLength flags titles longer than this many runes when positive.
	MaxTitleLength int
	// FailOnWarning makes Failed treat warnings like errors.
	FailOnWarning bool
	// FrontMatterSchema validates custom front-matter keys when set.
	FrontMatterSchema map[string]any
}

// Linter runs the configured rules over loaded documents.
type Linter struct {
	cfg        Config
	parser     interfaces.MarkdownParser
	directives DirectiveService
	validator  *shortcode.Validator
	languages  map[string]struct{}
	logger     interfaces.Logger
}

// Dependencies injects collaborators; nil fields fall back to defaults.
type Dependencies struct {
	Parser     interfaces.MarkdownParser
	Directives DirectiveService
	Logger     interfaces.Logger
}

// New builds a linter. A missing parser gets a default Goldmark instance and
// a missing directive service gets the built-in registry.
func New(cfg Config, deps Dependencies) (*Linter, error) {
	parser := deps.Parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}

	directives := deps.Directives
	if directives == nil {
		svc, err := shortcode.NewService(shortcode.ServiceConfig{})
		if err != nil {
			return nil, fmt.Errorf("lint: build directive service: %w", err)
		}
		directives = svc
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	languages := make(map[string]struct{}, len(cfg.AllowedLanguages))
	for _, lang := range cfg.AllowedLanguages {
		languages[strings.ToLower(strings.TrimSpace(lang))] = struct{}{}
	}

	if len(cfg.FrontMatterSchema) > 0 {
		if err := schemaval.ValidateSchema(cfg.FrontMatterSchema); err != nil {
			return nil, fmt.Errorf("lint: front matter schema: %w", err)
		}
	}

	return &Linter{
		cfg:        cfg,
		parser:     parser,
		directives: directives,
		validator:  shortcode.NewValidator(),
		languages:  languages,
		logger:     logger,
	}, nil
}

// LintDirectory loads every article under dir through the corpus service and
// lints the result. Loading is lenient so parse failures become findings
// instead of aborting the run.
func (l *Linter) LintDirectory(ctx context.Context, corpus interfaces.CorpusService, dir string) (*interfaces.Report, error) {
	results, err := corpus.LoadDirectory(ctx, dir, interfaces.LoadOptions{ContinueOnError: true})
	if err != nil {
		return nil, fmt.Errorf("lint: load directory %s: %w", dir, err)
	}
	return l.LintDocuments(ctx, results)
}

// LintDocuments applies per-document rules to every result and corpus-wide
// rules across the set.
func (l *Linter) LintDocuments(ctx context.Context, results []*interfaces.DocumentResult) (*interfaces.Report, error) {
	report := &interfaces.Report{}

	for _, result := range results {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if result == nil {
			continue
		}
		report.Checked++
		report.Findings = append(report.Findings, l.LintDocument(result)...)
	}

	report.Findings = append(report.Findings, l.corpusFindings(results)...)

	sort.SliceStable(report.Findings, func(i, j int) bool {
		if report.Findings[i].Path != report.Findings[j].Path {
			return report.Findings[i].Path < report.Findings[j].Path
		}
		return report.Findings[i].Line < report.Findings[j].Line
	})

	l.logger.Info("lint run complete",
		"checked", report.Checked,
		"errors", report.Errors(),
		"warnings", report.Warnings(),
	)
	return report, nil
}

// LintDocument applies every per-document rule to a single load result.
func (l *Linter) LintDocument(result *interfaces.DocumentResult) []interfaces.Finding {
	if result.Err != nil {
		return []interfaces.Finding{{
			Path:     result.Path,
			Rule:     RuleFrontMatterParse,
			Severity: interfaces.SeverityError,
			Message:  result.Err.Error(),
		}}
	}
	if result.Document == nil {
		return nil
	}

	var findings []interfaces.Finding
	add := func(rule string, severity interfaces.Severity, message string, line int) {
		findings = append(findings, interfaces.Finding{
			Path:     result.Path,
			Rule:     rule,
			Severity: severity,
			Message:  message,
			Line:     line,
		})
	}

	if len(result.Source) > 0 && !markdown.HasFrontMatter(result.Source) {
		add(RuleFrontMatterParse, interfaces.SeverityError, "missing front matter block", 0)
	}

	l.checkFrontMatter(result.Document.FrontMatter, add)
	l.checkFileName(result.Path, result.Document.FrontMatter, add)
	l.checkBody(result.Document, add)
	l.checkFences(result.Document, add)
	l.checkDirectives(result.Document, add)

	return findings
}

// Failed reports whether the run should fail CI given the configured
// warning policy.
func (l *Linter) Failed(report *interfaces.Report) bool {
	if report == nil {
		return false
	}
	if report.Failed() {
		return true
	}
	return l.cfg.FailOnWarning && report.Warnings() > 0
}

type addFunc func(rule string, severity interfaces.Severity, message string, line int)

func (l *Linter) checkFrontMatter(fm interfaces.FrontMatter, add addFunc) {
	if err := validation.Validate(fm.Title, validation.Required); err != nil {
		add(RuleFrontMatterTitle, interfaces.SeverityError, "title must not be empty", 0)
	} else if l.cfg.MaxTitleLength > 0 && utf8.RuneCountInString(fm.Title) > l.cfg.MaxTitleLength {
		add(RuleTitleLength, interfaces.SeverityWarning,
			fmt.Sprintf("title exceeds %d characters", l.cfg.MaxTitleLength), 0)
	}

	if err := validation.Validate(fm.URL, validation.Required); err != nil {
		add(RuleFrontMatterURL, interfaces.SeverityError, "url must not be empty", 0)
	} else if !isValidURLPath(fm.URL) {
		add(RuleURLFormat, interfaces.SeverityWarning,
			fmt.Sprintf("url %q is not a conventional slug path", fm.URL), 0)
	}

	if err := validation.Validate(fm.Date, validation.Required); err != nil {
		add(RuleFrontMatterDate, interfaces.SeverityError, "date must be set", 0)
	} else if !fm.Modified.IsZero() && fm.Modified.Before(fm.Date) {
		add(RuleModifiedOrder, interfaces.SeverityWarning, "modified precedes date", 0)
	}

	if l.cfg.RequireAuthors {
		if err := validation.Validate(fm.Authors, validation.Required); err != nil {
			add(RuleAuthors, interfaces.SeverityError, "at least one author is required", 0)
		}
	}

	if len(l.cfg.FrontMatterSchema) > 0 {
		if err := schemaval.ValidatePayload(l.cfg.FrontMatterSchema, fm.Custom); err != nil {
			for _, issue := range schemaval.Issues(err) {
				message := issue.Message
				if issue.Location != "" {
					message = fmt.Sprintf("%s: %s", issue.Location, issue.Message)
				}
				add(RuleFrontMatterSchema, interfaces.SeverityError, message, 0)
			}
		}
	}

	if fm.Draft {
		add(RuleDraft, interfaces.SeverityInfo, "article is marked as draft", 0)
	}
}

func (l *Linter) checkFileName(path string, fm interfaces.FrontMatter, add addFunc) {
	info, err := markdown.ParseFileName(path)
	if err != nil {
		if errors.Is(err, markdown.ErrFileNameConvention) {
			add(RuleFileName, interfaces.SeverityWarning,
				"file name does not follow YYYY-MM-DD-slug.md", 0)
		}
		return
	}
	if fm.Date.IsZero() {
		return
	}
	fy, fmn, fd := info.Date.Date()
	dy, dmn, dd := fm.Date.Date()
	if fy != dy || fmn != dmn || fd != dd {
		add(RuleFileDateMismatch, interfaces.SeverityWarning,
			fmt.Sprintf("file name date %s does not match front matter date %s",
				info.Date.Format("2006-01-02"), fm.Date.Format("2006-01-02")), 0)
	}
}

func (l *Linter) checkBody(doc *interfaces.Document, add addFunc) {
	if len(strings.TrimSpace(string(doc.Body))) == 0 {
		add(RuleEmptyBody, interfaces.SeverityWarning, "article body is empty", 0)
	}
}

func (l *Linter) checkFences(doc *interfaces.Document, add addFunc) {
	fences, err := l.parser.Fences(doc.Body)
	if err != nil {
		add(RuleFenceLanguage, interfaces.SeverityError,
			fmt.Sprintf("extract code fences: %v", err), 0)
		return
	}
	for _, fence := range fences {
		lang := strings.ToLower(strings.TrimSpace(fence.Language))
		if lang == "" {
			add(RuleFenceLanguage, interfaces.SeverityWarning,
				"fenced code block has no language tag", fence.Line)
			continue
		}
		if _, ok := l.languages[lang]; !ok {
			add(RuleFenceLanguage, interfaces.SeverityError,
				fmt.Sprintf("unknown fence language %q", fence.Language), fence.Line)
		}
	}
}

func (l *Linter) checkDirectives(doc *interfaces.Document, add addFunc) {
	parsed, err := l.directives.Parse(string(doc.Body))
	if err != nil {
		add(RuleDirectiveParse, interfaces.SeverityError, err.Error(), 0)
		return
	}
	registry := l.directives.Registry()
	for _, invocation := range parsed {
		def, ok := registry.Get(invocation.Name)
		if !ok {
			add(RuleDirectiveUnknown, interfaces.SeverityError,
				fmt.Sprintf("unknown directive %q", invocation.Name), invocation.Line)
			continue
		}
		if err := l.validator.ValidateInvocation(def, invocation); err != nil {
			add(RuleDirectiveParams, interfaces.SeverityError,
				fmt.Sprintf("directive %s: %v", invocation.Name, err), invocation.Line)
		}
	}
}

// corpusFindings runs the rules that only make sense across the whole set:
// url uniqueness and duplicate titles on distinct urls.
func (l *Linter) corpusFindings(results []*interfaces.DocumentResult) []interfaces.Finding {
	var findings []interfaces.Finding

	seenURL := map[string]string{}
	titleURLs := map[string]map[string]struct{}{}
	titlePaths := map[string][]string{}

	for _, result := range results {
		if result == nil || result.Document == nil {
			continue
		}
		fm := result.Document.FrontMatter

		if url := strings.TrimSpace(fm.URL); url != "" {
			key := strings.ToLower(url)
			if first, ok := seenURL[key]; ok {
				findings = append(findings, interfaces.Finding{
					Path:     result.Path,
					Rule:     RuleUniqueURL,
					Severity: interfaces.SeverityError,
					Message:  fmt.Sprintf("url %q already used by %s", fm.URL, first),
				})
			} else {
				seenURL[key] = result.Path
			}
		}

		if title := strings.ToLower(strings.TrimSpace(fm.Title)); title != "" {
			if titleURLs[title] == nil {
				titleURLs[title] = map[string]struct{}{}
			}
			titleURLs[title][strings.ToLower(strings.TrimSpace(fm.URL))] = struct{}{}
			titlePaths[title] = append(titlePaths[title], result.Path)
		}
	}

	for title, urls := range titleURLs {
		if len(urls) < 2 {
			continue
		}
		for _, path := range titlePaths[title][1:] {
			findings = append(findings, interfaces.Finding{
				Path:     path,
				Rule:     RuleDuplicateTitle,
				Severity: interfaces.SeverityWarning,
				Message:  fmt.Sprintf("title duplicated across urls: %q", title),
			})
		}
	}

	return findings
}

// isValidURLPath accepts urls shaped like /segment/segment/ where every
// segment is a conventional slug.
func isValidURLPath(url string) bool {
	trimmed := strings.Trim(strings.TrimSpace(url), "/")
	if trimmed == "" {
		return false
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if !slug.IsValid(segment) {
			return false
		}
	}
	return true
}
