package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered. The block is decoded a
// second time into a plain map so Raw records every key the author wrote,
// including keys set to explicit zero values.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	raw := map[string]any{}
	if _, err := frontmatter.Parse(bytes.NewReader(source), &raw); err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta, raw), body, nil
}

// HasFrontMatter reports whether the source opens with a front-matter block.
func HasFrontMatter(source []byte) bool {
	trimmed := bytes.TrimLeft(source, "\xef\xbb\xbf \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("---"))
}

// EncodeFrontMatter serialises front matter back into YAML, preserving every
// key and value captured during parsing. Keys are emitted in sorted order.
func EncodeFrontMatter(fm interfaces.FrontMatter) ([]byte, error) {
	raw := fm.Raw
	if len(raw) == 0 {
		raw = map[string]any{}
	}
	encoded, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	return encoded, nil
}

// ComposeDocument reassembles a full article file from front matter and body.
func ComposeDocument(fm interfaces.FrontMatter, body []byte) ([]byte, error) {
	encoded, err := EncodeFrontMatter(fm)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(encoded)
	buf.WriteString("---\n\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	frontmatter, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  frontmatter,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title      string         `yaml:"title"`
	Authors    []string       `yaml:"authors"`
	Categories []string       `yaml:"categories"`
	Date       time.Time      `yaml:"date"`
	Modified   time.Time      `yaml:"modified"`
	Excerpt    string         `yaml:"excerpt"`
	Image      string         `yaml:"image"`
	URL        string         `yaml:"url"`
	Draft      bool           `yaml:"draft"`
	Custom     map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope, raw map[string]any) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// Recognised keys are normalised to their parsed values, but only when the
	// author wrote them: presence follows the raw block, so an explicit
	// `draft: false` or `excerpt: ""` survives re-encoding.
	if _, ok := raw["title"]; ok {
		raw["title"] = env.Title
	}
	if _, ok := raw["authors"]; ok {
		raw["authors"] = append([]string(nil), env.Authors...)
	}
	if _, ok := raw["categories"]; ok {
		raw["categories"] = append([]string(nil), env.Categories...)
	}
	if _, ok := raw["date"]; ok {
		raw["date"] = env.Date
	}
	if _, ok := raw["modified"]; ok {
		raw["modified"] = env.Modified
	}
	if _, ok := raw["excerpt"]; ok {
		raw["excerpt"] = env.Excerpt
	}
	if _, ok := raw["image"]; ok {
		raw["image"] = env.Image
	}
	if _, ok := raw["url"]; ok {
		raw["url"] = env.URL
	}
	if _, ok := raw["draft"]; ok {
		raw["draft"] = env.Draft
	}

	return interfaces.FrontMatter{
		Title:      env.Title,
		Authors:    append([]string(nil), env.Authors...),
		Categories: append([]string(nil), env.Categories...),
		Date:       env.Date,
		Modified:   env.Modified,
		Excerpt:    env.Excerpt,
		Image:      env.Image,
		URL:        env.URL,
		Draft:      env.Draft,
		Custom:     cloneMap(env.Custom),
		Raw:        raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
