// Package articles persists the imported corpus as a queryable catalog so
// hosts can drive feeds, related-article lookups, and editorial dashboards
// without re-reading the Markdown tree.
package articles

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Article is the canonical catalog record for one corpus entry. The ID is
// derived deterministically from the url so repeated imports stay idempotent.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID         uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	URL        string         `bun:"url,notnull,unique" json:"url"`
	Title      string         `bun:"title,notnull" json:"title"`
	Authors    []string       `bun:"authors,type:jsonb" json:"authors,omitempty"`
	Categories []string       `bun:"categories,type:jsonb" json:"categories,omitempty"`
	Date       time.Time      `bun:"date,nullzero" json:"date"`
	Modified   *time.Time     `bun:"modified,nullzero" json:"modified,omitempty"`
	Excerpt    *string        `bun:"excerpt" json:"excerpt,omitempty"`
	Image      *string        `bun:"image" json:"image,omitempty"`
	Draft      bool           `bun:"draft,notnull,default:false" json:"draft"`
	Checksum   string         `bun:"checksum,notnull" json:"checksum"`
	Body       string         `bun:"body" json:"body"`
	BodyHTML   string         `bun:"body_html" json:"body_html,omitempty"`
	SourcePath string         `bun:"source_path" json:"source_path,omitempty"`
	Custom     map[string]any `bun:"custom,type:jsonb" json:"custom,omitempty"`
	CreatedAt  time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
