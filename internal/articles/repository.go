package articles

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the persistence contract the catalog service depends on.
// Both the bun-backed and the in-memory implementations satisfy it.
type Repository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetByURL(ctx context.Context, url string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewArticleRepository builds the generic bun repository for articles. The
// url doubles as the secondary identifier so GetByIdentifier works on it.
func NewArticleRepository(db *bun.DB) repository.Repository[*Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "url"
		},
		GetIdentifierValue: func(a *Article) string {
			if a == nil {
				return ""
			}
			return a.URL
		},
	})
}
