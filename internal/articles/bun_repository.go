package articles

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunArticleRepository adapts the generic bun repository to the catalog
// Repository contract.
type BunArticleRepository struct {
	repo repository.Repository[*Article]
}

// NewBunArticleRepository builds an uncached bun-backed repository.
func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

// NewBunArticleRepositoryWithCache wraps the repository with the shared
// read-through cache when both a cache service and key serializer are given.
func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := NewArticleRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunArticleRepository{repo: wrapped}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *Article) (*Article, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("article repository create %s: %w", record.URL, err)
	}
	return created, nil
}

func (r *BunArticleRepository) Update(ctx context.Context, record *Article) (*Article, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.URL)
	}
	return updated, nil
}

func (r *BunArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return result, nil
}

func (r *BunArticleRepository) GetByURL(ctx context.Context, url string) (*Article, error) {
	result, err := r.repo.GetByIdentifier(ctx, url)
	if err != nil {
		return nil, mapRepositoryError(err, url)
	}
	return result, nil
}

func (r *BunArticleRepository) List(ctx context.Context) ([]*Article, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("article repository list: %w", err)
	}
	return records, nil
}

func (r *BunArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Article{ID: id}); err != nil {
		return mapRepositoryError(err, id.String())
	}
	return nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: "article", Key: key}
	}
	return fmt.Errorf("article repository error: %w", err)
}

func wrapWithCache(base repository.Repository[*Article], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[*Article] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

var _ Repository = (*BunArticleRepository)(nil)
