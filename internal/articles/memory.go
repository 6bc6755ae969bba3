package articles

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryArticleRepository is an in-memory implementation for scaffolding and tests.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	records  map[uuid.UUID]*Article
	urlIndex map[string]uuid.UUID
}

// NewMemoryArticleRepository creates an empty in-memory article repository.
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		records:  make(map[uuid.UUID]*Article),
		urlIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryArticleRepository) Create(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.urlIndex[urlKey(record.URL)]; ok {
		return nil, ErrURLExists
	}

	copied := cloneArticle(record)
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}
	copied.UpdatedAt = copied.CreatedAt
	m.records[copied.ID] = copied
	m.urlIndex[urlKey(copied.URL)] = copied.ID
	return cloneArticle(copied), nil
}

func (m *MemoryArticleRepository) Update(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: record.ID.String()}
	}

	copied := cloneArticle(record)
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now().UTC()
	delete(m.urlIndex, urlKey(existing.URL))
	m.records[copied.ID] = copied
	m.urlIndex[urlKey(copied.URL)] = copied.ID
	return cloneArticle(copied), nil
}

func (m *MemoryArticleRepository) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: id.String()}
	}
	return cloneArticle(rec), nil
}

func (m *MemoryArticleRepository) GetByURL(_ context.Context, url string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.urlIndex[urlKey(url)]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: url}
	}
	return cloneArticle(m.records[id]), nil
}

func (m *MemoryArticleRepository) List(_ context.Context) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneArticle(rec))
	}
	return out, nil
}

func (m *MemoryArticleRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}
	delete(m.urlIndex, urlKey(rec.URL))
	delete(m.records, id)
	return nil
}

func urlKey(url string) string {
	return strings.ToLower(strings.TrimSpace(url))
}

func cloneArticle(src *Article) *Article {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Authors) > 0 {
		copied.Authors = append([]string(nil), src.Authors...)
	}
	if len(src.Categories) > 0 {
		copied.Categories = append([]string(nil), src.Categories...)
	}
	if len(src.Custom) > 0 {
		copied.Custom = make(map[string]any, len(src.Custom))
		for k, v := range src.Custom {
			copied.Custom[k] = v
		}
	}
	return &copied
}

var _ Repository = (*MemoryArticleRepository)(nil)
