package articles

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/reflectoring/blogkit/internal/identity"
	"github.com/reflectoring/blogkit/internal/markdown"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

func newTestService(t *testing.T) (*Service, *MemoryArticleRepository) {
	t.Helper()
	repo := NewMemoryArticleRepository()
	svc, err := NewService(ServiceConfig{Repository: repo})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func buildDocument(t *testing.T, path, source string) *interfaces.Document {
	t.Helper()
	doc, err := markdown.BuildDocument(path, []byte(source), time.Time{})
	if err != nil {
		t.Fatalf("BuildDocument %s: %v", path, err)
	}
	return doc
}

const flagArticle = `---
title: "Feature Flags with Spring Boot"
authors: [tom]
categories: ["Spring Boot"]
date: 2023-05-12
url: /spring-boot-feature-flags/
---

Feature flags decouple deployment from release.
`

func TestImportCreatesArticle(t *testing.T) {
	svc, repo := newTestService(t)

	doc := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md", flagArticle)
	result, err := svc.ImportDocument(context.Background(), doc, interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportDocument: %v", err)
	}
	if len(result.CreatedIDs) != 1 {
		t.Fatalf("expected one created id, got %#v", result)
	}

	stored, err := repo.GetByURL(context.Background(), "/spring-boot-feature-flags/")
	if err != nil {
		t.Fatalf("GetByURL: %v", err)
	}
	if stored.ID != identity.ArticleUUID("/spring-boot-feature-flags/") {
		t.Fatal("expected deterministic article id")
	}
	if stored.Title != "Feature Flags with Spring Boot" {
		t.Fatalf("unexpected title %q", stored.Title)
	}
	if len(stored.Checksum) == 0 {
		t.Fatal("expected checksum to be stored")
	}
}

func TestImportSkipsUnchangedDocument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	doc := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md", flagArticle)
	if _, err := svc.ImportDocument(ctx, doc, interfaces.ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	result, err := svc.ImportDocument(ctx, doc, interfaces.ImportOptions{UpdateExisting: true})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(result.SkippedIDs) != 1 || len(result.UpdatedIDs) != 0 {
		t.Fatalf("expected unchanged document to be skipped, got %#v", result)
	}
}

func TestImportRejectsExistingURLWithoutUpdate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	doc := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md", flagArticle)
	if _, err := svc.ImportDocument(ctx, doc, interfaces.ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	changed := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md",
		strings.Replace(flagArticle, "decouple", "separate", 1))
	_, err := svc.ImportDocument(ctx, changed, interfaces.ImportOptions{})
	if !errors.Is(err, ErrURLExists) {
		t.Fatalf("expected ErrURLExists, got %v", err)
	}
}

func TestImportUpdatesChangedDocument(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	doc := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md", flagArticle)
	if _, err := svc.ImportDocument(ctx, doc, interfaces.ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	changed := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md",
		strings.Replace(flagArticle, "decouple", "separate", 1))
	result, err := svc.ImportDocument(ctx, changed, interfaces.ImportOptions{UpdateExisting: true})
	if err != nil {
		t.Fatalf("update import: %v", err)
	}
	if len(result.UpdatedIDs) != 1 {
		t.Fatalf("expected one update, got %#v", result)
	}

	stored, err := repo.GetByURL(ctx, "/spring-boot-feature-flags/")
	if err != nil {
		t.Fatalf("GetByURL: %v", err)
	}
	if !strings.Contains(stored.Body, "separate") {
		t.Fatal("expected updated body to be stored")
	}
}

func TestImportDryRunWritesNothing(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	doc := buildDocument(t, "2023-05-12-spring-boot-feature-flags.md", flagArticle)
	result, err := svc.ImportDocument(ctx, doc, interfaces.ImportOptions{DryRun: true})
	if err != nil {
		t.Fatalf("ImportDocument: %v", err)
	}
	if len(result.SkippedIDs) != 1 {
		t.Fatalf("expected dry run to skip, got %#v", result)
	}
	if _, err := repo.GetByURL(ctx, "/spring-boot-feature-flags/"); !IsNotFound(err) {
		t.Fatalf("expected nothing stored, got %v", err)
	}
}

func TestImportRequiresURL(t *testing.T) {
	svc, _ := newTestService(t)

	doc := buildDocument(t, "2023-05-12-missing-url.md", `---
title: No URL
date: 2023-05-12
---

body
`)
	result, err := svc.ImportDocument(context.Background(), doc, interfaces.ImportOptions{})
	if !errors.Is(err, ErrURLRequired) {
		t.Fatalf("expected ErrURLRequired, got %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one collected error, got %#v", result)
	}
}

func TestSyncDirectoryDeletesOrphans(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryArticleRepository()

	fsys := fstest.MapFS{
		"2023-05-12-spring-boot-feature-flags.md": &fstest.MapFile{Data: []byte(flagArticle)},
	}
	corpus, err := markdown.NewServiceWithFS(markdown.Config{Recursive: true}, nil, fsys)
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}

	svc, err := NewService(ServiceConfig{Repository: repo, Corpus: corpus})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	// Seed a record that no longer exists on disk.
	orphan := buildDocument(t, "2020-01-01-retired-article.md", `---
title: Retired
date: 2020-01-01
url: /retired-article/
---

old body
`)
	if _, err := svc.ImportDocument(ctx, orphan, interfaces.ImportOptions{}); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	result, err := svc.SyncDirectory(ctx, ".", interfaces.SyncOptions{DeleteOrphaned: true})
	if err != nil {
		t.Fatalf("SyncDirectory: %v", err)
	}
	if result.Created != 1 || result.Deleted != 1 {
		t.Fatalf("expected 1 created and 1 deleted, got %#v", result)
	}

	if _, err := repo.GetByURL(ctx, "/retired-article/"); !IsNotFound(err) {
		t.Fatalf("expected orphan to be deleted, got %v", err)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sources := map[string]string{
		"2023-01-01-older.md": `---
title: Older Spring Article
authors: [tom]
categories: ["Spring Boot"]
date: 2023-01-01
url: /older/
---

body
`,
		"2023-06-01-newer.md": `---
title: Newer Node Article
authors: [petros]
categories: ["Node"]
date: 2023-06-01
url: /newer/
---

body
`,
		"2024-02-08-draft.md": `---
title: Unfinished
authors: [tom]
date: 2024-02-08
url: /unfinished/
draft: true
---

body
`,
	}
	for path, source := range sources {
		if _, err := svc.ImportDocument(ctx, buildDocument(t, path, source), interfaces.ImportOptions{}); err != nil {
			t.Fatalf("import %s: %v", path, err)
		}
	}

	all, err := svc.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected drafts excluded, got %d records", len(all))
	}
	if all[0].URL != "/newer/" {
		t.Fatalf("expected newest first, got %s", all[0].URL)
	}

	withDrafts, err := svc.List(ctx, ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("List with drafts: %v", err)
	}
	if len(withDrafts) != 3 {
		t.Fatalf("expected 3 records with drafts, got %d", len(withDrafts))
	}

	spring, err := svc.List(ctx, ListOptions{Category: "spring boot"})
	if err != nil {
		t.Fatalf("List by category: %v", err)
	}
	if len(spring) != 1 || spring[0].URL != "/older/" {
		t.Fatalf("unexpected category filter result %#v", spring)
	}

	byAuthor, err := svc.List(ctx, ListOptions{Author: "petros"})
	if err != nil {
		t.Fatalf("List by author: %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].URL != "/newer/" {
		t.Fatalf("unexpected author filter result %#v", byAuthor)
	}
}
