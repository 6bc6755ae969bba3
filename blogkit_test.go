package blogkit

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/reflectoring/blogkit/internal/articles"
	"github.com/reflectoring/blogkit/internal/runtimeconfig"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

const sampleArticle = `---
title: "Feature Flags with Spring Boot"
authors: [tom]
date: 2023-05-12
url: /spring-boot-feature-flags/
---

Feature flags decouple deployment from release.

` + "```java\nclass Demo {}\n```\n"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"2023-05-12-spring-boot-feature-flags.md": &fstest.MapFile{Data: []byte(sampleArticle)},
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""

	if _, err := New(cfg, WithFS(testFS())); !errors.Is(err, runtimeconfig.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestModuleLintsCorpus(t *testing.T) {
	module, err := New(DefaultConfig(), WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	if module.Linter() == nil {
		t.Fatal("expected linter to be enabled by default")
	}

	report, err := module.Linter().LintDirectory(context.Background(), module.Corpus(), ".")
	if err != nil {
		t.Fatalf("LintDirectory: %v", err)
	}
	if report.Checked != 1 || report.Failed() {
		t.Fatalf("expected clean run, got %#v", report)
	}
}

func TestModuleShortcodeRegistryExtensible(t *testing.T) {
	module, err := New(DefaultConfig(), WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	svc := module.Shortcodes()
	if svc == nil {
		t.Fatal("expected shortcode service to be enabled by default")
	}

	err = svc.Registry().Register(interfaces.ShortcodeDefinition{
		Name: "quote",
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{
				{Name: "author", Type: interfaces.ShortcodeParamString},
			},
		},
		AllowInner: true,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, issues, err := svc.Check(`{{% quote author="Kent Beck" %}}Make it work.{{% /quote %}}`)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestModuleCatalogWithMemoryRepository(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Catalog = true

	module, err := New(cfg,
		WithFS(testFS()),
		WithArticleRepository(articles.NewMemoryArticleRepository()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	catalog := module.Catalog()
	if catalog == nil {
		t.Fatal("expected catalog service")
	}

	result, err := catalog.SyncDirectory(context.Background(), ".", interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("SyncDirectory: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("expected one created article, got %#v", result)
	}

	stored, err := catalog.GetByURL(context.Background(), "/spring-boot-feature-flags/")
	if err != nil {
		t.Fatalf("GetByURL: %v", err)
	}
	if stored.Title != "Feature Flags with Spring Boot" {
		t.Fatalf("unexpected title %q", stored.Title)
	}
}

func TestModuleMigratesInjectedDB(t *testing.T) {
	sqlDB, err := sql.Open("sqlite3", "file:blogkit_injected_db?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	defer db.Close()

	cfg := DefaultConfig()
	cfg.Features.Catalog = true

	module, err := New(cfg, WithFS(testFS()), WithDB(db))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if err := module.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if module.DB() != db {
		t.Fatal("expected DB() to expose the injected handle")
	}

	result, err := module.Catalog().ImportDirectory(ctx, ".", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	if len(result.CreatedIDs) != 1 {
		t.Fatalf("expected one created article, got %#v", result)
	}

	if err := module.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("expected injected handle to stay open after Close: %v", err)
	}
}

func TestModuleDisabledFeatures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Lint = false
	cfg.Features.Shortcodes = false

	module, err := New(cfg, WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	if module.Linter() != nil {
		t.Fatal("expected linter to be disabled")
	}
	if module.Shortcodes() != nil {
		t.Fatal("expected shortcode service to be disabled")
	}
	if module.Catalog() != nil {
		t.Fatal("expected catalog to be disabled by default")
	}
}
