package markdown

import (
	"context"
	"os"
	"testing"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

func newTestLoader(t *testing.T, recursive bool) *Loader {
	t.Helper()
	return NewLoader(os.DirFS("testdata"), LoaderConfig{
		BasePath:  "testdata",
		Recursive: recursive,
	})
}

func TestLoaderLoadFile(t *testing.T) {
	loader := newTestLoader(t, false)

	result, err := loader.LoadFile(context.Background(), "2022-11-03-cloudwatch-metrics.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if result.Document == nil {
		t.Fatal("expected parsed document")
	}
	if result.Document.FrontMatter.Title != "Publishing Metrics to CloudWatch" {
		t.Fatalf("unexpected title %q", result.Document.FrontMatter.Title)
	}
	if len(result.Document.Checksum) != 32 {
		t.Fatalf("expected SHA-256 checksum, got %d bytes", len(result.Document.Checksum))
	}
	if len(result.Source) == 0 {
		t.Fatal("expected raw source to be retained")
	}
}

func TestLoaderLoadDirectoryFailsFast(t *testing.T) {
	loader := newTestLoader(t, false)

	// The broken fixture sits in the root, so a strict walk must fail.
	if _, err := loader.LoadDirectory(context.Background(), ".", LoadParams{}); err == nil {
		t.Fatal("expected error from broken fixture")
	}
}

func TestLoaderLoadDirectoryLenient(t *testing.T) {
	loader := newTestLoader(t, true)

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{ContinueOnError: true})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	var failed, parsed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		parsed++
	}
	if failed != 1 || parsed != 3 {
		t.Fatalf("expected 1 failure and 3 parsed documents, got %d/%d", failed, parsed)
	}

	// Results are sorted by path.
	if results[0].Path > results[len(results)-1].Path {
		t.Fatal("expected results sorted by path")
	}
}

func TestLoaderNonRecursiveSkipsSubdirectories(t *testing.T) {
	loader := newTestLoader(t, false)

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{ContinueOnError: true})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	for _, result := range results {
		if result.Path == "drafts/2024-02-08-node-modules.md" {
			t.Fatal("expected drafts subdirectory to be skipped")
		}
	}
}

func TestLoaderContextCancellation(t *testing.T) {
	loader := newTestLoader(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadDirectory(ctx, ".", LoadParams{}); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestServiceLoadRendersHTML(t *testing.T) {
	svc, err := NewServiceWithFS(Config{BasePath: "testdata"}, nil, os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}

	doc, err := svc.Load(context.Background(), "2023-05-12-spring-boot-feature-flags.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.BodyHTML) == 0 {
		t.Fatal("expected rendered HTML")
	}

	fences, err := svc.Fences(doc)
	if err != nil {
		t.Fatalf("Fences: %v", err)
	}
	if len(fences) != 2 {
		t.Fatalf("expected 2 fences, got %d", len(fences))
	}
}
