package logging

import (
	"context"
	"testing"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type staticProvider struct {
	logger interfaces.Logger
}

func (p staticProvider) GetLogger(string) interfaces.Logger { return p.logger }

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	base := &recordingLogger{fields: map[string]any{}}
	logger := ModuleLogger(staticProvider{logger: base}, "blogkit.lint")

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recordingLogger, got %T", logger)
	}
	if rec.fields["module"] != "blogkit.lint" {
		t.Fatalf("expected module field, got %#v", rec.fields)
	}
}

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	// Must not panic.
	logger.Info("noop entry", "key", "value")
}

func TestWithArticleContextSkipsEmptyValues(t *testing.T) {
	base := &recordingLogger{fields: map[string]any{}}
	logger := WithArticleContext(base, "posts/2023-05-12-feature-flags.md", "", "import")

	rec := logger.(*recordingLogger)
	if rec.fields["article_path"] != "posts/2023-05-12-feature-flags.md" {
		t.Fatalf("expected article_path field, got %#v", rec.fields)
	}
	if _, ok := rec.fields["article_url"]; ok {
		t.Fatalf("expected empty url to be skipped, got %#v", rec.fields)
	}
	if rec.fields["sync_action"] != "import" {
		t.Fatalf("expected sync_action field, got %#v", rec.fields)
	}
}
