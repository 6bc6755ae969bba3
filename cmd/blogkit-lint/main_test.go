package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	corpuscmd "github.com/reflectoring/blogkit/internal/commands/corpus"
)

const cleanArticle = `---
title: "Feature Flags with Spring Boot"
authors: [tom]
date: 2023-05-12
url: /spring-boot-feature-flags/
---

Feature flags decouple deployment from release.

` + "```java\nclass Demo {}\n```\n"

const failingArticle = `---
title: "No URL Here"
authors: [tom]
date: 2023-05-13
---

body
`

func writeArticle(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestRunLintCleanCorpus(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "2023-05-12-spring-boot-feature-flags.md", cleanArticle)

	var out bytes.Buffer
	if err := runLint([]string{"-content-dir", dir, "-log-level", "error"}, &out); err != nil {
		t.Fatalf("runLint: %v", err)
	}
	if !strings.Contains(out.String(), "checked 1 articles") {
		t.Fatalf("expected summary line, got %q", out.String())
	}
}

func TestRunLintFailingCorpus(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "2023-05-13-no-url.md", failingArticle)

	var out bytes.Buffer
	err := runLint([]string{"-content-dir", dir, "-log-level", "error"}, &out)
	if !errors.Is(err, corpuscmd.ErrLintFailed) {
		t.Fatalf("expected ErrLintFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "frontmatter/url") {
		t.Fatalf("expected url finding in output, got %q", out.String())
	}
}

func TestRunLintJSONFormat(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "2023-05-12-spring-boot-feature-flags.md", cleanArticle)

	var out bytes.Buffer
	if err := runLint([]string{"-content-dir", dir, "-format", "json", "-log-level", "error"}, &out); err != nil {
		t.Fatalf("runLint: %v", err)
	}
	if !strings.Contains(out.String(), "\"checked\": 1") {
		t.Fatalf("expected JSON report, got %q", out.String())
	}
}
