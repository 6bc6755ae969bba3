package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleArticle = `---
title: "Feature Flags with Spring Boot"
authors: [tom]
date: 2023-05-12
url: /spring-boot-feature-flags/
---

Feature flags decouple deployment from release.
`

func TestRunImportAgainstSQLite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2023-05-12-spring-boot-feature-flags.md"), []byte(sampleArticle), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := runImport([]string{
		"-content-dir", dir,
		"-storage-dsn", "file::memory:?cache=shared",
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("runImport: %v", err)
	}
}

func TestRunImportSyncDryRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2023-05-12-spring-boot-feature-flags.md"), []byte(sampleArticle), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := runImport([]string{
		"-content-dir", dir,
		"-storage-dsn", "file::memory:?cache=shared",
		"-sync",
		"-dry-run",
		"-log-level", "error",
	})
	if err != nil {
		t.Fatalf("runImport sync: %v", err)
	}
}
