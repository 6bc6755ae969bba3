package blogkit

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Content.Dir != "content" {
		t.Fatalf("unexpected content dir %q", cfg.Content.Dir)
	}
	if !cfg.Features.Lint || !cfg.Features.Shortcodes {
		t.Fatal("expected lint and shortcodes enabled by default")
	}
	if cfg.Features.Catalog {
		t.Fatal("expected catalog disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestDefaultLintLanguagesCoverCorpusTags(t *testing.T) {
	languages := map[string]bool{}
	for _, lang := range DefaultLintLanguages() {
		languages[lang] = true
	}
	for _, required := range []string{"java", "js", "json", "yaml", "shell", "xml", "sql", "text"} {
		if !languages[required] {
			t.Fatalf("expected default languages to include %q", required)
		}
	}
}
