package markdown

import (
	"errors"
	"testing"
)

func TestParseFileName(t *testing.T) {
	info, err := ParseFileName("posts/2023-05-12-spring-boot-feature-flags.md")
	if err != nil {
		t.Fatalf("ParseFileName: %v", err)
	}
	if info.Slug != "spring-boot-feature-flags" {
		t.Fatalf("slug mismatch: %q", info.Slug)
	}
	if info.Date.Format("2006-01-02") != "2023-05-12" {
		t.Fatalf("date mismatch: %v", info.Date)
	}
}

func TestParseFileNameRejectsUnconventionalNames(t *testing.T) {
	cases := []string{
		"spring-boot-feature-flags.md",
		"2023-5-12-slug.md",
		"2023-05-12-slug.markdown",
		"2023-05-12-.md",
	}
	for _, name := range cases {
		if _, err := ParseFileName(name); !errors.Is(err, ErrFileNameConvention) {
			t.Fatalf("%s: expected ErrFileNameConvention, got %v", name, err)
		}
	}
}

func TestParseFileNameInvalidDate(t *testing.T) {
	if _, err := ParseFileName("2023-13-45-slug.md"); !errors.Is(err, ErrFileNameConvention) {
		t.Fatalf("expected ErrFileNameConvention for impossible date, got %v", err)
	}
}
