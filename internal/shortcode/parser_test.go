package shortcode

import (
	"strings"
	"testing"
)

func TestPercentParserSelfClosing(t *testing.T) {
	parser := NewPercentParser()

	content := `intro
{{% image alt="CloudWatch dashboard" src="images/dashboard.png" %}}
outro`

	placeholders, parsed, err := parser.Extract(content)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(parsed) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(parsed))
	}
	if parsed[0].Name != "image" {
		t.Fatalf("name mismatch: %q", parsed[0].Name)
	}
	if parsed[0].Params["alt"] != "CloudWatch dashboard" {
		t.Fatalf("quoted param with spaces mishandled: %#v", parsed[0].Params)
	}
	if parsed[0].Params["src"] != "images/dashboard.png" {
		t.Fatalf("src param mismatch: %#v", parsed[0].Params)
	}
	if parsed[0].Line != 2 {
		t.Fatalf("expected line 2, got %d", parsed[0].Line)
	}
	if !strings.Contains(placeholders, "<!-- directive:0 -->") {
		t.Fatalf("expected placeholder in output: %q", placeholders)
	}
}

func TestPercentParserPaired(t *testing.T) {
	parser := NewPercentParser()

	content := `{{% info title="Flags are configuration" %}}
Treat feature flags as configuration.
{{% /info %}}`

	parsed, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(parsed) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(parsed))
	}
	if parsed[0].Name != "info" {
		t.Fatalf("name mismatch: %q", parsed[0].Name)
	}
	if !strings.Contains(parsed[0].Inner, "Treat feature flags") {
		t.Fatalf("inner content missing: %q", parsed[0].Inner)
	}
	if parsed[0].Line != 1 {
		t.Fatalf("expected line 1, got %d", parsed[0].Line)
	}
}

func TestPercentParserPositionalParams(t *testing.T) {
	parser := NewPercentParser()

	parsed, err := parser.Parse(`{{% github "https://github.com/thombergs/code-examples?tab=readme" %}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(parsed))
	}
	// Quoted positional values keep their embedded '=' intact.
	if parsed[0].Params["param1"] != "https://github.com/thombergs/code-examples?tab=readme" {
		t.Fatalf("positional param mismatch: %#v", parsed[0].Params)
	}
}

func TestPercentParserUnterminated(t *testing.T) {
	parser := NewPercentParser()

	content := "{{% warning %}}\nnever closed"
	// The opening tag has a closing pair nowhere in the content, so the
	// parser treats it as self-closing; a dangling end tag is an error.
	if _, err := parser.Parse("text {{% /info %}}"); err == nil {
		t.Fatal("expected error for dangling end tag")
	}

	parsed, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Inner != "" {
		t.Fatalf("expected self-closing fallback, got %#v", parsed)
	}
}

func TestPercentParserMismatchedTags(t *testing.T) {
	parser := NewPercentParser()

	content := "{{% info %}}body{{% /warning %}}{{% /info %}}"
	if _, err := parser.Parse(content); err == nil {
		t.Fatal("expected error for mismatched end tag")
	}
}

func TestPercentParserNested(t *testing.T) {
	parser := NewPercentParser()

	content := `{{% info %}}outer {{% image src="a.png" alt="a" %}} text{{% /info %}}`
	parsed, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 directives, got %d", len(parsed))
	}
	// The inner image resolves first, the callout wraps its placeholder.
	if parsed[0].Name != "image" || parsed[1].Name != "info" {
		t.Fatalf("unexpected order: %#v", parsed)
	}
	if !strings.Contains(parsed[1].Inner, "<!-- directive:0 -->") {
		t.Fatalf("expected inner placeholder, got %q", parsed[1].Inner)
	}
}
