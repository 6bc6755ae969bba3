package shortcode

import (
	"errors"
	"strings"
	"testing"
)

func TestServiceCheckValidContent(t *testing.T) {
	svc, err := NewService(ServiceConfig{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	content := `{{% image src="images/dashboard.png" alt="dashboard" %}}

{{% info title="Heads up" %}}
Callouts may carry inner content.
{{% /info %}}

{{% github "https://github.com/thombergs/code-examples" %}}`

	parsed, issues, err := svc.Check(content)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(parsed) != 3 {
		t.Fatalf("expected 3 directives, got %d", len(parsed))
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestServiceCheckReportsUnknownDirective(t *testing.T) {
	svc, err := NewService(ServiceConfig{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, issues, err := svc.Check(`{{% youtube id="abc" %}}`)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(issues) != 1 || !errors.Is(issues[0], ErrUnknownDirective) {
		t.Fatalf("expected unknown directive issue, got %v", issues)
	}
}

func TestServiceCheckReportsMissingParams(t *testing.T) {
	svc, err := NewService(ServiceConfig{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, issues, err := svc.Check(`{{% image src="images/a.png" %}}`)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(issues) != 1 || !errors.Is(issues[0], ErrMissingParameter) {
		t.Fatalf("expected missing parameter issue, got %v", issues)
	}
	if !strings.Contains(issues[0].Error(), "alt") {
		t.Fatalf("expected issue to name the alt param, got %v", issues[0])
	}
}

func TestServiceCheckValidatesGithubURL(t *testing.T) {
	svc, err := NewService(ServiceConfig{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, issues, err := svc.Check(`{{% github "https://gitlab.com/some/repo" %}}`)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected one issue for non-github url, got %v", issues)
	}
}
