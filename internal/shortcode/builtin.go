package shortcode

import (
	"fmt"
	"strings"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// BuiltInDefinitions returns the directive catalogue used across the article
// corpus: image and github embeds plus the callout family.
func BuiltInDefinitions() []interfaces.ShortcodeDefinition {
	defs := []interfaces.ShortcodeDefinition{
		imageDefinition(),
		githubDefinition(),
	}
	for _, name := range []string{"info", "warning", "danger", "success"} {
		defs = append(defs, calloutDefinition(name))
	}
	return defs
}

func imageDefinition() interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:        "image",
		Description: "Embeds a responsive article image",
		AllowInner:  false,
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{
				{
					Name:     "src",
					Type:     interfaces.ShortcodeParamString,
					Required: true,
				},
				{
					Name:     "alt",
					Type:     interfaces.ShortcodeParamString,
					Required: true,
				},
				{
					Name: "caption",
					Type: interfaces.ShortcodeParamString,
				},
			},
		},
	}
}

func githubDefinition() interfaces.ShortcodeDefinition {
	validateRepoURL := func(value any) error {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("github url must be a string")
		}
		if !strings.HasPrefix(str, "https://github.com/") {
			return fmt.Errorf("github url %q must point at github.com", str)
		}
		return nil
	}

	return interfaces.ShortcodeDefinition{
		Name:        "github",
		Description: "Links the example code repository for an article",
		AllowInner:  false,
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{
				{
					Name:     "param1",
					Type:     interfaces.ShortcodeParamURL,
					Required: true,
					Validate: validateRepoURL,
				},
			},
		},
	}
}

func calloutDefinition(name string) interfaces.ShortcodeDefinition {
	return interfaces.ShortcodeDefinition{
		Name:        name,
		Description: fmt.Sprintf("Displays a %s callout box", name),
		AllowInner:  true,
		Schema: interfaces.ShortcodeSchema{
			Params: []interfaces.ShortcodeParam{
				{
					Name: "title",
					Type: interfaces.ShortcodeParamString,
				},
			},
		},
	}
}
