package shortcode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

var (
	startTagPattern = regexp.MustCompile(`{{%\s*([^\s/%]+)((?:[^%]|%[^}])*?)%}}`)
	endTagPattern   = regexp.MustCompile(`{{%\s*/\s*([^\s%]+)\s*%}}`)
)

// PercentParser parses percent-style directives ({{% name param %}} ... {{% /name %}}).
type PercentParser struct {
}

// NewPercentParser creates a parser instance.
func NewPercentParser() *PercentParser {
	return &PercentParser{}
}

// Parse returns the list of parsed directives in the content.
func (p *PercentParser) Parse(content string) ([]interfaces.ParsedShortcode, error) {
	_, shortcodes, err := p.Extract(content)
	return shortcodes, err
}

// Extract replaces directives with placeholders and returns both the
// transformed content and extracted invocations.
func (p *PercentParser) Extract(content string) (string, []interfaces.ParsedShortcode, error) {
	type stackEntry struct {
		name       string
		startIndex int
		params     map[string]any
		line       int
	}

	var (
		result     []rune
		shortcodes []interfaces.ParsedShortcode
		stack      []stackEntry
		position   int
	)

	appendString := func(s string) {
		result = append(result, []rune(s)...)
	}

	for position < len(content) {
		loc := startTagPattern.FindStringIndex(content[position:])
		endLoc := endTagPattern.FindStringIndex(content[position:])

		if loc == nil && endLoc == nil {
			appendString(content[position:])
			break
		}

		startPos := -1
		if loc != nil {
			startPos = position + loc[0]
		}

		endPos := -1
		if endLoc != nil {
			endPos = position + endLoc[0]
		}

		if startPos >= 0 && (endPos == -1 || startPos < endPos) {
			// append text preceding tag
			appendString(content[position:startPos])

			matches := startTagPattern.FindStringSubmatch(content[startPos:])
			if len(matches) < 2 {
				return "", nil, fmt.Errorf("invalid directive start tag at position %d", startPos)
			}
			name := matches[1]
			rawParams := strings.TrimSpace(matches[2])
			params := parseParams(rawParams)
			line := lineOf(content, startPos)

			// Determine if this directive is self-closing (no corresponding end tag).
			remainder := content[startPos+len(matches[0]):]
			endMatcher := regexp.MustCompile(fmt.Sprintf(`{{%%\s*/\s*%s\s*%%}}`, regexp.QuoteMeta(name)))
			if loc := endMatcher.FindStringIndex(remainder); loc == nil {
				placeholder := fmt.Sprintf("<!-- directive:%d -->", len(shortcodes))
				appendString(placeholder)
				shortcodes = append(shortcodes, interfaces.ParsedShortcode{
					Name:   name,
					Params: params,
					Line:   line,
				})
				position = startPos + len(matches[0])
				continue
			}

			stack = append(stack, stackEntry{
				name:       name,
				startIndex: len(result),
				params:     params,
				line:       line,
			})

			position = startPos + len(matches[0])
			continue
		}

		if endPos >= 0 {
			appendString(content[position:endPos])

			matches := endTagPattern.FindStringSubmatch(content[endPos:])
			if len(matches) < 2 {
				return "", nil, fmt.Errorf("invalid directive end tag at position %d", endPos)
			}
			name := matches[1]
			if len(stack) == 0 {
				return "", nil, fmt.Errorf("unexpected closing directive %s at line %d", name, lineOf(content, endPos))
			}

			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if entry.name != name {
				return "", nil, fmt.Errorf("mismatched directive end tag %s, expected %s", name, entry.name)
			}

			inner := string(result[entry.startIndex:])
			result = result[:entry.startIndex]

			placeholder := fmt.Sprintf("<!-- directive:%d -->", len(shortcodes))
			appendString(placeholder)

			shortcodes = append(shortcodes, interfaces.ParsedShortcode{
				Name:   name,
				Params: entry.params,
				Inner:  inner,
				Line:   entry.line,
			})

			position = endPos + len(matches[0])
			continue
		}
	}

	if len(stack) > 0 {
		entry := stack[len(stack)-1]
		return "", nil, fmt.Errorf("unterminated directive %s opened at line %d", entry.name, entry.line)
	}

	return string(result), shortcodes, nil
}

func parseParams(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	parts := splitParams(raw)
	params := make(map[string]any, len(parts))
	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && !strings.HasPrefix(part, `"`) {
			key := strings.TrimSpace(kv[0])
			value := strings.Trim(kv[1], `"`)
			params[key] = value
		} else {
			params[fmt.Sprintf("param%d", len(params)+1)] = strings.Trim(part, `"`)
		}
	}
	return params
}

// splitParams tokenises the raw parameter string, keeping quoted values with
// embedded spaces intact.
func splitParams(raw string) []string {
	var (
		parts   []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range raw {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func lineOf(content string, offset int) int {
	if offset < 0 || offset > len(content) {
		return 0
	}
	return 1 + strings.Count(content[:offset], "\n")
}

var _ interfaces.ShortcodeParser = (*PercentParser)(nil)
