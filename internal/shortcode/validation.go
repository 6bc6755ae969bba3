package shortcode

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/reflectoring/blogkit/pkg/interfaces"
)

var (
	// ErrUnknownParameter indicates the invocation supplied an unexpected parameter.
	ErrUnknownParameter = errors.New("shortcode: unknown parameter")
	// ErrMissingParameter indicates a required parameter was not provided.
	ErrMissingParameter = errors.New("shortcode: missing required parameter")
	// ErrParameterType indicates a parameter could not be coerced to the requested type.
	ErrParameterType = errors.New("shortcode: parameter type mismatch")
	// ErrInnerNotAllowed indicates inner content on a self-closing directive.
	ErrInnerNotAllowed = errors.New("shortcode: directive does not allow inner content")
)

// Validator performs definition and parameter validation.
type Validator struct{}

// NewValidator returns a Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateDefinition ensures the definition contains a name, schema, and valid parameter definitions.
func (v *Validator) ValidateDefinition(def interfaces.ShortcodeDefinition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}

	return validateSchema(def.Schema)
}

func validateSchema(schema interfaces.ShortcodeSchema) error {
	seen := make(map[string]struct{})
	for _, param := range schema.Params {
		name := strings.TrimSpace(param.Name)
		if name == "" {
			return fmt.Errorf("%w: schema parameter name required", ErrInvalidDefinition)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate schema parameter %q", ErrInvalidDefinition, name)
		}
		seen[name] = struct{}{}

		switch param.Type {
		case interfaces.ShortcodeParamString,
			interfaces.ShortcodeParamInt,
			interfaces.ShortcodeParamBool,
			interfaces.ShortcodeParamURL:
			// Valid types
		default:
			return fmt.Errorf("%w: parameter %q unknown type %q", ErrInvalidDefinition, name, param.Type)
		}
	}
	return nil
}

// ValidateInvocation checks a parsed invocation against its registered
// definition: parameter names, types, required params, and inner content.
func (v *Validator) ValidateInvocation(def interfaces.ShortcodeDefinition, parsed interfaces.ParsedShortcode) error {
	if !def.AllowInner && strings.TrimSpace(parsed.Inner) != "" {
		return fmt.Errorf("%w: %s", ErrInnerNotAllowed, def.Name)
	}
	_, err := v.CoerceParams(def, parsed.Params)
	return err
}

// CoerceParams validates supplied parameters against the definition schema, returning a normalised map.
func (v *Validator) CoerceParams(def interfaces.ShortcodeDefinition, supplied map[string]any) (map[string]any, error) {
	if err := v.ValidateDefinition(def); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(def.Schema.Params))
	allowed := make(map[string]interfaces.ShortcodeParam, len(def.Schema.Params))
	for _, param := range def.Schema.Params {
		allowed[param.Name] = param
		if def.Schema.Defaults != nil {
			if value, ok := def.Schema.Defaults[param.Name]; ok {
				out[param.Name] = value
			}
		} else if param.Default != nil {
			out[param.Name] = param.Default
		}
	}

	for key, value := range supplied {
		param, ok := allowed[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
		}
		coerced, err := coerceValue(param.Type, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %v", ErrParameterType, key, err)
		}
		if param.Validate != nil {
			if err := param.Validate(coerced); err != nil {
				return nil, err
			}
		}
		out[key] = coerced
	}

	for _, param := range def.Schema.Params {
		if param.Required {
			if _, ok := out[param.Name]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingParameter, param.Name)
			}
		}
	}

	return out, nil
}

func coerceValue(paramType interfaces.ShortcodeParamType, value any) (any, error) {
	switch paramType {
	case interfaces.ShortcodeParamString:
		return fmt.Sprintf("%v", value), nil
	case interfaces.ShortcodeParamInt:
		switch typed := value.(type) {
		case int:
			return typed, nil
		case float64:
			return int(typed), nil
		case string:
			parsed, err := strconv.Atoi(strings.TrimSpace(typed))
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as int", typed)
			}
			return parsed, nil
		default:
			return nil, fmt.Errorf("cannot coerce %T to int", value)
		}
	case interfaces.ShortcodeParamBool:
		switch typed := value.(type) {
		case bool:
			return typed, nil
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as bool", typed)
			}
			return parsed, nil
		default:
			return nil, fmt.Errorf("cannot coerce %T to bool", value)
		}
	case interfaces.ShortcodeParamURL:
		str := fmt.Sprintf("%v", value)
		parsed, err := url.Parse(str)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("invalid url %q", str)
		}
		return str, nil
	default:
		return nil, fmt.Errorf("unknown parameter type %q", paramType)
	}
}
