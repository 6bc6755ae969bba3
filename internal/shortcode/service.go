package shortcode

import (
	"fmt"

	"github.com/reflectoring/blogkit/internal/logging"
	"github.com/reflectoring/blogkit/pkg/interfaces"
)

// Service bundles the parser, registry, and validator into the directive
// checking workflow used by the linter and the facade.
type Service struct {
	parser    interfaces.ShortcodeParser
	registry  interfaces.ShortcodeRegistry
	validator *Validator
	logger    interfaces.Logger
}

// ServiceConfig wires the service dependencies; nil fields fall back to defaults.
type ServiceConfig struct {
	Parser   interfaces.ShortcodeParser
	Registry interfaces.ShortcodeRegistry
	Logger   interfaces.Logger
}

// NewService builds a directive service. When no registry is supplied, one is
// created and seeded with the built-in definitions.
func NewService(cfg ServiceConfig) (*Service, error) {
	validator := NewValidator()

	registry := cfg.Registry
	if registry == nil {
		registry = NewRegistry(validator)
		for _, def := range BuiltInDefinitions() {
			if err := registry.Register(def); err != nil {
				return nil, fmt.Errorf("register builtin directive %s: %w", def.Name, err)
			}
		}
	}

	parser := cfg.Parser
	if parser == nil {
		parser = NewPercentParser()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		parser:    parser,
		registry:  registry,
		validator: validator,
		logger:    logger,
	}, nil
}

// Registry exposes the underlying registry so hosts can add custom directives.
func (s *Service) Registry() interfaces.ShortcodeRegistry {
	return s.registry
}

// Parse extracts directive invocations from content.
func (s *Service) Parse(content string) ([]interfaces.ParsedShortcode, error) {
	return s.parser.Parse(content)
}

// Check parses the content and validates every invocation against the
// registry. It returns the parsed invocations together with per-invocation
// validation errors; a non-nil error means the content could not be parsed.
func (s *Service) Check(content string) ([]interfaces.ParsedShortcode, []error, error) {
	parsed, err := s.parser.Parse(content)
	if err != nil {
		return nil, nil, err
	}

	var issues []error
	for _, invocation := range parsed {
		def, ok := s.registry.Get(invocation.Name)
		if !ok {
			issues = append(issues, fmt.Errorf("%w: %s (line %d)", ErrUnknownDirective, invocation.Name, invocation.Line))
			continue
		}
		if err := s.validator.ValidateInvocation(def, invocation); err != nil {
			issues = append(issues, fmt.Errorf("%s (line %d): %w", invocation.Name, invocation.Line, err))
		}
	}

	return parsed, issues, nil
}
