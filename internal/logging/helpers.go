package logging

import "github.com/reflectoring/blogkit/pkg/interfaces"

// WithFields returns a logger carrying the given structured fields. Loggers
// without the FieldsLogger extension are returned unchanged, as is any logger
// when fields is empty. The map is copied so callers can keep mutating theirs.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	enriched, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return enriched.WithFields(copied)
}
