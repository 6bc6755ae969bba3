package articles

import (
	"errors"
	"fmt"
)

var (
	ErrURLRequired    = errors.New("articles: front matter url is required")
	ErrURLExists      = errors.New("articles: url already exists")
	ErrRepoRequired   = errors.New("articles: repository is required")
	ErrCorpusRequired = errors.New("articles: corpus service is required")
)

// NotFoundError indicates a missing catalog record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
