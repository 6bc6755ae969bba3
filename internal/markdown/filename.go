package markdown

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

// ErrFileNameConvention indicates a file that does not follow the
// YYYY-MM-DD-slug.md naming convention.
var ErrFileNameConvention = errors.New("markdown: file name does not match YYYY-MM-DD-slug.md")

var fileNamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)\.md$`)

// FileNameInfo carries the date and slug embedded in a conventional file name.
type FileNameInfo struct {
	Date time.Time
	Slug string
}

// ParseFileName extracts the publication date and slug from a file path whose
// base follows the YYYY-MM-DD-slug.md convention.
func ParseFileName(filePath string) (FileNameInfo, error) {
	base := path.Base(strings.ReplaceAll(filePath, "\\", "/"))

	matches := fileNamePattern.FindStringSubmatch(base)
	if matches == nil {
		return FileNameInfo{}, fmt.Errorf("%w: %s", ErrFileNameConvention, base)
	}

	date, err := time.Parse("2006-01-02", matches[1])
	if err != nil {
		return FileNameInfo{}, fmt.Errorf("%w: %s", ErrFileNameConvention, base)
	}

	return FileNameInfo{Date: date, Slug: matches[2]}, nil
}
