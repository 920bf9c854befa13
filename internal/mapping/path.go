package mapping

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// SourcePath is a parsed dotted source path like "author.profile.name".
type SourcePath struct {
	Segments []string
}

// String returns the path as a string.
func (p SourcePath) String() string {
	return strings.Join(p.Segments, ".")
}

// Root returns the first segment.
func (p SourcePath) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0]
}

// IsSimple returns true for a single segment path.
func (p SourcePath) IsSimple() bool {
	return len(p.Segments) == 1
}

// ParsePath parses a dotted source path. Segments are attribute names or
// mapping keys and may not be empty or contain spaces.
func ParsePath(path string) (SourcePath, error) {
	if path == "" {
		return SourcePath{}, errors.New("empty path")
	}

	segments := strings.Split(path, ".")

	for _, seg := range segments {
		if seg == "" {
			return SourcePath{}, errors.Newf("invalid path %q: empty segment", path)
		}

		if !isValidSegment(seg) {
			return SourcePath{}, errors.Newf("invalid path %q: invalid segment %q", path, seg)
		}
	}

	return SourcePath{Segments: segments}, nil
}

// isValidSegment accepts letters, digits, underscores and dashes.
func isValidSegment(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}

	return true
}
