package resolve

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrAttribute matches every attribute resolution failure.
var ErrAttribute = errors.New("attribute resolution failed")

// AttributeResolutionError reports a path segment that could not be read.
type AttributeResolutionError struct {
	// Path is the full dotted path being resolved.
	Path string
	// Segment is the segment that failed.
	Segment string
	// Type is the type of the value the segment was looked up on.
	Type string
}

func (e *AttributeResolutionError) Error() string {
	if e.Path == e.Segment {
		return fmt.Sprintf("%s has no attribute %q", e.Type, e.Segment)
	}

	return fmt.Sprintf("%s has no attribute %q (path %q)", e.Type, e.Segment, e.Path)
}

// Is reports whether target is ErrAttribute.
func (e *AttributeResolutionError) Is(target error) bool {
	return target == ErrAttribute
}
