package serializer

import (
	"strings"

	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"schema-serializer/validators"
)

// Report holds the validation failures of one input, keyed by member name
// in schema order. A member entry holds either failures or a nested report.
// Members without failures are absent.
type Report struct {
	entries *orderedmap.OrderedMap[string, reportEntry]
}

type reportEntry struct {
	failures []validators.Failure
	nested   *Report
}

func newReport() *Report {
	return &Report{entries: orderedmap.New[string, reportEntry]()}
}

func (r *Report) setFailures(name string, failures []validators.Failure) {
	if len(failures) > 0 {
		r.entries.Set(name, reportEntry{failures: failures})
	}
}

func (r *Report) setNested(name string, nested *Report) {
	if !nested.IsEmpty() {
		r.entries.Set(name, reportEntry{nested: nested})
	}
}

// IsEmpty reports whether no member failed.
func (r *Report) IsEmpty() bool {
	return r == nil || r.entries.Len() == 0
}

// Len returns the number of failing members.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}

	return r.entries.Len()
}

// Names returns the failing member names in schema order. Under many the
// names are element indexes.
func (r *Report) Names() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Failures returns the failures of a leaf member.
func (r *Report) Failures(name string) []validators.Failure {
	if r == nil {
		return nil
	}

	e, _ := r.entries.Get(name)

	return e.failures
}

// Nested returns the report of a nested member or list element.
func (r *Report) Nested(name string) *Report {
	if r == nil {
		return nil
	}

	e, _ := r.entries.Get(name)

	return e.nested
}

// Get implements primitive.Getter, so a report resolves like a mapping.
func (r *Report) Get(name string) (any, bool) {
	if r == nil {
		return nil, false
	}

	e, ok := r.entries.Get(name)
	if !ok {
		return nil, false
	}

	if e.nested != nil {
		return e.nested, true
	}

	return e.failures, true
}

// Count returns the number of failures, nested ones included.
func (r *Report) Count() int {
	n := 0
	r.walk("", func(_ string, f []validators.Failure) { n += len(f) })

	return n
}

// Flatten returns the failures keyed by dotted path.
func (r *Report) Flatten() map[string][]validators.Failure {
	out := map[string][]validators.Failure{}
	r.walk("", func(path string, f []validators.Failure) { out[path] = f })

	return out
}

func (r *Report) walk(prefix string, fn func(path string, failures []validators.Failure)) {
	if r == nil {
		return
	}

	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key
		if prefix != "" {
			path = prefix + "." + pair.Key
		}

		if pair.Value.nested != nil {
			pair.Value.nested.walk(path, fn)
			continue
		}

		fn(path, pair.Value.failures)
	}
}

// Err returns nil for an empty report, else one error marked with
// ErrInvalid listing every failure by dotted path.
func (r *Report) Err() error {
	if r.IsEmpty() {
		return nil
	}

	var lines []string

	r.walk("", func(path string, failures []validators.Failure) {
		for _, f := range failures {
			lines = append(lines, path+": "+f.Message)
		}
	})

	return errors.Mark(errors.New(strings.Join(lines, "; ")), ErrInvalid)
}

// Map returns the report as plain nested maps.
func (r *Report) Map() map[string]any {
	out := map[string]any{}
	if r == nil {
		return out
	}

	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.nested != nil {
			out[pair.Key] = pair.Value.nested.Map()
			continue
		}

		out[pair.Key] = pair.Value.failures
	}

	return out
}

// MarshalJSON encodes the report as an object in schema order.
func (r *Report) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, any]()

	if r != nil {
		for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value.nested != nil {
				om.Set(pair.Key, pair.Value.nested)
				continue
			}

			om.Set(pair.Key, pair.Value.failures)
		}
	}

	return om.MarshalJSON()
}

func (r *Report) String() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}

	return "no errors"
}
