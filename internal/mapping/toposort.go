package mapping

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ErrCycle is returned when schemas refer to each other in a loop.
var ErrCycle = errors.New("cycle detected")

// BuildOrder returns schema indices so that every schema comes after the
// schemas it extends or nests. References to unknown schemas are ignored.
func (sf *SchemaFile) BuildOrder() ([]int, error) {
	index := make(map[string]int, len(sf.Schemas))
	for i := range sf.Schemas {
		if _, dup := index[sf.Schemas[i].Name]; !dup {
			index[sf.Schemas[i].Name] = i
		}
	}

	order, err := topoSort(len(sf.Schemas), func(i int) []int {
		var deps []int

		for _, name := range lo.Uniq(sf.Schemas[i].Dependencies()) {
			if j, ok := index[name]; ok {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		left := lo.Without(lo.Range(len(sf.Schemas)), order...)
		names := lo.Map(left, func(i int, _ int) string { return sf.Schemas[i].Name })

		return nil, errors.Wrapf(err, "schemas %v", names)
	}

	return order, nil
}

// topoSort returns indices in build order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must be built before i.
//
// The result is deterministic: when multiple nodes are available, we pick the
// smallest index. If a cycle exists, ErrCycle is returned with the partial
// order.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps := depsFn(i)
		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, errors.Newf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	// Deterministic traversal.
	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, ErrCycle
	}

	return order, nil
}
