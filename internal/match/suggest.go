package match

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// SuggestScore is the lowest score offered as a hint.
const SuggestScore = 0.5

const (
	spellingWeight = 0.7
	tokenWeight    = 0.3
)

// Candidate is a declared name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every name against target, best first. Equal scores are
// ordered by name.
func Rank(target string, names []string) []Candidate {
	norm := NormalizeIdent(target)
	tokens := TokenizeIdent(target)

	out := lo.Map(names, func(name string, _ int) Candidate {
		return Candidate{
			Name: name,
			Score: spellingWeight*Similarity(NormalizeIdent(name), norm) +
				tokenWeight*tokenOverlap(TokenizeIdent(name), tokens),
		}
	})

	slices.SortFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns at most n declared names close enough to target to be
// offered as a "did you mean" hint.
func Suggest(target string, names []string, n int) []string {
	var out []string

	for _, c := range Rank(target, names) {
		if len(out) == n || c.Score < SuggestScore {
			break
		}

		out = append(out, c.Name)
	}

	return out
}

// tokenOverlap is the Jaccard index of the two token sets.
func tokenOverlap(a, b []string) float64 {
	union := lo.Uniq(slices.Concat(a, b))
	if len(union) == 0 {
		return 1
	}

	common := lo.CountBy(lo.Uniq(a), func(t string) bool { return slices.Contains(b, t) })

	return float64(common) / float64(len(union))
}
