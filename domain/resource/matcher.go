package resource

import (
	"math"
	"sort"

	"hyperkb/domain/kb"
)

// sortedSlice returns uids in a fixed lexical order so partition
// functions built on it give the matcher a reproducible iteration
// order (spec §5: "tests must pin it").
func sortedSlice(uids kb.UIDSet) []kb.UID {
	out := uids.Slice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PartitionFunc selects a partition (left or right) of candidates from
// the graph. Left is typically consumers, right typically providers.
type PartitionFunc func(g *kb.Graph) []kb.UID

// MatchFunc scores a candidate (left, right) pair. A negative or
// non-finite score means infeasible.
type MatchFunc func(g *kb.Graph, left, right kb.UID) (float64, error)

// MutateFunc records a chosen (left, right) assignment and updates any
// residual state the next match evaluation depends on.
type MutateFunc func(g *kb.Graph, left, right kb.UID) error

// Assignment records one chosen pairing, or an unmapped left that no
// right yielded a finite score for.
type Assignment struct {
	Left   kb.UID
	Right  kb.UID
	Score  float64
	Mapped bool
}

// Match runs the generic bipartite matcher (spec §4.5): for each left
// candidate (in L(g)'s iteration order), scores it against every right
// candidate, picks the highest finite score (ties broken by R(g)'s
// iteration order), and applies mutate. Lefts with no finite score are
// reported unmapped rather than erroring. An error from match or
// mutate aborts the whole run (invariant violation, spec §5): no
// partial mutation is left in place beyond whatever mutate already
// committed before the error.
func Match(g *kb.Graph, left, right PartitionFunc, match MatchFunc, mutate MutateFunc) ([]Assignment, error) {
	lefts := left(g)
	rights := right(g)

	results := make([]Assignment, 0, len(lefts))
	for _, l := range lefts {
		bestScore := math.Inf(-1)
		bestRight := kb.UID("")
		found := false

		for _, r := range rights {
			score, err := match(g, l, r)
			if err != nil {
				return results, err
			}
			if score < 0 || math.IsInf(score, 1) || math.IsNaN(score) {
				continue
			}
			if !found || score > bestScore {
				bestScore = score
				bestRight = r
				found = true
			}
		}

		if !found {
			results = append(results, Assignment{Left: l, Mapped: false})
			continue
		}
		if err := mutate(g, l, bestRight); err != nil {
			return results, err
		}
		results = append(results, Assignment{Left: l, Right: bestRight, Score: bestScore, Mapped: true})
	}
	return results, nil
}

// DefaultPartitionLeft returns every consumer instance, sorted.
func DefaultPartitionLeft(g *kb.Graph) []kb.UID {
	return sortedSlice(New(g).Consumers(""))
}

// DefaultPartitionRight returns every provider instance, sorted.
func DefaultPartitionRight(g *kb.Graph) []kb.UID {
	return sortedSlice(New(g).Providers(""))
}

// DefaultMatch scores a (consumer, provider) pair purely by resource
// satisfiability, with no domain-specific compatibility predicate.
func DefaultMatch(g *kb.Graph, consumerUID, providerUID kb.UID) (float64, error) {
	n := New(g)
	score, err := n.Satisfies(kb.NewUIDSet(providerUID), kb.NewUIDSet(consumerUID))
	if err != nil {
		return 0, err
	}
	return score, nil
}

// DefaultMutate asserts mapped-to from consumer to provider; satisfies()
// always recomputes usage from consumes facts, so no resource label is
// rewritten here.
func DefaultMutate(g *kb.Graph, consumerUID, providerUID kb.UID) error {
	n := New(g)
	n.G.AssertFact(n.Vocab.MappedTo, kb.NewUIDSet(consumerUID), kb.NewUIDSet(providerUID))
	return nil
}
