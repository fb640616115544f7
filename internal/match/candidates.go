package match

import (
	"sort"

	"github.com/TFMV/reconcile/internal/similarity"
)

// Candidate pairs a normalized reference name with its cheap score on
// the 0-100 scale used throughout the engine
type Candidate struct {
	Name  string
	Score float64
}

// topCandidates shortlists the pool by cheap similarity: every candidate
// is scored, sorted descending, and cut to the limit. Ties keep pool
// iteration order. An empty pool yields nil, which callers must treat as
// a no-data condition.
func topCandidates(query string, pool []string, scorer similarity.Function, limit int) []Candidate {
	if len(pool) == 0 {
		return nil
	}

	candidates := make([]Candidate, len(pool))
	for i, name := range pool {
		candidates[i] = Candidate{Name: name, Score: scorer.Compare(query, name) * 100}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
