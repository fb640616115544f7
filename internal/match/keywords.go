package match

import (
	"unicode/utf8"

	"github.com/TFMV/reconcile/internal/normalize"
)

const (
	// Prefix lengths for partial keyword agreement
	partialPrefixLen     = 4
	distinctivePrefixLen = 5

	// Distinctive-word adjustments. The query's distinctive keyword is
	// the most identity-bearing token, so missing it outweighs any
	// amount of agreement on the remaining keywords.
	distinctiveExactBonus     = 30.0
	distinctivePartialBonus   = 15.0
	missingDistinctivePenalty = 0.6
)

// keywordScore computes the refined similarity between two keyword
// lists. It counts exact keyword agreement plus half-weight partial
// (shared 4-char prefix) agreement, scales by the larger keyword count,
// then adjusts for whether the query's distinctive keyword was found.
//
// The scorer is intentionally asymmetric: the query side picks the
// distinctive keyword that drives the bonus and penalty.
func keywordScore(query, reference []string) (score float64, distinctiveExact bool) {
	if len(query) == 0 || len(reference) == 0 {
		return 0, false
	}

	referenceSet := make(map[string]struct{}, len(reference))
	for _, keyword := range reference {
		referenceSet[keyword] = struct{}{}
	}

	exactCommon := make(map[string]struct{})
	for _, keyword := range query {
		if _, ok := referenceSet[keyword]; ok {
			exactCommon[keyword] = struct{}{}
		}
	}

	distinctive := normalize.Distinctive(query)
	_, distinctiveExact = exactCommon[distinctive]

	distinctivePartial := false
	if !distinctiveExact && utf8.RuneCountInString(distinctive) >= distinctivePrefixLen {
		for _, keyword := range reference {
			if utf8.RuneCountInString(keyword) >= distinctivePrefixLen &&
				prefix(keyword, distinctivePrefixLen) == prefix(distinctive, distinctivePrefixLen) {
				distinctivePartial = true
				break
			}
		}
	}

	// Partial agreement on the remaining keywords, half a point each,
	// first reference hit per query keyword only
	partialCommon := 0.0
	for _, q := range query {
		if _, ok := exactCommon[q]; ok {
			continue
		}
		if utf8.RuneCountInString(q) < partialPrefixLen {
			continue
		}
		for _, r := range reference {
			if _, ok := exactCommon[r]; ok {
				continue
			}
			if utf8.RuneCountInString(r) < partialPrefixLen {
				continue
			}
			if prefix(q, partialPrefixLen) == prefix(r, partialPrefixLen) {
				partialCommon += 0.5
				break
			}
		}
	}

	maxKeywords := len(query)
	if len(reference) > maxKeywords {
		maxKeywords = len(reference)
	}
	score = (float64(len(exactCommon)) + partialCommon) / float64(maxKeywords) * 100

	switch {
	case distinctiveExact:
		score = clamp100(score + distinctiveExactBonus)
	case distinctivePartial:
		score = clamp100(score + distinctivePartialBonus)
	default:
		score *= missingDistinctivePenalty
	}

	return score, distinctiveExact
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n])
}

func clamp100(f float64) float64 {
	if f > 100 {
		return 100
	}
	return f
}
