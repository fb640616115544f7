package similarity

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// Function represents a similarity function interface
type Function interface {
	// Compare returns a similarity score between 0.0 and 1.0,
	// where 0.0 means completely different and 1.0 means identical
	Compare(a, b string) float64
	// Name returns the name of the similarity function
	Name() string
}

// ExactMatch checks if two strings are exactly equal
type ExactMatch struct{}

func (f ExactMatch) Compare(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return 0.0
}

func (f ExactMatch) Name() string {
	return "ExactMatch"
}

// Levenshtein calculates similarity using edit distance
// Good for general string comparison where character-level edits matter
type Levenshtein struct{}

func (f Levenshtein) Compare(a, b string) float64 {
	return ratio(a, b)
}

func (f Levenshtein) Name() string {
	return "Levenshtein"
}

// JaroWinkler implements the Jaro-Winkler similarity algorithm
// Good for short strings where shared prefixes carry most of the signal
type JaroWinkler struct {
	// Boost threshold above which the prefix bonus applies, default 0.7
	BoostThreshold float64
	// Prefix length to consider, default 4
	PrefixLength int
}

func NewJaroWinkler() JaroWinkler {
	return JaroWinkler{
		BoostThreshold: 0.7,
		PrefixLength:   4,
	}
}

func (f JaroWinkler) Compare(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return smetrics.JaroWinkler(a, b, f.BoostThreshold, f.PrefixLength)
}

func (f JaroWinkler) Name() string {
	return "JaroWinkler"
}

// TokenSort compares the space-joined sorted token lists of both inputs,
// making the score insensitive to word order
type TokenSort struct{}

func (f TokenSort) Compare(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return ratio(sortedJoin(tokenize(a)), sortedJoin(tokenize(b)))
}

func (f TokenSort) Name() string {
	return "TokenSort"
}

// TokenSet splits both inputs into token sets and scores the best of
// intersection-vs-remainder comparisons. A name whose tokens are a
// subset of the other's scores 1.0, which makes it forgiving of extra
// words on either side.
type TokenSet struct{}

func (f TokenSet) Compare(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	setA := toSet(tokenize(a))
	setB := toSet(tokenize(b))

	var intersection, onlyA, onlyB []string
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection = append(intersection, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if _, ok := setA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}

	sort.Strings(intersection)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(intersection, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(base, combinedA)
	if s := ratio(base, combinedB); s > best {
		best = s
	}
	if s := ratio(combinedA, combinedB); s > best {
		best = s
	}
	return best
}

func (f TokenSet) Name() string {
	return "TokenSet"
}

// ratio converts Levenshtein distance into a [0,1] similarity score
func ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	maxLen := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > maxLen {
		maxLen = l
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

func sortedJoin(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

// Helper function to tokenize a string into words
func tokenize(s string) []string {
	var tokens []string
	inToken := false
	start := 0

	// Process each rune in the string
	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if !inToken {
				inToken = true
				start = i
			}
		} else {
			if inToken {
				inToken = false
				tokens = append(tokens, strings.ToLower(s[start:i]))
			}
		}
	}

	// Handle the last token if it ends at the end of the string
	if inToken {
		tokens = append(tokens, strings.ToLower(s[start:]))
	}

	return tokens
}
