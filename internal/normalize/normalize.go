// Package normalize turns raw company names into canonical comparable
// strings and noise-filtered keyword lists.
package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/TFMV/reconcile/internal/config"
)

var (
	// Common patterns for standardization
	nonAlphaNumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpaces  = regexp.MustCompile(`\s+`)

	// "serie A", "serie "B"", "serie 2024" and similar issuance labels
	seriePattern = regexp.MustCompile(`\bserie\s*"?[a-z0-9]+"?\b`)
)

// Normalizer standardizes company names using configurable vocabularies
type Normalizer struct {
	suffixes   *regexp.Regexp
	stopwords  map[string]struct{}
	minKeyword int
}

// NewNormalizer creates a normalizer from the configured vocabularies
func NewNormalizer(cfg *config.Config) *Normalizer {
	minKeyword := cfg.Normalization.MinKeywordLength
	if minKeyword <= 0 {
		minKeyword = 3
	}

	stopwords := make(map[string]struct{}, len(cfg.Normalization.Stopwords))
	for _, word := range cfg.Normalization.Stopwords {
		stopwords[FoldAccents(strings.ToLower(word))] = struct{}{}
	}

	return &Normalizer{
		suffixes:   compileSuffixPattern(cfg.Normalization.LegalSuffixes, cfg.Normalization.SuffixPhrases),
		stopwords:  stopwords,
		minKeyword: minKeyword,
	}
}

// Normalize standardizes an input name for comparison
// 1. Lowercase, trim, fold accents
// 2. Remove legal-entity suffixes ("S.A.C.", "EIRL", "y filiales", ...)
// 3. Remove "serie X" issuance labels
// 4. Remove punctuation
// 5. Normalize whitespace
//
// Normalize is total (empty in, empty out) and idempotent: its output
// contains only lowercase alphanumerics and single spaces, and none of
// the removal passes can produce new removable text.
func (n *Normalizer) Normalize(input string) string {
	if input == "" {
		return ""
	}

	normalized := FoldAccents(strings.ToLower(strings.TrimSpace(input)))

	if n.suffixes != nil {
		normalized = n.suffixes.ReplaceAllString(normalized, " ")
	}
	normalized = seriePattern.ReplaceAllString(normalized, " ")
	normalized = nonAlphaNumeric.ReplaceAllString(normalized, " ")
	normalized = multipleSpaces.ReplaceAllString(normalized, " ")

	return strings.TrimSpace(normalized)
}

// Keywords extracts the identity-bearing tokens of a name: the canonical
// tokens minus stopwords and tokens shorter than the configured minimum.
// The result is deduplicated and preserves token order, so the first
// occurrence decides ties when picking the distinctive keyword.
func (n *Normalizer) Keywords(name string) []string {
	canonical := n.Normalize(name)
	if canonical == "" {
		return nil
	}

	var keywords []string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(canonical) {
		if utf8.RuneCountInString(token) < n.minKeyword {
			continue
		}
		if _, stop := n.stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	return keywords
}

// Distinctive returns the most identity-bearing keyword: the longest one,
// earliest occurrence winning ties. Empty input yields "".
func Distinctive(keywords []string) string {
	distinctive := ""
	for _, keyword := range keywords {
		if utf8.RuneCountInString(keyword) > utf8.RuneCountInString(distinctive) {
			distinctive = keyword
		}
	}
	return distinctive
}

// FoldAccents strips combining diacritical marks so "perú" and "peru"
// compare equal. Inputs that fail to transform are returned unchanged.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// compileSuffixPattern builds a single alternation matching the legal
// suffix vocabulary as whole words. Single tokens allow optional dots
// between letters so "sac" also matches "S.A.C." before punctuation is
// stripped; phrases match with flexible inner whitespace.
func compileSuffixPattern(tokens, phrases []string) *regexp.Regexp {
	var alternatives []string

	for _, phrase := range phrases {
		phrase = FoldAccents(strings.ToLower(strings.TrimSpace(phrase)))
		if phrase == "" {
			continue
		}
		words := strings.Fields(phrase)
		for i, word := range words {
			words[i] = regexp.QuoteMeta(word)
		}
		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}

	for _, token := range tokens {
		token = FoldAccents(strings.ToLower(strings.TrimSpace(token)))
		if token == "" {
			continue
		}
		var b strings.Builder
		for _, r := range token {
			b.WriteString(regexp.QuoteMeta(string(r)))
			b.WriteString(`\.?`)
		}
		alternatives = append(alternatives, b.String())
	}

	if len(alternatives) == 0 {
		return nil
	}

	// Longer alternatives first so "sac" is preferred over "sa"
	sort.Slice(alternatives, func(i, j int) bool {
		return len(alternatives[i]) > len(alternatives[j])
	})

	return regexp.MustCompile(`\b(?:` + strings.Join(alternatives, "|") + `)\b`)
}
