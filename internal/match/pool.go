package match

import (
	"strings"

	"github.com/TFMV/reconcile/internal/normalize"
)

// ReferenceEntry is one row of the customer reference database
type ReferenceEntry struct {
	ClientName  string `json:"client_name"`
	CountryCode string `json:"country_code"`
	ClientID    string `json:"client_id"`
}

type poolEntry struct {
	ref        ReferenceEntry
	normalized string
}

// Pool is the read-only reference pool the engine matches against.
// It is built once before matching begins and never mutated afterwards:
// entries are normalized up front, deduplicated candidate lists are
// precomputed globally and per country, and every normalized name maps
// back to the first reference row that produced it.
type Pool struct {
	normalizer *normalize.Normalizer

	entries   []poolEntry
	flat      []string
	byCountry map[string][]string

	flatIndex    map[string]int
	countryIndex map[string]map[string]int
}

// NewPool normalizes the reference entries and indexes them for
// candidate generation. Entries whose name normalizes to the empty
// string are excluded from the pool entirely.
func NewPool(entries []ReferenceEntry, normalizer *normalize.Normalizer) *Pool {
	p := &Pool{
		normalizer:   normalizer,
		byCountry:    make(map[string][]string),
		flatIndex:    make(map[string]int),
		countryIndex: make(map[string]map[string]int),
	}

	countrySeen := make(map[string]map[string]struct{})

	for _, entry := range entries {
		normalized := normalizer.Normalize(entry.ClientName)
		if normalized == "" {
			continue
		}
		entry.CountryCode = strings.TrimSpace(entry.CountryCode)

		index := len(p.entries)
		p.entries = append(p.entries, poolEntry{ref: entry, normalized: normalized})

		if _, ok := p.flatIndex[normalized]; !ok {
			p.flatIndex[normalized] = index
			p.flat = append(p.flat, normalized)
		}

		seen, ok := countrySeen[entry.CountryCode]
		if !ok {
			seen = make(map[string]struct{})
			countrySeen[entry.CountryCode] = seen
			p.countryIndex[entry.CountryCode] = make(map[string]int)
		}
		if _, ok := seen[normalized]; !ok {
			seen[normalized] = struct{}{}
			p.byCountry[entry.CountryCode] = append(p.byCountry[entry.CountryCode], normalized)
			p.countryIndex[entry.CountryCode][normalized] = index
		}
	}

	return p
}

// Candidates returns the deduplicated normalized names for a country
// code, or the flat pool when the code is empty. The returned slice is
// shared and must not be modified.
func (p *Pool) Candidates(countryCode string) []string {
	if countryCode == "" {
		return p.flat
	}
	return p.byCountry[countryCode]
}

// Resolve maps a winning normalized name back to its reference entry,
// scoped to a country code when one is given. The first reference row
// that produced the normalized name wins, mirroring candidate order.
func (p *Pool) Resolve(countryCode, normalized string) (ReferenceEntry, bool) {
	if countryCode == "" {
		if i, ok := p.flatIndex[normalized]; ok {
			return p.entries[i].ref, true
		}
		return ReferenceEntry{}, false
	}
	if index, ok := p.countryIndex[countryCode]; ok {
		if i, ok := index[normalized]; ok {
			return p.entries[i].ref, true
		}
	}
	return ReferenceEntry{}, false
}

// Len returns the number of usable reference entries in the pool
func (p *Pool) Len() int {
	return len(p.entries)
}
