package similarity

import (
	"strings"
)

// Registry provides centralized access to the supported cheap scorers
type Registry struct {
	tokenSet    Function
	tokenSort   Function
	levenshtein Function
	jaroWinkler Function
	exactMatch  Function
}

// NewRegistry creates a new registry with all supported similarity functions
func NewRegistry() *Registry {
	return &Registry{
		tokenSet:    &TokenSet{},
		tokenSort:   &TokenSort{},
		levenshtein: &Levenshtein{},
		jaroWinkler: NewJaroWinkler(),
		exactMatch:  &ExactMatch{},
	}
}

// GetByName returns a similarity function by name, defaulting to the
// token-set scorer for unknown names
func (r *Registry) GetByName(name string) Function {
	name = strings.ToLower(name)
	switch name {
	case "token_set", "tokenset":
		return r.tokenSet
	case "token_sort", "tokensort":
		return r.tokenSort
	case "levenshtein", "editdistance":
		return r.levenshtein
	case "jaro", "jaro_winkler", "jarowinkler":
		return r.jaroWinkler
	case "exact", "exactmatch":
		return r.exactMatch
	default:
		return r.tokenSet
	}
}

// TokenSet returns the token-set ratio function
func (r *Registry) TokenSet() Function {
	return r.tokenSet
}

// TokenSort returns the token-sort ratio function
func (r *Registry) TokenSort() Function {
	return r.tokenSort
}

// Levenshtein returns the Levenshtein similarity function
func (r *Registry) Levenshtein() Function {
	return r.levenshtein
}

// JaroWinkler returns the Jaro-Winkler similarity function
func (r *Registry) JaroWinkler() Function {
	return r.jaroWinkler
}

// ExactMatch returns the exact match function
func (r *Registry) ExactMatch() Function {
	return r.exactMatch
}
