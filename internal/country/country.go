// Package country maps free-text country labels to the canonical codes
// used to partition the reference pool.
package country

import (
	"strings"

	"github.com/TFMV/reconcile/internal/config"
	"github.com/TFMV/reconcile/internal/normalize"
)

// Mapper resolves country labels case- and accent-insensitively
type Mapper struct {
	codes map[string]string
}

// NewMapper creates a mapper from the configured label-to-code table
func NewMapper(cfg *config.Config) *Mapper {
	codes := make(map[string]string, len(cfg.Countries))
	for label, code := range cfg.Countries {
		key := normalize.FoldAccents(strings.ToLower(strings.TrimSpace(label)))
		codes[key] = strings.ToUpper(strings.TrimSpace(code))
	}
	return &Mapper{codes: codes}
}

// Code returns the canonical code for a label. Unmapped labels pass
// through trimmed but otherwise unchanged, so downstream partitioning
// degrades to an exact-label partition instead of failing.
func (m *Mapper) Code(label string) string {
	trimmed := strings.TrimSpace(label)
	key := normalize.FoldAccents(strings.ToLower(trimmed))
	if code, ok := m.codes[key]; ok {
		return code
	}
	return trimmed
}
