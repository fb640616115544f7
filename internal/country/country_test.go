package country

import (
	"testing"

	"github.com/TFMV/reconcile/internal/config"
)

func TestCode(t *testing.T) {
	m := NewMapper(config.Default())

	tests := []struct {
		label string
		want  string
	}{
		{"peru", "PER"},
		{"Peru", "PER"},
		{"PERÚ", "PER"},
		{"  perú  ", "PER"},
		{"Chile", "CHI"},
		{"colombia", "COL"},
		{"Bolivia", "BOL"},
		// Unmapped labels pass through trimmed
		{"Argentina", "Argentina"},
		{"  Ecuador ", "Ecuador"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := m.Code(tt.label); got != tt.want {
			t.Errorf("Code(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestCodeCustomMapping(t *testing.T) {
	cfg := config.Default()
	cfg.Countries = map[string]string{
		"República Dominicana": "dom",
	}
	m := NewMapper(cfg)

	if got := m.Code("republica dominicana"); got != "DOM" {
		t.Errorf("Code(%q) = %q, want %q", "republica dominicana", got, "DOM")
	}
}
