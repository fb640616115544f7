package match

import (
	"math"
	"testing"
)

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name      string
		query     []string
		reference []string
		wantScore float64
		wantExact bool
	}{
		{
			name:      "identical single keyword",
			query:     []string{"acme"},
			reference: []string{"acme"},
			// full agreement plus the distinctive bonus, clamped
			wantScore: 100,
			wantExact: true,
		},
		{
			name:      "distinctive exact among partial agreement",
			query:     []string{"sur", "andina"},
			reference: []string{"andina"},
			// one exact of two keywords (50) plus the exact bonus (30)
			wantScore: 80,
			wantExact: true,
		},
		{
			name:      "distinctive partial via shared prefix",
			query:     []string{"montana"},
			reference: []string{"montanara"},
			// half a point partial of one keyword (50) plus the partial bonus (15)
			wantScore: 65,
			wantExact: false,
		},
		{
			name:      "distinctive missing applies penalty",
			query:     []string{"andes", "acme"},
			reference: []string{"acme"},
			// one exact of two keywords (50) scaled by the missing penalty
			wantScore: 30,
			wantExact: false,
		},
		{
			name:      "no overlap",
			query:     []string{"zzz"},
			reference: []string{"qqq"},
			wantScore: 0,
			wantExact: false,
		},
		{
			name:      "empty query",
			query:     nil,
			reference: []string{"acme"},
			wantScore: 0,
			wantExact: false,
		},
		{
			name:      "empty reference",
			query:     []string{"acme"},
			reference: nil,
			wantScore: 0,
			wantExact: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, exact := keywordScore(tt.query, tt.reference)
			if math.Abs(score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if exact != tt.wantExact {
				t.Errorf("distinctiveExact = %v, want %v", exact, tt.wantExact)
			}
		})
	}
}

func TestKeywordScoreScalesByLargerList(t *testing.T) {
	// The same agreement counts for less against a longer reference list
	narrow, _ := keywordScore([]string{"cuzco"}, []string{"cuzco"})
	wide, _ := keywordScore([]string{"cuzco"}, []string{"cuzco", "norte", "oriente"})
	if wide >= narrow {
		t.Errorf("wide reference score %v should be below narrow reference score %v", wide, narrow)
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"montana", 4, "mont"},
		{"abc", 4, "abc"},
		{"", 4, ""},
		// rune-safe, not byte-safe
		{"ñandúes", 5, "ñandú"},
	}

	for _, tt := range tests {
		if got := prefix(tt.s, tt.n); got != tt.want {
			t.Errorf("prefix(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
