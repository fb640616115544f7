package match

import (
	"reflect"
	"testing"

	"github.com/TFMV/reconcile/internal/similarity"
)

func TestTopCandidates(t *testing.T) {
	scorer := similarity.TokenSet{}
	pool := []string{"banco sur", "acme", "acme holdings"}

	got := topCandidates("acme", pool, scorer, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "acme" || got[0].Score != 100 {
		t.Errorf("top candidate = %+v, want acme at 100", got[0])
	}
	if got[1].Name != "acme holdings" {
		t.Errorf("second candidate = %+v, want acme holdings", got[1])
	}
}

func TestTopCandidatesEmptyPool(t *testing.T) {
	if got := topCandidates("acme", nil, similarity.TokenSet{}, 30); got != nil {
		t.Errorf("topCandidates on empty pool = %v, want nil", got)
	}
}

func TestTopCandidatesLimit(t *testing.T) {
	pool := []string{"aaa", "bbb", "ccc", "ddd"}

	if got := topCandidates("aaa", pool, similarity.TokenSet{}, 3); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
	// A non-positive limit keeps the whole pool
	if got := topCandidates("aaa", pool, similarity.TokenSet{}, 0); len(got) != len(pool) {
		t.Errorf("len = %d, want %d", len(got), len(pool))
	}
}

func TestTopCandidatesStableTies(t *testing.T) {
	// A constant scorer makes every candidate tie; the shortlist must
	// keep pool iteration order.
	pool := []string{"ccc", "aaa", "bbb"}

	got := topCandidates("query", pool, similarity.ExactMatch{}, 30)
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	if !reflect.DeepEqual(names, pool) {
		t.Errorf("tied candidates reordered: %v, want %v", names, pool)
	}
}
