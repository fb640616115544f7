package match

import (
	"reflect"
	"testing"

	"github.com/TFMV/reconcile/internal/config"
	"github.com/TFMV/reconcile/internal/normalize"
)

func newTestPool(entries []ReferenceEntry) *Pool {
	return NewPool(entries, normalize.NewNormalizer(config.Default()))
}

func TestNewPoolSkipsUnusableEntries(t *testing.T) {
	pool := newTestPool([]ReferenceEntry{
		{ClientName: "ACME S.A.C.", CountryCode: "PER", ClientID: "C-001"},
		{ClientName: "S.A.C.", CountryCode: "PER", ClientID: "C-002"},
		{ClientName: "", CountryCode: "PER", ClientID: "C-003"},
		{ClientName: "Banco Sur", CountryCode: "PER", ClientID: "C-004"},
	})

	if got := pool.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := pool.Candidates("PER"); !reflect.DeepEqual(got, []string{"acme", "banco sur"}) {
		t.Errorf("Candidates(PER) = %v, want [acme banco sur]", got)
	}
}

func TestPoolCandidatesByCountry(t *testing.T) {
	pool := newTestPool([]ReferenceEntry{
		{ClientName: "ACME S.A.", CountryCode: "PER", ClientID: "C-001"},
		{ClientName: "Banco Sur", CountryCode: "PER", ClientID: "C-002"},
		{ClientName: "Cordillera Ltd.", CountryCode: "CHI", ClientID: "C-003"},
	})

	if got := pool.Candidates("PER"); !reflect.DeepEqual(got, []string{"acme", "banco sur"}) {
		t.Errorf("Candidates(PER) = %v", got)
	}
	if got := pool.Candidates("CHI"); !reflect.DeepEqual(got, []string{"cordillera"}) {
		t.Errorf("Candidates(CHI) = %v", got)
	}
	if got := pool.Candidates("BOL"); got != nil {
		t.Errorf("Candidates(BOL) = %v, want nil", got)
	}
	// Empty code yields the flat pool across countries
	if got := pool.Candidates(""); !reflect.DeepEqual(got, []string{"acme", "banco sur", "cordillera"}) {
		t.Errorf("Candidates(\"\") = %v", got)
	}
}

func TestPoolDeduplicatesNormalizedNames(t *testing.T) {
	pool := newTestPool([]ReferenceEntry{
		{ClientName: "ACME S.A.", CountryCode: "PER", ClientID: "C-001"},
		{ClientName: "Acme SAC", CountryCode: "PER", ClientID: "C-999"},
	})

	if got := pool.Candidates("PER"); !reflect.DeepEqual(got, []string{"acme"}) {
		t.Errorf("Candidates(PER) = %v, want [acme]", got)
	}

	// The first row that produced the normalized name wins resolution
	ref, ok := pool.Resolve("PER", "acme")
	if !ok {
		t.Fatal("Resolve(PER, acme) not found")
	}
	if ref.ClientID != "C-001" {
		t.Errorf("Resolve(PER, acme).ClientID = %q, want C-001", ref.ClientID)
	}
}

func TestPoolResolve(t *testing.T) {
	pool := newTestPool([]ReferenceEntry{
		{ClientName: "ACME S.A.", CountryCode: "PER", ClientID: "C-001"},
		{ClientName: "Cordillera Ltd.", CountryCode: "CHI", ClientID: "C-003"},
	})

	if _, ok := pool.Resolve("CHI", "acme"); ok {
		t.Error("Resolve(CHI, acme) should not cross country scopes")
	}
	if _, ok := pool.Resolve("PER", "missing"); ok {
		t.Error("Resolve(PER, missing) should not be found")
	}

	// Flat resolution ignores country scoping
	ref, ok := pool.Resolve("", "cordillera")
	if !ok {
		t.Fatal("Resolve(\"\", cordillera) not found")
	}
	if ref.ClientID != "C-003" {
		t.Errorf("Resolve(\"\", cordillera).ClientID = %q, want C-003", ref.ClientID)
	}
}
