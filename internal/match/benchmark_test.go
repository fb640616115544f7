package match

import (
	"context"
	"strconv"
	"testing"

	"github.com/TFMV/reconcile/internal/config"
	"github.com/TFMV/reconcile/internal/normalize"
)

func benchmarkService(size int) *Service {
	entries := make([]ReferenceEntry, size)
	for i := range entries {
		entries[i] = ReferenceEntry{
			ClientName:  "Cliente Andino " + strconv.Itoa(i) + " S.A.C.",
			CountryCode: "PER",
			ClientID:    "C-" + strconv.Itoa(i),
		}
	}
	cfg := config.Default()
	pool := NewPool(entries, normalize.NewNormalizer(cfg))
	return NewService(cfg, pool, nil)
}

func BenchmarkMatch(b *testing.B) {
	s := benchmarkService(1000)
	record := Record{CompanyName: "Cliente Andino 500 SAC", Country: "Peru"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Match(record)
	}
}

func benchmarkBatch(b *testing.B, records int) {
	s := benchmarkService(1000)
	batch := make([]Record, records)
	for i := range batch {
		batch[i] = Record{
			CompanyName: "Cliente Andino " + strconv.Itoa(i) + " S.A.",
			Country:     "Peru",
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.MatchAll(context.Background(), batch); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatchAll100(b *testing.B)  { benchmarkBatch(b, 100) }
func BenchmarkMatchAll1000(b *testing.B) { benchmarkBatch(b, 1000) }
