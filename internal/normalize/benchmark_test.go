package normalize

import (
	"strconv"
	"testing"

	"github.com/TFMV/reconcile/internal/config"
)

func BenchmarkNormalize(b *testing.B) {
	n := NewNormalizer(config.Default())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Normalize("Minera Cerro Verde " + strconv.Itoa(i) + " S.A.A.")
	}
}

func BenchmarkKeywords(b *testing.B) {
	n := NewNormalizer(config.Default())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Keywords("Compañía de Servicios Eléctricos del Perú " + strconv.Itoa(i) + " S.A.C.")
	}
}
