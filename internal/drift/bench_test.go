package drift

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkStep(b *testing.B) {
	src := rand.NewPCG(1, 1)
	p := 0.5

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = step(p, 100, src)
		if p == 0 || p == 1 {
			p = 0.5
		}
	}
}

func BenchmarkSimulate(b *testing.B) {
	src := rand.NewPCG(1, 1)
	params := Params{InitialFrequency: 0.5, PopulationSize: 1000, Generations: 1000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(params, src); err != nil {
			b.Fatal(err)
		}
	}
}
