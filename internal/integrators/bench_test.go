package integrators

import (
	"testing"

	"github.com/san-kum/ballista/internal/engine"
)

func BenchmarkSemiImplicitEuler(b *testing.B) {
	integrator := NewSemiImplicitEuler()
	dyn := &planarFall{g: 9.81}
	x := engine.State{0, 10, 3, 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, nil, 0, 0.001)
	}
}

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	dyn := &planarFall{g: 9.81}
	x := engine.State{0, 10, 3, 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, nil, 0, 0.001)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	dyn := &planarFall{g: 9.81}
	x := engine.State{0, 10, 3, 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(dyn, x, nil, 0, 0.001)
	}
}
