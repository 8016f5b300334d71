package integrators

import "github.com/san-kum/ballista/internal/engine"

// SemiImplicitEuler advances the velocity half of the state from the current
// derivative first, then advances the position half using the updated
// velocities. State layout is [positions..., velocities...] with the
// derivative's second half holding accelerations.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (s *SemiImplicitEuler) Step(sys engine.System, x engine.State, u engine.Control, t float64, dt float64) engine.State {
	n := len(x)
	half := n / 2

	dx := sys.Derive(x, u, t)
	result := make(engine.State, n)

	for i := half; i < n; i++ {
		result[i] = x[i] + dx[i]*dt
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + result[half+i]*dt
	}

	return result
}
