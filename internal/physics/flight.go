package physics

import (
	"math"

	"github.com/san-kum/ballista/internal/engine"
	"github.com/san-kum/ballista/internal/vec"
)

// FlightDynamics is the ball's planar equation of motion after release.
// State layout is [x, y, vx, vy]; no control input.
//
// Forces per step:
//
//	gravity  (0, -g)
//	drag     -0.5 * rho * Cd * A * |v| * v
//	Magnus   pi * r^2 * rho * spin * perp(v)
//
// The Magnus coefficient pi*r^2*rho comes from ball radius and air density,
// and perp(v) = (-vy, vx) already carries the |v| factor, so the force needs
// no unit vector and has no singularity at rest. Positive spin is backspin:
// it lifts a ball moving in +x.
type FlightDynamics struct {
	Ball            Ball
	DragCoefficient float64
	SpinRate        float64
	AirDensity      float64
	Gravity         float64
}

func NewFlightDynamics(ball Ball) *FlightDynamics {
	return &FlightDynamics{
		Ball:            ball,
		DragCoefficient: DefaultDragCoefficient,
		AirDensity:      DefaultAirDensity,
		Gravity:         DefaultGravity,
	}
}

func (f *FlightDynamics) StateDim() int   { return 4 }
func (f *FlightDynamics) ControlDim() int { return 0 }

func (f *FlightDynamics) Derive(x engine.State, u engine.Control, t float64) engine.State {
	v := vec.Vec2{X: x[2], Y: x[3]}
	speed := v.Len()

	drag := v.Scale(-0.5 * f.AirDensity * f.DragCoefficient * f.Ball.CrossSection() * speed)
	lift := v.Perp().Scale(math.Pi * f.Ball.Radius * f.Ball.Radius * f.AirDensity * f.SpinRate)

	ax := (drag.X + lift.X) / f.Ball.Mass
	ay := (drag.Y+lift.Y)/f.Ball.Mass - f.Gravity

	return engine.State{v.X, v.Y, ax, ay}
}

// Energy is kinetic plus gravitational potential. Conserved only when drag
// and spin are zero.
func (f *FlightDynamics) Energy(x engine.State) float64 {
	v2 := x[2]*x[2] + x[3]*x[3]
	return 0.5*f.Ball.Mass*v2 + f.Ball.Mass*f.Gravity*x[1]
}
