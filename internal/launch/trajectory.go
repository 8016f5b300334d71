package launch

import (
	"math"

	"github.com/san-kum/ballista/internal/engine"
	"github.com/san-kum/ballista/internal/physics"
	"github.com/san-kum/ballista/internal/vec"
)

// TrajectorySample is one observed point of the ball's flight. Time counts
// from release. Samples arrive in strictly increasing time order and the
// sequence ends with the interpolated landing sample.
type TrajectorySample struct {
	Time     float64
	Position vec.Vec2
	Velocity vec.Vec2
}

// Phase tracks a trajectory through its lifecycle.
type Phase int

const (
	PhaseReleased Phase = iota
	PhaseStepping
	PhaseLanded
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseReleased:
		return "released"
	case PhaseStepping:
		return "stepping"
	case PhaseLanded:
		return "landed"
	case PhaseAborted:
		return "aborted"
	}
	return "unknown"
}

// Trajectory steps a released ball until it lands, one sample per Next
// call. It is the pull-mode face of the engine and the stepping function
// under Run and RunWithCallback. A fresh Trajectory from the same inputs
// reproduces the identical sequence; nothing global is touched.
type Trajectory struct {
	dyn   *physics.FlightDynamics
	integ engine.Integrator

	x  engine.State
	t  float64
	dt float64

	maxSteps int
	steps    int
	validate bool

	maxBounces  int
	restitution float64
	bounces     int

	phase   Phase
	cur     TrajectorySample
	landing TrajectorySample
	landed  bool
	err     error
}

// NewTrajectory validates the flight-relevant inputs and positions the
// iterator at the release instant. The release state may come from SpinUp
// or be built directly by a caller that only needs the flight half.
func NewTrajectory(rel ReleaseState, ball physics.Ball, p LaunchParameters, opts Options) (*Trajectory, error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := p.validateFlight(); err != nil {
		return nil, err
	}
	if err := validateBall(ball); err != nil {
		return nil, err
	}
	if err := validateRelease(rel); err != nil {
		return nil, err
	}

	dyn := &physics.FlightDynamics{
		Ball:            ball,
		DragCoefficient: p.DragCoefficient,
		SpinRate:        rel.Spin,
		AirDensity:      p.AirDensity,
		Gravity:         opts.Gravity,
	}

	return &Trajectory{
		dyn:         dyn,
		integ:       opts.Integrator,
		x:           engine.State{rel.Position.X, rel.Position.Y, rel.Velocity.X, rel.Velocity.Y},
		dt:          opts.Dt,
		maxSteps:    opts.MaxSteps,
		validate:    opts.ValidateState,
		maxBounces:  opts.MaxBounces,
		restitution: opts.Restitution,
		phase:       PhaseReleased,
	}, nil
}

func validateRelease(rel ReleaseState) error {
	for _, v := range []float64{rel.Position.X, rel.Position.Y, rel.Velocity.X, rel.Velocity.Y, rel.Spin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ConfigError{Field: "release", Value: v, Reason: "must be finite"}
		}
	}
	if rel.Position.Y < 0 {
		return &ConfigError{Field: "release.position.y", Value: rel.Position.Y, Reason: "release point below ground"}
	}
	return nil
}

// Next advances to the following sample. It returns false once the
// trajectory has landed or aborted; check Err afterwards.
func (tr *Trajectory) Next() bool {
	switch tr.phase {
	case PhaseLanded, PhaseAborted:
		return false

	case PhaseReleased:
		tr.phase = PhaseStepping
		tr.cur = tr.sampleAt(tr.x, 0)
		// A release at ground level without enough upward speed to clear
		// the first step lands where it starts.
		if tr.x[1] <= 0 && tr.x[3] <= tr.dyn.Gravity*tr.dt {
			tr.landing = tr.cur
			tr.landed = true
			tr.phase = PhaseLanded
		}
		return true
	}

	if tr.steps >= tr.maxSteps {
		tr.abort("ball did not land")
		return false
	}

	prev := tr.x
	next := tr.integ.Step(tr.dyn, tr.x, nil, tr.t, tr.dt)
	tr.steps++

	if tr.validate && !next.IsValid() {
		tr.abort("non-finite state")
		return false
	}

	if prev[1] > 0 && next[1] <= 0 {
		return tr.touchdown(prev, next)
	}
	if prev[1] <= 0 && next[1] <= 0 {
		// Grounded and unable to climb out within a step; the run ends at
		// the last emitted ground sample.
		if !tr.landed {
			tr.landing = tr.cur
			tr.landed = true
		}
		tr.phase = PhaseLanded
		return false
	}

	tr.x = next
	tr.t += tr.dt
	tr.cur = tr.sampleAt(next, tr.t)
	return true
}

// touchdown interpolates the exact ground contact between the last two
// states and either ends the run there or reflects into a bounce.
func (tr *Trajectory) touchdown(prev, next engine.State) bool {
	f := prev[1] / (prev[1] - next[1])
	tc := tr.t + f*tr.dt

	pos := vec.Lerp(vec.New(prev[0], prev[1]), vec.New(next[0], next[1]), f)
	pos.Y = 0 // f puts the contact on the ground; pin it there exactly
	contact := TrajectorySample{
		Time:     tc,
		Position: pos,
		Velocity: vec.Lerp(vec.New(prev[2], prev[3]), vec.New(next[2], next[3]), f),
	}
	tr.cur = contact

	if !tr.landed {
		tr.landing = contact
		tr.landed = true
	}

	// Reflect only while a bounce remains and the rebound is tall enough
	// to clear one integration step.
	rebound := -tr.restitution * contact.Velocity.Y
	if tr.bounces < tr.maxBounces && rebound > tr.dyn.Gravity*tr.dt {
		tr.bounces++
		tr.x = engine.State{contact.Position.X, 0, tr.restitution * contact.Velocity.X, rebound}
		tr.t = tc
		return true
	}

	tr.phase = PhaseLanded
	return true
}

func (tr *Trajectory) abort(reason string) {
	tr.phase = PhaseAborted
	tr.err = &NonConvergentError{Steps: tr.steps, Time: tr.t, Reason: reason}
}

func (tr *Trajectory) sampleAt(x engine.State, t float64) TrajectorySample {
	return TrajectorySample{
		Time:     t,
		Position: vec.Vec2{X: x[0], Y: x[1]},
		Velocity: vec.Vec2{X: x[2], Y: x[3]},
	}
}

// Sample returns the sample produced by the latest successful Next call.
func (tr *Trajectory) Sample() TrajectorySample {
	return tr.cur
}

// Landing reports the authoritative landing sample: the interpolated first
// ground contact. The boolean is false until the ball has touched down.
func (tr *Trajectory) Landing() (TrajectorySample, bool) {
	return tr.landing, tr.landed
}

func (tr *Trajectory) Phase() Phase {
	return tr.phase
}

func (tr *Trajectory) Steps() int {
	return tr.steps
}

// Err reports why the trajectory aborted; nil after a clean landing.
func (tr *Trajectory) Err() error {
	return tr.err
}
