package launch

import (
	"math"

	"github.com/san-kum/ballista/internal/engine"
	"github.com/san-kum/ballista/internal/physics"
)

// Result is the materialized outcome of one run.
type Result struct {
	Params  LaunchParameters
	Release ReleaseState

	// Samples runs from the release sample through the landing sample
	// inclusive. On a NonConvergent abort it holds everything produced
	// before the step bound hit.
	Samples []TrajectorySample

	// Landing is the interpolated first ground contact, valid when Landed
	// is true.
	Landing TrajectorySample
	Landed  bool

	Phase Phase
	Steps int

	// EnergyDrift is |E_end - E_release| / |E_release|. An integration
	// quality signal for drag-free, spin-free flight; dissipative runs
	// legitimately drift.
	EnergyDrift float64

	Metrics map[string]float64
}

// Run is the engine's primary entry point: spin-up, flight, landing. On
// InvalidConfiguration the Result is nil; on NonConvergent the partial
// Result accompanies the error so the caller may still render the attempt.
func Run(p LaunchParameters, ball physics.Ball, arm physics.Arm, opts Options) (*Result, error) {
	rel, err := SpinUp(p, arm, opts)
	if err != nil {
		return nil, err
	}

	traj, err := NewTrajectory(rel, ball, p, opts)
	if err != nil {
		return nil, err
	}

	for _, m := range opts.Metrics {
		m.Reset()
	}

	result := &Result{
		Params:  p,
		Release: rel,
		Metrics: make(map[string]float64),
	}

	e0 := 0.0
	ham, hasEnergy := engine.System(traj.dyn).(engine.Hamiltonian)
	if hasEnergy {
		e0 = ham.Energy(engine.State{rel.Position.X, rel.Position.Y, rel.Velocity.X, rel.Velocity.Y})
	}

	for traj.Next() {
		s := traj.Sample()
		result.Samples = append(result.Samples, s)

		x := stateOf(s)
		for _, m := range opts.Metrics {
			m.Observe(x, nil, s.Time)
		}
	}

	result.Phase = traj.Phase()
	result.Steps = traj.Steps()
	result.Landing, result.Landed = traj.Landing()

	if n := len(result.Samples); hasEnergy && n > 0 && e0 != 0 {
		eEnd := ham.Energy(stateOf(result.Samples[n-1]))
		result.EnergyDrift = math.Abs(eEnd-e0) / math.Abs(e0)
	}

	for _, m := range opts.Metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if err := traj.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// RunWithCallback streams each sample through fn instead of materializing
// the sequence; fn returning false stops the run early without error.
func RunWithCallback(p LaunchParameters, ball physics.Ball, arm physics.Arm, opts Options, fn func(TrajectorySample) bool) error {
	rel, err := SpinUp(p, arm, opts)
	if err != nil {
		return err
	}

	traj, err := NewTrajectory(rel, ball, p, opts)
	if err != nil {
		return err
	}

	for traj.Next() {
		if !fn(traj.Sample()) {
			return nil
		}
	}
	return traj.Err()
}

// LandingPoint reports the horizontal distance from release to the
// interpolated landing, and the time of flight. Zeros unless the ball
// landed.
func (r *Result) LandingPoint() (distance, timeOfFlight float64) {
	if !r.Landed {
		return 0, 0
	}
	return math.Abs(r.Landing.Position.X - r.Release.Position.X), r.Landing.Time
}

func stateOf(s TrajectorySample) engine.State {
	return engine.State{s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y}
}
