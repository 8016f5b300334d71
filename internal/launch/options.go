package launch

import (
	"math"

	"github.com/san-kum/ballista/internal/engine"
	"github.com/san-kum/ballista/internal/integrators"
	"github.com/san-kum/ballista/internal/physics"
)

const (
	DefaultDt = 1e-3

	// DefaultMaxSteps bounds a run at 2000 simulated seconds under the
	// default step size; any plausible launch lands long before.
	DefaultMaxSteps = 2000000
)

// Options holds the engine-side knobs of a run. Zero numeric fields mean
// defaults; negative values are rejected. Nil Integrator and Motor resolve
// to semi-implicit Euler and the gated constant motor.
//
// Integrators may keep scratch state across Step calls, so concurrent runs
// must not share one Options.Integrator instance; leave it nil to get a
// fresh default per run.
type Options struct {
	Dt       float64
	MaxSteps int
	Gravity  float64

	Integrator engine.Integrator
	Motor      engine.Controller
	Metrics    []engine.Metric

	// ValidateState aborts a run when the state goes NaN or infinite.
	ValidateState bool

	// MaxBounces lets the flight continue through ground bounces with the
	// given restitution. Zero preserves the stop-at-first-contact contract;
	// the authoritative landing sample is the first contact either way.
	MaxBounces  int
	Restitution float64
}

func DefaultOptions() Options {
	return Options{
		Dt:            DefaultDt,
		MaxSteps:      DefaultMaxSteps,
		Gravity:       physics.DefaultGravity,
		ValidateState: true,
		Restitution:   physics.DefaultRestitution,
	}
}

func (o Options) normalized() Options {
	if o.Dt == 0 {
		o.Dt = DefaultDt
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Gravity == 0 {
		o.Gravity = physics.DefaultGravity
	}
	if o.Integrator == nil {
		o.Integrator = integrators.NewSemiImplicitEuler()
	}
	return o
}

func (o Options) validate() error {
	if o.Dt <= 0 || math.IsNaN(o.Dt) || math.IsInf(o.Dt, 0) {
		return &ConfigError{Field: "options.dt", Value: o.Dt, Reason: "must be positive"}
	}
	if o.MaxSteps <= 0 {
		return &ConfigError{Field: "options.maxSteps", Value: float64(o.MaxSteps), Reason: "must be positive"}
	}
	if o.Gravity <= 0 || math.IsNaN(o.Gravity) || math.IsInf(o.Gravity, 0) {
		return &ConfigError{Field: "options.gravity", Value: o.Gravity, Reason: "must be positive"}
	}
	if o.MaxBounces < 0 {
		return &ConfigError{Field: "options.maxBounces", Value: float64(o.MaxBounces), Reason: "must not be negative"}
	}
	if o.Restitution < 0 || o.Restitution > 1 || math.IsNaN(o.Restitution) {
		return &ConfigError{Field: "options.restitution", Value: o.Restitution, Reason: "must lie in [0, 1]"}
	}
	return nil
}
