package launch

import (
	"math"

	"github.com/san-kum/ballista/internal/engine"
	"github.com/san-kum/ballista/internal/motor"
	"github.com/san-kum/ballista/internal/physics"
	"github.com/san-kum/ballista/internal/vec"
)

// ReleaseState is the ball's kinematic state the instant it leaves the arm.
// Immutable once produced; the trajectory integrator consumes it without
// knowing anything else about the arm.
type ReleaseState struct {
	Angle           float64
	AngularVelocity float64

	// Time is the spin-up duration from launch angle to release.
	Time float64

	// Position is the arm tip in world coordinates, ground at y = 0.
	Position vec.Vec2

	// Velocity is tangent to the rotation: L*omega*(-sin, cos) at the
	// release angle.
	Velocity vec.Vec2

	// Spin is the configured spin rate, passed through unchanged.
	Spin float64
}

// Speed returns the release speed, omega times arm length.
func (r ReleaseState) Speed() float64 {
	return r.Velocity.Len()
}

// SpinUp integrates the arm from rest at the launch angle until it reaches
// the release angle: alpha from motor torque and inertia, omega clamped at
// the cap between the velocity and position halves of each step so a pinned
// arm keeps advancing at exactly the capped rate, then a linear
// interpolation inside the final step removes the overshoot from the
// reported angle and time.
func SpinUp(p LaunchParameters, arm physics.Arm, opts Options) (ReleaseState, error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return ReleaseState{}, err
	}
	if err := p.Validate(); err != nil {
		return ReleaseState{}, err
	}
	if err := validateArm(arm); err != nil {
		return ReleaseState{}, err
	}

	dyn := physics.NewArmDynamics(arm)
	drive := opts.Motor
	if drive == nil {
		drive = motor.NewConstant(p.Torque, p.MaxAngularVelocity)
	}

	theta := p.LaunchAngle
	omega := 0.0
	t := 0.0
	dt := opts.Dt

	for step := 0; step < opts.MaxSteps; step++ {
		x := engine.State{theta, omega}
		u := drive.Compute(x, t)
		dx := dyn.Derive(x, u, t)

		omega += dx[1] * dt
		if omega > p.MaxAngularVelocity {
			omega = p.MaxAngularVelocity
		}
		prev := theta
		theta += omega * dt

		if theta >= p.ReleaseAngle {
			f := 1.0
			if theta > prev {
				f = (p.ReleaseAngle - prev) / (theta - prev)
			}
			return releaseAt(p, arm, omega, t+f*dt), nil
		}
		t += dt
	}

	return ReleaseState{}, &NonConvergentError{
		Steps:  opts.MaxSteps,
		Time:   t,
		Reason: "arm did not reach release angle",
	}
}

func releaseAt(p LaunchParameters, arm physics.Arm, omega, t float64) ReleaseState {
	sin, cos := math.Sincos(p.ReleaseAngle)
	return ReleaseState{
		Angle:           p.ReleaseAngle,
		AngularVelocity: omega,
		Time:            t,
		Position: vec.Vec2{
			X: arm.Length * cos,
			Y: arm.PivotHeight + arm.Length*sin,
		},
		Velocity: vec.Vec2{
			X: -arm.Length * omega * sin,
			Y: arm.Length * omega * cos,
		},
		Spin: p.SpinRate,
	}
}
