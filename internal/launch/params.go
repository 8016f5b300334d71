package launch

import (
	"math"

	"github.com/san-kum/ballista/internal/physics"
)

// LaunchParameters is the immutable input snapshot for one simulation run.
// Callers must hand the engine its own copy; nothing here is mutated.
//
// Angles are radians in standard math convention. The arm rotates
// counterclockwise under positive torque, so ReleaseAngle must lie past
// LaunchAngle; sweeps beyond 2*pi mean the arm turns more than a full
// revolution before releasing.
type LaunchParameters struct {
	Torque             float64
	LaunchAngle        float64
	ReleaseAngle       float64
	MaxAngularVelocity float64
	DragCoefficient    float64
	SpinRate           float64
	AirDensity         float64
}

// Validate checks every field against its physical domain. The returned
// error unwraps to ErrInvalidConfiguration.
func (p LaunchParameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"torque", p.Torque},
		{"launchAngle", p.LaunchAngle},
		{"releaseAngle", p.ReleaseAngle},
		{"maxAngularVelocity", p.MaxAngularVelocity},
		{"dragCoefficient", p.DragCoefficient},
		{"spinRate", p.SpinRate},
		{"airDensity", p.AirDensity},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	if p.Torque <= 0 {
		return &ConfigError{Field: "torque", Value: p.Torque, Reason: "must be positive"}
	}
	if p.MaxAngularVelocity <= 0 {
		return &ConfigError{Field: "maxAngularVelocity", Value: p.MaxAngularVelocity, Reason: "must be positive"}
	}
	if p.ReleaseAngle <= p.LaunchAngle {
		return &ConfigError{
			Field:  "releaseAngle",
			Value:  p.ReleaseAngle,
			Reason: "must lie past launchAngle along the rotation direction",
		}
	}
	if err := p.validateFlight(); err != nil {
		return err
	}
	return nil
}

// validateFlight covers the subset the trajectory integrator depends on.
func (p LaunchParameters) validateFlight() error {
	if math.IsNaN(p.DragCoefficient) || math.IsInf(p.DragCoefficient, 0) {
		return &ConfigError{Field: "dragCoefficient", Value: p.DragCoefficient, Reason: "must be finite"}
	}
	if math.IsNaN(p.SpinRate) || math.IsInf(p.SpinRate, 0) {
		return &ConfigError{Field: "spinRate", Value: p.SpinRate, Reason: "must be finite"}
	}
	if math.IsNaN(p.AirDensity) || math.IsInf(p.AirDensity, 0) {
		return &ConfigError{Field: "airDensity", Value: p.AirDensity, Reason: "must be finite"}
	}
	if p.DragCoefficient < 0 {
		return &ConfigError{Field: "dragCoefficient", Value: p.DragCoefficient, Reason: "must not be negative"}
	}
	if p.AirDensity <= 0 {
		return &ConfigError{Field: "airDensity", Value: p.AirDensity, Reason: "must be positive"}
	}
	return nil
}

func validateBall(b physics.Ball) error {
	if b.Mass <= 0 || math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
		return &ConfigError{Field: "ball.mass", Value: b.Mass, Reason: "must be positive"}
	}
	if b.Radius <= 0 || math.IsNaN(b.Radius) || math.IsInf(b.Radius, 0) {
		return &ConfigError{Field: "ball.radius", Value: b.Radius, Reason: "must be positive"}
	}
	if b.Area < 0 || math.IsNaN(b.Area) || math.IsInf(b.Area, 0) {
		return &ConfigError{Field: "ball.area", Value: b.Area, Reason: "must not be negative"}
	}
	return nil
}

func validateArm(a physics.Arm) error {
	if a.Length <= 0 || math.IsNaN(a.Length) || math.IsInf(a.Length, 0) {
		return &ConfigError{Field: "arm.length", Value: a.Length, Reason: "must be positive"}
	}
	if a.Inertia <= 0 || math.IsNaN(a.Inertia) || math.IsInf(a.Inertia, 0) {
		return &ConfigError{Field: "arm.inertia", Value: a.Inertia, Reason: "must be positive"}
	}
	if a.Friction < 0 || math.IsNaN(a.Friction) || math.IsInf(a.Friction, 0) {
		return &ConfigError{Field: "arm.friction", Value: a.Friction, Reason: "must not be negative"}
	}
	if math.IsNaN(a.PivotHeight) || math.IsInf(a.PivotHeight, 0) {
		return &ConfigError{Field: "arm.pivotHeight", Value: a.PivotHeight, Reason: "must be finite"}
	}
	return nil
}
