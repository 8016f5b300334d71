package physics

import "github.com/san-kum/ballista/internal/engine"

// Arm describes the launcher arm geometry. Angles follow the standard math
// convention: 0 along +x, counterclockwise positive, with the world y axis
// pointing up and the ground at y = 0.
type Arm struct {
	Length  float64
	Inertia float64

	// PivotHeight is the pivot's height above ground. The constructors
	// mount the pivot one arm length up, so the tip grazes the ground at
	// the lowest point of the sweep; negative values recess the pivot.
	PivotHeight float64

	// Friction is the viscous coefficient c in alpha = (tau - c*omega)/I.
	// Zero by default; a worn bearing runs around 0.05.
	Friction float64
}

// UniformRodArm models the arm as a uniform rod of the given mass pivoted
// at one end: I = m*L^2/3.
func UniformRodArm(mass, length float64) Arm {
	return Arm{
		Length:      length,
		Inertia:     mass * length * length / 3.0,
		PivotHeight: length,
	}
}

// AluminumRodArm derives the rod mass from a square cross-section of the
// given side length and the density of aluminum.
func AluminumRodArm(length, side float64) Arm {
	mass := DensityAluminum * side * side * length
	return UniformRodArm(mass, length)
}

// ArmDynamics is the arm's rotational equation of motion. State layout is
// [theta, omega]; the single control input is the motor torque.
type ArmDynamics struct {
	Arm Arm
}

func NewArmDynamics(arm Arm) *ArmDynamics {
	return &ArmDynamics{Arm: arm}
}

func (d *ArmDynamics) StateDim() int   { return 2 }
func (d *ArmDynamics) ControlDim() int { return 1 }

func (d *ArmDynamics) Derive(x engine.State, u engine.Control, t float64) engine.State {
	omega := x[1]
	torque := 0.0
	if len(u) > 0 {
		torque = u[0]
	}
	alpha := (torque - d.Arm.Friction*omega) / d.Arm.Inertia
	return engine.State{omega, alpha}
}
