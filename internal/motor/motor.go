package motor

import "github.com/san-kum/ballista/internal/engine"

// Constant applies its full torque while the arm's angular velocity is
// below the cap and cuts to zero at it.
type Constant struct {
	Torque float64
	Cap    float64
}

func NewConstant(torque, cap float64) *Constant {
	return &Constant{Torque: torque, Cap: cap}
}

func (c *Constant) Compute(x engine.State, t float64) engine.Control {
	if len(x) > 1 && x[1] >= c.Cap {
		return engine.Control{0}
	}
	return engine.Control{c.Torque}
}

// Servo tapers torque proportionally to the remaining headroom below the
// cap, holding full torque until the arm enters the taper band.
type Servo struct {
	Torque float64
	Cap    float64

	// Band is the fraction of the cap over which torque tapers to zero.
	Band float64
}

func NewServo(torque, cap float64) *Servo {
	return &Servo{Torque: torque, Cap: cap, Band: 0.1}
}

func (s *Servo) Compute(x engine.State, t float64) engine.Control {
	omega := 0.0
	if len(x) > 1 {
		omega = x[1]
	}
	if omega >= s.Cap {
		return engine.Control{0}
	}

	band := s.Band * s.Cap
	if band <= 0 || s.Cap-omega >= band {
		return engine.Control{s.Torque}
	}
	return engine.Control{s.Torque * (s.Cap - omega) / band}
}
