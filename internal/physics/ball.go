package physics

import "math"

// Ball bundles the projectile's physical constants. Fixed at configuration
// time; never mutated during a run.
type Ball struct {
	Mass   float64
	Radius float64

	// Area is the cross-section used by the drag term. Zero means derive
	// pi*r^2 from the radius.
	Area float64
}

func NewBall(mass, radius float64) Ball {
	return Ball{Mass: mass, Radius: radius}
}

// SteelBall builds a solid steel sphere of the given radius.
func SteelBall(radius float64) Ball {
	return materialBall(radius, DensitySteel)
}

// AluminumBall builds a solid aluminum sphere of the given radius.
func AluminumBall(radius float64) Ball {
	return materialBall(radius, DensityAluminum)
}

func materialBall(radius, density float64) Ball {
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	return Ball{Mass: volume * density, Radius: radius}
}

// CrossSection returns the drag reference area, deriving it from the radius
// when Area is unset.
func (b Ball) CrossSection() float64 {
	if b.Area > 0 {
		return b.Area
	}
	return math.Pi * b.Radius * b.Radius
}
