package config

import "math"

// Range bounds one adjustable launch parameter. The engine runs its own
// validation; these are the documented control-surface limits an
// interactive layer clamps against.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

var Ranges = map[string]Range{
	"torque":               {0.05, 2.0},
	"launch_angle":         {0, 2 * math.Pi},
	"release_angle":        {0, 2 * math.Pi},
	"max_angular_velocity": {0.5, 20.0},
	"drag_coefficient":     {0, 0.6},
	"spin_rate":            {-100, 100},
	"air_density":          {1.0, 1.3},
}
