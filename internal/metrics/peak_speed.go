package metrics

import (
	"math"

	"github.com/san-kum/ballista/internal/engine"
)

// PeakSpeed reports the greatest speed observed during a flight.
type PeakSpeed struct {
	name string
	max  float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string {
	return p.name
}

func (p *PeakSpeed) Observe(x engine.State, u engine.Control, t float64) {
	if len(x) < 4 {
		return
	}
	if speed := math.Hypot(x[2], x[3]); speed > p.max {
		p.max = speed
	}
}

func (p *PeakSpeed) Value() float64 {
	return p.max
}

func (p *PeakSpeed) Reset() {
	p.max = 0
}
