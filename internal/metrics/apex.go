package metrics

import "github.com/san-kum/ballista/internal/engine"

// Apex reports the greatest height reached during a flight.
type Apex struct {
	name string
	max  float64
	seen bool
}

func NewApex() *Apex {
	return &Apex{name: "apex"}
}

func (a *Apex) Name() string {
	return a.name
}

func (a *Apex) Observe(x engine.State, u engine.Control, t float64) {
	if len(x) < 2 {
		return
	}
	if !a.seen || x[1] > a.max {
		a.max = x[1]
		a.seen = true
	}
}

func (a *Apex) Value() float64 {
	return a.max
}

func (a *Apex) Reset() {
	a.max = 0
	a.seen = false
}
