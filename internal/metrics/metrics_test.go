package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/ballista/internal/engine"
)

func TestApex(t *testing.T) {
	m := NewApex()
	u := engine.Control{}

	m.Observe(engine.State{0, 1.5, 0, 0}, u, 0)
	m.Observe(engine.State{1, 4.2, 0, 0}, u, 0.1)
	m.Observe(engine.State{2, 2.0, 0, 0}, u, 0.2)

	if got := m.Value(); got != 4.2 {
		t.Errorf("expected apex 4.2, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero apex after reset")
	}

	// A flight that never climbs still reports its best height.
	m.Observe(engine.State{0, -3, 0, 0}, u, 0)
	if got := m.Value(); got != -3 {
		t.Errorf("expected apex -3, got %f", got)
	}
}

func TestPeakSpeed(t *testing.T) {
	m := NewPeakSpeed()
	u := engine.Control{}

	m.Observe(engine.State{0, 0, 3, 4}, u, 0)
	m.Observe(engine.State{0, 0, 1, 1}, u, 0.1)

	if got := m.Value(); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected peak speed 5, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero peak speed after reset")
	}
}

func TestPathLength(t *testing.T) {
	m := NewPathLength()
	u := engine.Control{}

	m.Observe(engine.State{0, 0, 0, 0}, u, 0)
	m.Observe(engine.State{3, 4, 0, 0}, u, 0.1)
	m.Observe(engine.State{3, 0, 0, 0}, u, 0.2)

	if got := m.Value(); math.Abs(got-9) > 1e-12 {
		t.Errorf("expected path length 9, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero path length after reset")
	}

	// The first observation after a reset opens a new path.
	m.Observe(engine.State{10, 10, 0, 0}, u, 0)
	if m.Value() != 0 {
		t.Error("a single point has no length")
	}
}

func TestAllAreIndependent(t *testing.T) {
	a := All()
	b := All()

	a[0].Observe(engine.State{0, 7, 0, 0}, engine.Control{}, 0)
	if b[0].Value() != 0 {
		t.Error("metric instances must not share state")
	}

	names := map[string]bool{}
	for _, m := range a {
		if names[m.Name()] {
			t.Errorf("duplicate metric name %q", m.Name())
		}
		names[m.Name()] = true
	}
}
