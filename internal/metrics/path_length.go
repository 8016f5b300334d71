package metrics

import (
	"github.com/san-kum/ballista/internal/engine"
	"github.com/san-kum/ballista/internal/vec"
)

// PathLength accumulates the arc length of the flight path by summing
// straight segments between consecutive observed positions.
type PathLength struct {
	name  string
	prev  vec.Vec2
	seen  bool
	total float64
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string {
	return p.name
}

func (p *PathLength) Observe(x engine.State, u engine.Control, t float64) {
	if len(x) < 2 {
		return
	}
	cur := vec.New(x[0], x[1])
	if p.seen {
		p.total += cur.Sub(p.prev).Len()
	}
	p.prev = cur
	p.seen = true
}

func (p *PathLength) Value() float64 {
	return p.total
}

func (p *PathLength) Reset() {
	p.total = 0
	p.seen = false
}
