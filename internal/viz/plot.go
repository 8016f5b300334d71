package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/vec"
)

// fitFlight bounds a viewport around the whole flight, always keeping
// the ground in frame.
func fitFlight(samples []launch.TrajectorySample, c *Canvas) Viewport {
	if len(samples) == 0 {
		return NewViewport(0, 1, 0, 1, c)
	}

	minX, maxX := samples[0].Position.X, samples[0].Position.X
	minY, maxY := 0.0, samples[0].Position.Y
	for _, s := range samples {
		p := s.Position
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return NewViewport(minX, maxX, minY, maxY, c)
}

// TrajectoryCanvas draws the full flight path with the ground line and
// markers on the release and landing samples.
func TrajectoryCanvas(samples []launch.TrajectorySample, width, height int) string {
	c := NewCanvas(width, height)
	if len(samples) == 0 {
		return c.String()
	}
	vp := fitFlight(samples, c)

	drawGround(c, vp)
	drawPath(c, vp, samples)

	rx, ry := vp.Map(samples[0].Position)
	c.Marker(rx, ry, 1)
	lx, ly := vp.Map(samples[len(samples)-1].Position)
	c.Marker(lx, ly, 1)

	return c.String()
}

func drawGround(c *Canvas, vp Viewport) {
	x0, y := vp.Map(vec.New(vp.MinX, 0))
	x1, _ := vp.Map(vec.New(vp.MaxX, 0))
	c.DrawLine(x0, y, x1, y)
}

func drawPath(c *Canvas, vp Viewport, samples []launch.TrajectorySample) {
	px, py := vp.Map(samples[0].Position)
	for _, s := range samples[1:] {
		x, y := vp.Map(s.Position)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// HeightProfile charts height over the flight.
func HeightProfile(samples []launch.TrajectorySample, width, height int) string {
	ys := make([]float64, len(samples))
	for i, s := range samples {
		ys[i] = s.Position.Y
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("height (m)"))
}

// SpeedProfile charts speed over the flight.
func SpeedProfile(samples []launch.TrajectorySample, width, height int) string {
	vs := make([]float64, len(samples))
	for i, s := range samples {
		vs[i] = s.Velocity.Len()
	}
	return asciigraph.Plot(vs,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("speed (m/s)"))
}
