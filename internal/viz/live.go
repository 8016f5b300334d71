package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/physics"
	"github.com/san-kum/ballista/internal/vec"
)

const (
	replayWidth  = 80
	replayHeight = 24
	frameRate    = 60
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// ReplayModel plays a finished run back in flight time. The launcher is
// drawn frozen at its release pose while the ball traces the sampled
// trajectory.
type ReplayModel struct {
	res    *launch.Result
	arm    physics.Arm
	canvas *Canvas
	vp     Viewport

	idx     int
	clock   float64
	speed   float64
	playing bool
}

func NewReplay(res *launch.Result, arm physics.Arm) ReplayModel {
	c := NewCanvas(replayWidth, replayHeight)
	return ReplayModel{
		res:     res,
		arm:     arm,
		canvas:  c,
		vp:      fitReplay(res, arm, c),
		speed:   1,
		playing: true,
	}
}

// fitReplay frames both the launcher and the whole flight.
func fitReplay(res *launch.Result, arm physics.Arm, c *Canvas) Viewport {
	minX, maxX := 0.0, 0.0
	minY, maxY := 0.0, arm.PivotHeight+arm.Length
	for _, s := range res.Samples {
		p := s.Position
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return NewViewport(minX, maxX, minY, maxY, c)
}

func (m ReplayModel) Init() tea.Cmd {
	return tick()
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.idx, m.clock, m.playing = 0, 0, true
		case "[":
			m.seek(m.clock - 0.25)
		case "]":
			m.seek(m.clock + 0.25)
		case "+", "=":
			if m.speed < 8 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 0.25 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.playing {
			m.advance(m.speed / frameRate)
		}
		return m, tick()
	}
	return m, nil
}

// advance moves the playhead forward in flight seconds.
func (m *ReplayModel) advance(dt float64) {
	m.clock += dt
	samples := m.res.Samples
	for m.idx+1 < len(samples) && samples[m.idx+1].Time <= m.clock {
		m.idx++
	}
	if m.idx == len(samples)-1 {
		m.clock = samples[m.idx].Time
		m.playing = false
	}
}

// seek jumps to a flight time and pauses there.
func (m *ReplayModel) seek(t float64) {
	samples := m.res.Samples
	last := samples[len(samples)-1].Time
	if t < 0 {
		t = 0
	}
	if t > last {
		t = last
	}
	m.clock = t
	m.idx = 0
	for m.idx+1 < len(samples) && samples[m.idx+1].Time <= t {
		m.idx++
	}
	m.playing = false
}

func (m *ReplayModel) draw() {
	m.canvas.Clear()

	drawGround(m.canvas, m.vp)

	// Mast from the ground to the pivot, arm out to the release point.
	gx, gy := m.vp.Map(vec.New(0, 0))
	px, py := m.vp.Map(vec.New(0, m.arm.PivotHeight))
	if m.arm.PivotHeight > 0 {
		m.canvas.DrawLine(gx, gy, px, py)
	}
	rx, ry := m.vp.Map(m.res.Release.Position)
	m.canvas.DrawLine(px, py, rx, ry)

	// Flight trail up to the playhead.
	tx, ty := m.vp.Map(m.res.Samples[0].Position)
	for _, s := range m.res.Samples[1 : m.idx+1] {
		x, y := m.vp.Map(s.Position)
		m.canvas.DrawLine(tx, ty, x, y)
		tx, ty = x, y
	}

	bx, by := m.vp.Map(m.res.Samples[m.idx].Position)
	m.canvas.Marker(bx, by, 1)
}

func (m ReplayModel) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	cur := m.res.Samples[m.idx]
	var s strings.Builder
	s.WriteString(headerStyle.Render("BALLISTA") + "\n")

	status := StatusRunning.Render("FLYING")
	switch {
	case m.idx == len(m.res.Samples)-1:
		if m.res.Landed {
			status = StatusRunning.Render("LANDED")
		} else {
			status = errorStyle.Render("ABORTED")
		}
	case !m.playing:
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(status + Subtle.Render(fmt.Sprintf("  %gx", m.speed)) + "\n\n")

	if m.idx > 0 {
		chart := asciigraph.Plot(m.heights(),
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("height"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", cur.Time)) + "\n")
	s.WriteString(labelStyle.Render("Height") + valueStyle.Render(fmt.Sprintf("%.2f m", cur.Position.Y)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f m/s", cur.Velocity.Len())) + "\n")
	s.WriteString(labelStyle.Render("Distance") + valueStyle.Render(fmt.Sprintf("%.2f m", math.Abs(cur.Position.X-m.res.Release.Position.X))) + "\n")

	if m.res.Landed {
		dist, tof := m.res.LandingPoint()
		s.WriteString("\n" + Separator(24) + "\n")
		s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("%.2f m", dist)) + "\n")
		s.WriteString(labelStyle.Render("Flight time") + valueStyle.Render(fmt.Sprintf("%.2fs", tof)) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Restart Q:Quit\n[ ]:Scrub  +/-:Speed"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// heights downsamples the flown path for the mini chart.
func (m ReplayModel) heights() []float64 {
	n := m.idx + 1
	stride := n/120 + 1
	out := make([]float64, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		out = append(out, m.res.Samples[i].Position.Y)
	}
	return out
}

// RunReplay plays a finished run in the terminal.
func RunReplay(res *launch.Result, arm physics.Arm) error {
	p := tea.NewProgram(NewReplay(res, arm), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
