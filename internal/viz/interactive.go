package viz

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ballista/internal/config"
	"github.com/san-kum/ballista/internal/integrators"
	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/metrics"
)

var (
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	bright = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	pink   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keycap = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

var presetInfo = map[string]string{
	"classic":      "steel ball, stock launcher",
	"full-power":   "motor flat out",
	"lob":          "slow high arc",
	"floater":      "light ball, thick air",
	"backspin":     "magnus lift stretches the shot",
	"topspin":      "magnus dip shortens the shot",
	"vacuum":       "no aerodynamics",
	"bouncy":       "three bounces after touchdown",
	"worn-bearing": "friction eats the spin-up",
}

const (
	stateMenu = iota
	stateTune
	stateReplay
)

// tuneField binds one adjustable parameter to its config slot and its
// documented range.
type tuneField struct {
	key   string
	label string
	unit  string
	get   func(*config.Config) float64
	set   func(*config.Config, float64)
}

func tuneFields() []tuneField {
	return []tuneField{
		{"torque", "torque", "Nm",
			func(c *config.Config) float64 { return c.Launch.Torque },
			func(c *config.Config, v float64) { c.Launch.Torque = v }},
		{"launch_angle", "launch angle", "rad",
			func(c *config.Config) float64 { return c.Launch.LaunchAngle },
			func(c *config.Config, v float64) { c.Launch.LaunchAngle = v }},
		{"release_angle", "release angle", "rad",
			func(c *config.Config) float64 { return c.Launch.ReleaseAngle },
			func(c *config.Config, v float64) { c.Launch.ReleaseAngle = v }},
		{"max_angular_velocity", "speed cap", "rad/s",
			func(c *config.Config) float64 { return c.Launch.MaxAngularVelocity },
			func(c *config.Config, v float64) { c.Launch.MaxAngularVelocity = v }},
		{"drag_coefficient", "drag coeff", "",
			func(c *config.Config) float64 { return c.Launch.DragCoefficient },
			func(c *config.Config, v float64) { c.Launch.DragCoefficient = v }},
		{"spin_rate", "spin rate", "rad/s",
			func(c *config.Config) float64 { return c.Launch.SpinRate },
			func(c *config.Config, v float64) { c.Launch.SpinRate = v }},
		{"air_density", "air density", "kg/m3",
			func(c *config.Config) float64 { return c.Launch.AirDensity },
			func(c *config.Config, v float64) { c.Launch.AirDensity = v }},
	}
}

// runDoneMsg delivers a finished simulation. seq ties it to the change
// that requested it so stale results are dropped.
type runDoneMsg struct {
	seq int
	res *launch.Result
	err error
}

type App struct {
	state  int
	cursor int

	presets []string
	chosen  string
	cfg     *config.Config

	fields      []tuneField
	fieldCursor int
	editing     bool
	editBuf     string

	seq    int
	busy   bool
	res    *launch.Result
	runErr error

	replay ReplayModel
}

func NewApp() *App {
	return &App{
		presets: config.ListPresets(),
		chosen:  "classic",
		cfg:     config.DefaultConfig(),
		fields:  tuneFields(),
	}
}

func (a App) Init() tea.Cmd { return nil }

// rerun snapshots the current config and simulates it off the UI loop.
func (a *App) rerun() tea.Cmd {
	a.seq++
	a.busy = true
	seq := a.seq
	cfg := *a.cfg
	return func() tea.Msg {
		opts, err := cfg.Options()
		if err != nil {
			return runDoneMsg{seq: seq, err: err}
		}
		opts.Metrics = metrics.All()
		res, err := launch.Run(cfg.Params(), cfg.BallSpec(), cfg.ArmSpec(), opts)
		return runDoneMsg{seq: seq, res: res, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case runDoneMsg:
		if msg.seq != a.seq {
			return a, nil // superseded by a newer change
		}
		a.busy = false
		a.res, a.runErr = msg.res, msg.err
		return a, nil
	default:
		if a.state == stateReplay {
			next, cmd := a.replay.Update(msg)
			a.replay = next.(ReplayModel)
			return a, cmd
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateTune:
		return a.tuneKey(msg)
	case stateReplay:
		if msg.String() == "esc" {
			a.state = stateTune
			return a, nil
		}
		next, cmd := a.replay.Update(msg)
		a.replay = next.(ReplayModel)
		return a, cmd
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.chosen = a.presets[a.cursor]
		a.cfg = config.GetPreset(a.chosen)
		a.state, a.fieldCursor = stateTune, 0
		cmd := a.rerun()
		return a, cmd
	}
	return a, nil
}

func (a App) tuneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(a.editBuf, "%f", &val)
			f := a.fields[a.fieldCursor]
			f.set(a.cfg, config.Ranges[f.key].Clamp(val))
			a.editing, a.editBuf = false, ""
			cmd := a.rerun()
			return a, cmd
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = stateMenu
	case "up", "k":
		if a.fieldCursor > 0 {
			a.fieldCursor--
		}
	case "down", "j":
		if a.fieldCursor < len(a.fields)-1 {
			a.fieldCursor++
		}
	case "left", "h":
		cmd := a.nudge(-1)
		return a, cmd
	case "right", "l":
		cmd := a.nudge(1)
		return a, cmd
	case "enter":
		f := a.fields[a.fieldCursor]
		a.editing = true
		a.editBuf = fmt.Sprintf("%.3f", f.get(a.cfg))
	case "i":
		a.cycleIntegrator()
		cmd := a.rerun()
		return a, cmd
	case "v":
		if a.res != nil {
			a.replay = NewReplay(a.res, a.cfg.ArmSpec())
			a.state = stateReplay
			return a, a.replay.Init()
		}
	}
	return a, nil
}

// nudge moves the selected field one step along its range.
func (a *App) nudge(dir float64) tea.Cmd {
	f := a.fields[a.fieldCursor]
	r := config.Ranges[f.key]
	step := (r.Max - r.Min) / 40
	f.set(a.cfg, r.Clamp(f.get(a.cfg)+dir*step))
	return a.rerun()
}

func (a *App) cycleIntegrator() {
	names := integrators.Names()
	for i, name := range names {
		if name == a.cfg.Sim.Integrator {
			a.cfg.Sim.Integrator = names[(i+1)%len(names)]
			return
		}
	}
	a.cfg.Sim.Integrator = integrators.DefaultName
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateTune:
		return a.viewTune()
	case stateReplay:
		return a.replay.View()
	}
	return ""
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + accent.Render("BALLISTA") + "\n    " +
		dim.Render("mechanical ball launcher") + "\n    " +
		dim.Render("─────────────────────────") + "\n\n")

	for i, name := range a.presets {
		desc := presetInfo[name]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				accent.Render("▸"),
				bright.Render(fmt.Sprintf("%-14s", name)),
				pink.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				dim.Render(fmt.Sprintf("  %-14s", name)),
				dimmer.Render(desc)))
		}
	}

	b.WriteString("\n    " + keycap.Render("j/k") + dim.Render(" navigate  ") +
		keycap.Render("enter") + dim.Render(" select  ") +
		keycap.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

func (a App) viewTune() string {
	left := canvasStyle.Render(a.flightCanvas())

	var s strings.Builder
	s.WriteString(headerStyle.Render("BALLISTA") + " " + Subtle.Render(a.chosen) + "\n")
	if a.busy {
		s.WriteString(StatusPaused.Render("SIMULATING") + "\n\n")
	} else if a.runErr != nil {
		s.WriteString(errorStyle.Render("INVALID") + "\n\n")
	} else {
		s.WriteString(StatusRunning.Render("READY") + "\n\n")
	}

	for i, f := range a.fields {
		val := f.get(a.cfg)
		r := config.Ranges[f.key]
		valStr := fmt.Sprintf("%8.3f %s", val, f.unit)
		if a.editing && i == a.fieldCursor {
			valStr = fmt.Sprintf("%8s", a.editBuf+"_")
		}
		line := fmt.Sprintf("%-14s %s %s", f.label, paramBar(val, r), valStr)
		if i == a.fieldCursor {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}
	s.WriteString("  " + Subtle.Render(fmt.Sprintf("%-14s %s", "integrator", a.cfg.Sim.Integrator)) + "\n")

	s.WriteString("\n" + Separator(38) + "\n")
	s.WriteString(a.resultsPanel())

	s.WriteString(helpStyle.Render("\nj/k:Select H/L:Adjust Enter:Type\ni:Integrator V:Replay Esc:Back Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(s.String()))
}

func (a App) flightCanvas() string {
	if a.res == nil || len(a.res.Samples) == 0 {
		return NewCanvas(50, 16).String()
	}
	return TrajectoryCanvas(a.res.Samples, 50, 16)
}

func (a App) resultsPanel() string {
	if a.runErr != nil {
		var ce *launch.ConfigError
		if errors.As(a.runErr, &ce) {
			return errorStyle.Render(fmt.Sprintf("%s: %s", ce.Field, ce.Reason)) + "\n"
		}
		return errorStyle.Render(a.runErr.Error()) + "\n"
	}
	if a.res == nil {
		return Subtle.Render("no run yet") + "\n"
	}

	var s strings.Builder
	dist, tof := a.res.LandingPoint()
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("%.2f m", dist)) + "\n")
	s.WriteString(labelStyle.Render("Flight time") + valueStyle.Render(fmt.Sprintf("%.2fs", tof)) + "\n")
	if apex, ok := a.res.Metrics["apex"]; ok {
		s.WriteString(labelStyle.Render("Apex") + valueStyle.Render(fmt.Sprintf("%.2f m", apex)) + "\n")
	}

	speed := a.res.Release.Speed()
	capSpeed := a.cfg.Launch.MaxAngularVelocity * a.cfg.Arm.Length
	s.WriteString(labelStyle.Render("Release") + valueStyle.Render(fmt.Sprintf("%.2f m/s", speed)) + "\n")
	if capSpeed > 0 {
		s.WriteString(labelStyle.Render("Charge") + ProgressBar(speed/capSpeed, 16) + "\n")
	}
	return s.String()
}

// paramBar shows where a value sits inside its documented range.
func paramBar(val float64, r config.Range) string {
	ratio := 0.0
	if r.Max > r.Min {
		ratio = (val - r.Min) / (r.Max - r.Min)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * 10)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", 10-filled) + "]"
}

// RunApp starts the interactive tuning screen.
func RunApp() error {
	p := tea.NewProgram(NewApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
