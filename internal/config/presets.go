package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"classic": preset(func(c *Config) {}),
	"full-power": preset(func(c *Config) {
		c.Launch.Torque = 2.0
		c.Launch.ReleaseAngle = 1.2
	}),
	"lob": preset(func(c *Config) {
		c.Launch.ReleaseAngle = 1.2
		c.Launch.MaxAngularVelocity = 6.0
	}),
	"floater": preset(func(c *Config) {
		c.Ball.Material = "aluminum"
		c.Ball.Radius = 0.12
		c.Launch.DragCoefficient = 0.6
		c.Launch.AirDensity = 1.3
	}),
	"backspin": preset(func(c *Config) {
		c.Launch.SpinRate = 60
	}),
	"topspin": preset(func(c *Config) {
		c.Launch.SpinRate = -60
	}),
	"vacuum": preset(func(c *Config) {
		c.Launch.DragCoefficient = 0
		c.Launch.SpinRate = 0
	}),
	"bouncy": preset(func(c *Config) {
		c.Sim.MaxBounces = 3
	}),
	"worn-bearing": preset(func(c *Config) {
		c.Arm.Friction = 0.05
		c.Launch.Torque = 1.5
	}),
}

// GetPreset returns a private copy of the named preset, or nil when the
// name is unknown. Copies keep callers from mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
