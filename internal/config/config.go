package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballista/internal/integrators"
	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/physics"
)

const (
	DefaultTorque             = 1.0
	DefaultReleaseAngle       = math.Pi / 4
	DefaultMaxAngularVelocity = 20.0
	DefaultBallRadius         = 0.1
	DefaultArmMass            = 1.08
	DefaultArmLength          = 1.0
)

type Config struct {
	Launch LaunchConfig `yaml:"launch"`
	Ball   BallConfig   `yaml:"ball"`
	Arm    ArmConfig    `yaml:"arm"`
	Sim    SimConfig    `yaml:"sim"`
}

type LaunchConfig struct {
	Torque             float64 `yaml:"torque"`
	LaunchAngle        float64 `yaml:"launch_angle"`
	ReleaseAngle       float64 `yaml:"release_angle"`
	MaxAngularVelocity float64 `yaml:"max_angular_velocity"`
	DragCoefficient    float64 `yaml:"drag_coefficient"`
	SpinRate           float64 `yaml:"spin_rate"`
	AirDensity         float64 `yaml:"air_density"`
}

// BallConfig describes the projectile. Material selects a density-derived
// mass ("steel" or "aluminum"); leave it empty to give mass and area
// explicitly.
type BallConfig struct {
	Material string  `yaml:"material"`
	Mass     float64 `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
	Area     float64 `yaml:"area"`
}

type ArmConfig struct {
	Mass        float64 `yaml:"mass"`
	Length      float64 `yaml:"length"`
	PivotHeight float64 `yaml:"pivot_height"`
	Friction    float64 `yaml:"friction"`
}

type SimConfig struct {
	Integrator  string  `yaml:"integrator"`
	Dt          float64 `yaml:"dt"`
	MaxSteps    int     `yaml:"max_steps"`
	Gravity     float64 `yaml:"gravity"`
	MaxBounces  int     `yaml:"max_bounces"`
	Restitution float64 `yaml:"restitution"`
}

func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			Torque:             DefaultTorque,
			LaunchAngle:        0,
			ReleaseAngle:       DefaultReleaseAngle,
			MaxAngularVelocity: DefaultMaxAngularVelocity,
			DragCoefficient:    physics.DefaultDragCoefficient,
			SpinRate:           0,
			AirDensity:         physics.DefaultAirDensity,
		},
		Ball: BallConfig{
			Material: "steel",
			Radius:   DefaultBallRadius,
		},
		Arm: ArmConfig{
			Mass:        DefaultArmMass,
			Length:      DefaultArmLength,
			PivotHeight: DefaultArmLength,
		},
		Sim: SimConfig{
			Integrator:  integrators.DefaultName,
			Dt:          launch.DefaultDt,
			MaxSteps:    launch.DefaultMaxSteps,
			Gravity:     physics.DefaultGravity,
			Restitution: physics.DefaultRestitution,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params assembles the launch parameter snapshot handed to the engine.
func (c *Config) Params() launch.LaunchParameters {
	return launch.LaunchParameters{
		Torque:             c.Launch.Torque,
		LaunchAngle:        c.Launch.LaunchAngle,
		ReleaseAngle:       c.Launch.ReleaseAngle,
		MaxAngularVelocity: c.Launch.MaxAngularVelocity,
		DragCoefficient:    c.Launch.DragCoefficient,
		SpinRate:           c.Launch.SpinRate,
		AirDensity:         c.Launch.AirDensity,
	}
}

func (c *Config) BallSpec() physics.Ball {
	switch c.Ball.Material {
	case "steel":
		return physics.SteelBall(c.Ball.Radius)
	case "aluminum":
		return physics.AluminumBall(c.Ball.Radius)
	}
	ball := physics.NewBall(c.Ball.Mass, c.Ball.Radius)
	ball.Area = c.Ball.Area
	return ball
}

func (c *Config) ArmSpec() physics.Arm {
	arm := physics.UniformRodArm(c.Arm.Mass, c.Arm.Length)
	arm.PivotHeight = c.Arm.PivotHeight
	arm.Friction = c.Arm.Friction
	return arm
}

// Options resolves the integrator name and simulation settings. The
// returned options carry no metrics; callers attach their own.
func (c *Config) Options() (launch.Options, error) {
	integ, err := integrators.New(c.Sim.Integrator)
	if err != nil {
		return launch.Options{}, err
	}
	opts := launch.DefaultOptions()
	opts.Integrator = integ
	opts.Dt = c.Sim.Dt
	opts.MaxSteps = c.Sim.MaxSteps
	opts.Gravity = c.Sim.Gravity
	opts.MaxBounces = c.Sim.MaxBounces
	opts.Restitution = c.Sim.Restitution
	return opts, nil
}
