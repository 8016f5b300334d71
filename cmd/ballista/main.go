package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ballista/internal/config"
	"github.com/san-kum/ballista/internal/export"
	"github.com/san-kum/ballista/internal/integrators"
	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/metrics"
	"github.com/san-kum/ballista/internal/physics"
	"github.com/san-kum/ballista/internal/viz"
)

var (
	torque     float64
	launchAng  float64
	releaseAng float64
	omegaMax   float64
	drag       float64
	spin       float64
	air        float64
	// Ball parameters
	material string
	mass     float64
	radius   float64
	// Arm parameters
	armMass   float64
	armLength float64
	pivot     float64
	friction  float64
	// Simulation settings
	dt          float64
	maxSteps    int
	integrator  string
	bounces     int
	restitution float64
	// Config file and preset
	configFile string
	presetName string
	// Export settings
	format  string
	outFile string
	// SVG canvas size
	svgWidth  int
	svgHeight int
)

// main is the entry point for the ballista CLI; it registers commands and
// flags, launches the interactive tuner when no subcommand is given, and
// exits with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ballista",
		Short: "mechanical ball launcher lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive tuner when no command given
			return viz.RunApp()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one launch and print the summary",
		RunE:  runLaunch,
	}
	addLaunchFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "simulate one launch and plot the flight",
		RunE:  plotLaunch,
	}
	addLaunchFlags(plotCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "simulate one launch and export the trajectory",
		RunE:  exportLaunch,
	}
	addLaunchFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json, svg)")
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width in pixels")
	exportCmd.Flags().IntVar(&svgHeight, "height", 400, "svg height in pixels")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "run the same launch under several integrators",
		RunE:  compareIntegrators,
	}
	addLaunchFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list launch presets",
		RunE:  listPresets,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate one launch and replay it in the terminal",
		RunE:  liveLaunch,
	}
	addLaunchFlags(liveCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter tuner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunApp()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the launch pipeline",
		RunE:  benchLaunch,
	}
	addLaunchFlags(benchCmd)

	rootCmd.AddCommand(runCmd, plotCmd, exportCmd, compareCmd, presetsCmd, liveCmd, tuiCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&torque, "torque", config.DefaultTorque, "motor torque (Nm)")
	cmd.Flags().Float64Var(&launchAng, "launch", 0, "launch angle (rad)")
	cmd.Flags().Float64Var(&releaseAng, "release", config.DefaultReleaseAngle, "release angle (rad)")
	cmd.Flags().Float64Var(&omegaMax, "omega-max", config.DefaultMaxAngularVelocity, "angular velocity cap (rad/s)")
	cmd.Flags().Float64Var(&drag, "drag", physics.DefaultDragCoefficient, "drag coefficient")
	cmd.Flags().Float64Var(&spin, "spin", 0, "spin rate, positive is backspin (rad/s)")
	cmd.Flags().Float64Var(&air, "air", physics.DefaultAirDensity, "air density (kg/m3)")
	cmd.Flags().StringVar(&material, "material", "steel", "ball material (steel, aluminum)")
	cmd.Flags().Float64Var(&mass, "mass", 0, "explicit ball mass, overrides material (kg)")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultBallRadius, "ball radius (m)")
	cmd.Flags().Float64Var(&armMass, "arm-mass", config.DefaultArmMass, "arm mass (kg)")
	cmd.Flags().Float64Var(&armLength, "arm-length", config.DefaultArmLength, "arm length (m)")
	cmd.Flags().Float64Var(&pivot, "pivot", config.DefaultArmLength, "pivot height above ground (m)")
	cmd.Flags().Float64Var(&friction, "friction", 0, "bearing friction coefficient")
	cmd.Flags().Float64Var(&dt, "dt", launch.DefaultDt, "timestep (s)")
	cmd.Flags().IntVar(&maxSteps, "steps", launch.DefaultMaxSteps, "step bound")
	cmd.Flags().StringVar(&integrator, "integrator", integrators.DefaultName, "integrator")
	cmd.Flags().IntVar(&bounces, "bounces", 0, "bounces to simulate past the landing")
	cmd.Flags().Float64Var(&restitution, "restitution", physics.DefaultRestitution, "bounce restitution")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")
}

// buildConfig layers preset, config file and explicit flags, in that
// order of increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("torque") {
		cfg.Launch.Torque = torque
	}
	if flags.Changed("launch") {
		cfg.Launch.LaunchAngle = launchAng
	}
	if flags.Changed("release") {
		cfg.Launch.ReleaseAngle = releaseAng
	}
	if flags.Changed("omega-max") {
		cfg.Launch.MaxAngularVelocity = omegaMax
	}
	if flags.Changed("drag") {
		cfg.Launch.DragCoefficient = drag
	}
	if flags.Changed("spin") {
		cfg.Launch.SpinRate = spin
	}
	if flags.Changed("air") {
		cfg.Launch.AirDensity = air
	}
	if flags.Changed("material") {
		cfg.Ball.Material = material
	}
	if flags.Changed("mass") {
		cfg.Ball.Material = ""
		cfg.Ball.Mass = mass
	}
	if flags.Changed("radius") {
		cfg.Ball.Radius = radius
	}
	if flags.Changed("arm-mass") {
		cfg.Arm.Mass = armMass
	}
	if flags.Changed("arm-length") {
		cfg.Arm.Length = armLength
		if !flags.Changed("pivot") {
			cfg.Arm.PivotHeight = armLength
		}
	}
	if flags.Changed("pivot") {
		cfg.Arm.PivotHeight = pivot
	}
	if flags.Changed("friction") {
		cfg.Arm.Friction = friction
	}
	if flags.Changed("dt") {
		cfg.Sim.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Sim.MaxSteps = maxSteps
	}
	if flags.Changed("integrator") {
		cfg.Sim.Integrator = integrator
	}
	if flags.Changed("bounces") {
		cfg.Sim.MaxBounces = bounces
	}
	if flags.Changed("restitution") {
		cfg.Sim.Restitution = restitution
	}

	return cfg, nil
}

// simulate runs one launch under the assembled config. On a
// non-convergent abort the partial result comes back with the error so
// commands can still render the attempt.
func simulate(cmd *cobra.Command) (*config.Config, *launch.Result, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	opts.Metrics = metrics.All()

	res, err := launch.Run(cfg.Params(), cfg.BallSpec(), cfg.ArmSpec(), opts)
	return cfg, res, err
}

func runLaunch(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, res, err := simulate(cmd)
	if err != nil {
		if res == nil {
			return err
		}
		fmt.Printf("aborted: %v\n\n", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("integrator: %s (dt=%g)\n", cfg.Sim.Integrator, cfg.Sim.Dt)
	fmt.Printf("release: angle=%.4f rad  speed=%.3f m/s  t=%.4fs\n",
		res.Release.Angle, res.Release.Speed(), res.Release.Time)
	if res.Landed {
		dist, tof := res.LandingPoint()
		fmt.Printf("range: %.4f m\n", dist)
		fmt.Printf("flight time: %.4f s\n", tof)
	}
	fmt.Printf("steps: %d\n", res.Steps)
	fmt.Printf("phase: %s\n", res.Phase)
	fmt.Printf("energy drift: %.2e\n", res.EnergyDrift)

	fmt.Println("\nmetrics:")
	for name, val := range res.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func plotLaunch(cmd *cobra.Command, args []string) error {
	cfg, res, err := simulate(cmd)
	if err != nil {
		if res == nil {
			return err
		}
		fmt.Printf("aborted: %v\n\n", err)
	}

	fmt.Printf("integrator: %s\n", cfg.Sim.Integrator)
	fmt.Printf("samples: %d\n\n", len(res.Samples))

	fmt.Println(viz.TrajectoryCanvas(res.Samples, 80, 20))

	fmt.Println(viz.HeightProfile(res.Samples, 80, 10))
	fmt.Println()
	fmt.Println(viz.SpeedProfile(res.Samples, 80, 10))

	if res.Landed {
		dist, tof := res.LandingPoint()
		fmt.Printf("\nrange: %.4f m  flight time: %.4f s\n", dist, tof)
	}

	return nil
}

func exportLaunch(cmd *cobra.Command, args []string) error {
	cfg, res, err := simulate(cmd)
	if err != nil {
		if res == nil {
			return err
		}
		// Note the abort on stderr; stdout may be carrying the payload.
		fmt.Fprintf(os.Stderr, "aborted: %v\n", err)
	}

	switch format {
	case "csv":
		if outFile != "" {
			return export.ExportCSV(outFile, res.Samples)
		}
		return export.WriteCSV(os.Stdout, res.Samples)
	case "json":
		doc := export.Document(cfg.Sim.Integrator, cfg.Sim.Dt, res)
		if outFile != "" {
			return export.ExportJSON(outFile, doc)
		}
		return export.WriteJSON(os.Stdout, doc)
	case "svg":
		if outFile != "" {
			return export.ExportSVG(outFile, res.Samples, svgWidth, svgHeight, "")
		}
		fmt.Println(export.TrajectorySVG(res.Samples, svgWidth, svgHeight, ""))
		return nil
	}
	return fmt.Errorf("unknown format: %s (csv, json, svg)", format)
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = integrators.Names()
	}

	specs := make([]launch.RunSpec, 0, len(names))
	for _, name := range names {
		integ, err := integrators.New(name)
		if err != nil {
			return err
		}
		opts, err := cfg.Options()
		if err != nil {
			return err
		}
		opts.Integrator = integ
		opts.Metrics = nil
		specs = append(specs, launch.RunSpec{
			Params: cfg.Params(),
			Ball:   cfg.BallSpec(),
			Arm:    cfg.ArmSpec(),
			Opts:   opts,
		})
	}

	start := time.Now()
	outcomes := launch.Ensemble(specs)
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tRANGE\tFLIGHT\tSPEED\tSTEPS\tDRIFT")
	for i, out := range outcomes {
		if out.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", names[i], out.Err)
			continue
		}
		res := out.Result
		dist, tof := res.LandingPoint()
		fmt.Fprintf(w, "%s\t%.4f m\t%.4f s\t%.3f m/s\t%d\t%.2e\n",
			names[i], dist, tof, res.Release.Speed(), res.Steps, res.EnergyDrift)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d runs in %v\n", len(outcomes), elapsed)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTORQUE\tRELEASE\tCAP\tBALL\tDRAG\tSPIN\tBOUNCES")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		ball := p.Ball.Material
		if ball == "" {
			ball = "custom"
		}
		fmt.Fprintf(w, "%s\t%.2f Nm\t%.2f rad\t%.1f rad/s\t%s\t%.2f\t%.0f rad/s\t%d\n",
			name, p.Launch.Torque, p.Launch.ReleaseAngle, p.Launch.MaxAngularVelocity,
			ball, p.Launch.DragCoefficient, p.Launch.SpinRate, p.Sim.MaxBounces)
	}

	return w.Flush()
}

func liveLaunch(cmd *cobra.Command, args []string) error {
	cfg, res, err := simulate(cmd)
	if err != nil {
		if res == nil {
			return err
		}
		fmt.Printf("aborted: %v\n", err)
	}
	return viz.RunReplay(res, cfg.ArmSpec())
}

func benchLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	dts := []float64{1e-2, 1e-3, 1e-4}

	fmt.Println("benchmarking launch pipeline")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, name := range integrators.Names() {
		for _, d := range dts {
			integ, err := integrators.New(name)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts.Integrator = integ
			opts.Dt = d
			opts.Metrics = nil

			start := time.Now()
			res, err := launch.Run(cfg.Params(), cfg.BallSpec(), cfg.ArmSpec(), opts)
			elapsed := time.Since(start)

			if err != nil {
				fmt.Fprintf(w, "%s\t%.0e\terror: %v\n", name, d, err)
				continue
			}

			stepsPerSec := float64(res.Steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%.0e\t%d\t%v\t%.0f\n", name, d, res.Steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
