package launch

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ballista/internal/physics"
	"github.com/san-kum/ballista/internal/vec"
)

func testParams() LaunchParameters {
	return LaunchParameters{
		Torque:             5,
		LaunchAngle:        0,
		ReleaseAngle:       math.Pi / 4,
		MaxAngularVelocity: 10,
		DragCoefficient:    0,
		SpinRate:           0,
		AirDensity:         1.2,
	}
}

func testArm() physics.Arm {
	return physics.UniformRodArm(3, 1) // I = 1
}

func testBall() physics.Ball {
	return physics.NewBall(0.5, 0.05)
}

func TestRunLands(t *testing.T) {
	res, err := Run(testParams(), testBall(), testArm(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Phase != PhaseLanded {
		t.Fatalf("expected landed phase, got %v", res.Phase)
	}
	if !res.Landed {
		t.Fatal("expected a recorded landing sample")
	}
	if res.Landing.Position.Y != 0 {
		t.Errorf("landing must sit on the ground, got y=%g", res.Landing.Position.Y)
	}
	if len(res.Samples) < 2 {
		t.Fatalf("expected a sample sequence, got %d samples", len(res.Samples))
	}

	first := res.Samples[0]
	if first.Time != 0 || first.Position != res.Release.Position {
		t.Errorf("sequence must start at the release sample, got %+v", first)
	}
	last := res.Samples[len(res.Samples)-1]
	if last != res.Landing {
		t.Errorf("sequence must end with the landing sample")
	}

	dist, tof := res.LandingPoint()
	if dist <= 0 || tof <= 0 {
		t.Errorf("expected positive landing point, got (%f, %f)", dist, tof)
	}
}

func TestSampleTimesStrictlyIncrease(t *testing.T) {
	res, err := Run(testParams(), testBall(), testArm(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(res.Samples); i++ {
		if res.Samples[i].Time <= res.Samples[i-1].Time {
			t.Fatalf("sample %d time %.9f not after %.9f", i, res.Samples[i].Time, res.Samples[i-1].Time)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a, err := Run(testParams(), testBall(), testArm(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Run(testParams(), testBall(), testArm(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("sample counts differ: %d vs %d", len(a.Samples), len(b.Samples))
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a.Samples[i], b.Samples[i])
		}
	}
	if a.Release != b.Release || a.Landing != b.Landing {
		t.Error("release and landing must be bit-identical across runs")
	}
}

func TestInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LaunchParameters, *physics.Ball, *physics.Arm)
	}{
		{"zero torque", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { p.Torque = 0 }},
		{"equal angles", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { p.ReleaseAngle = p.LaunchAngle }},
		{"release before launch", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) {
			p.LaunchAngle = 1
			p.ReleaseAngle = 0.5
		}},
		{"negative cap", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { p.MaxAngularVelocity = -1 }},
		{"negative drag", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { p.DragCoefficient = -0.1 }},
		{"zero air density", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { p.AirDensity = 0 }},
		{"nan torque", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { p.Torque = math.NaN() }},
		{"zero ball mass", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { b.Mass = 0 }},
		{"zero ball radius", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { b.Radius = 0 }},
		{"zero arm inertia", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { a.Inertia = 0 }},
		{"zero arm length", func(p *LaunchParameters, b *physics.Ball, a *physics.Arm) { a.Length = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			ball := testBall()
			arm := testArm()
			tt.mutate(&p, &ball, &arm)

			res, err := Run(p, ball, arm, DefaultOptions())
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
			if res != nil {
				t.Error("invalid configuration must not produce a partial result")
			}

			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("expected a ConfigError, got %T", err)
			}
		})
	}
}

func TestNonConvergentFlight(t *testing.T) {
	// Near-zero gravity keeps the ball aloft past a tiny step bound.
	p := testParams()
	p.ReleaseAngle = p.LaunchAngle + 0.01

	opts := DefaultOptions()
	opts.Gravity = 1e-9
	opts.MaxSteps = 200

	res, err := Run(p, testBall(), testArm(), opts)
	if !errors.Is(err, ErrNonConvergent) {
		t.Fatalf("expected ErrNonConvergent, got %v", err)
	}
	if res == nil {
		t.Fatal("non-convergent run must surface the partial result")
	}
	if res.Phase != PhaseAborted {
		t.Errorf("expected aborted phase, got %v", res.Phase)
	}
	if len(res.Samples) == 0 {
		t.Error("partial result must carry the samples accumulated so far")
	}
	if res.Landed {
		t.Error("aborted flight must not report a landing")
	}
	if d, tof := res.LandingPoint(); d != 0 || tof != 0 {
		t.Errorf("landing point of an aborted run must be zero, got (%f, %f)", d, tof)
	}
}

func TestNonConvergentSpinUp(t *testing.T) {
	p := testParams()
	opts := DefaultOptions()
	opts.MaxSteps = 10 // far too few to sweep pi/4

	_, err := SpinUp(p, testArm(), opts)
	if !errors.Is(err, ErrNonConvergent) {
		t.Fatalf("expected ErrNonConvergent, got %v", err)
	}

	res, err := Run(p, testBall(), testArm(), opts)
	if !errors.Is(err, ErrNonConvergent) || res != nil {
		t.Errorf("run must fail before flight with no result, got res=%v err=%v", res, err)
	}
}

func TestAngularVelocityCap(t *testing.T) {
	p := testParams()
	p.Torque = 500 // reaches the cap well before the release angle
	arm := testArm()

	rel, err := SpinUp(p, arm, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rel.AngularVelocity != p.MaxAngularVelocity {
		t.Errorf("expected pinned angular velocity %f, got %f", p.MaxAngularVelocity, rel.AngularVelocity)
	}
	if speed := rel.Speed(); speed > p.MaxAngularVelocity*arm.Length+1e-9 {
		t.Errorf("release speed %f exceeds cap %f", speed, p.MaxAngularVelocity*arm.Length)
	}
}

func TestReleaseInterpolation(t *testing.T) {
	p := testParams()
	rel, err := SpinUp(p, testArm(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rel.Angle != p.ReleaseAngle {
		t.Errorf("reported release angle must be exact: got %.12f, expected %.12f", rel.Angle, p.ReleaseAngle)
	}

	// Continuous solution from rest: t = sqrt(2*theta*I/tau).
	want := math.Sqrt(2 * p.ReleaseAngle * 1.0 / p.Torque)
	if math.Abs(rel.Time-want) > 5e-3 {
		t.Errorf("release time: got %.5f, expected about %.5f", rel.Time, want)
	}

	// Velocity is tangent to the rotation at the release angle.
	along := vec.New(math.Cos(rel.Angle), math.Sin(rel.Angle))
	if dot := rel.Velocity.Dot(along); math.Abs(dot) > 1e-9 {
		t.Errorf("release velocity must be perpendicular to the arm, dot=%e", dot)
	}
}

func TestExampleScenario(t *testing.T) {
	// Known scenario: the unclamped arm releases at sqrt(2*alpha*theta)
	// and a ground-level 45 degree vacuum launch covers v^2/g.
	p := testParams() // torque 5, release pi/4, cap 10, Cd 0, spin 0
	arm := testArm()  // L = 1, I = 1
	sin, _ := math.Sincos(math.Pi / 4)
	arm.PivotHeight = -sin // release point exactly at ground level

	opts := DefaultOptions()
	opts.Dt = 1e-4

	res, err := Run(p, testBall(), arm, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSpeed := math.Min(math.Sqrt(2*p.Torque*p.ReleaseAngle), p.MaxAngularVelocity)
	speed := res.Release.Speed()
	if math.Abs(speed-wantSpeed)/wantSpeed > 0.01 {
		t.Errorf("release speed: got %.5f, expected %.5f within 1%%", speed, wantSpeed)
	}

	if res.Release.Position.Y != 0 {
		t.Fatalf("scenario requires a ground-level release, got y=%g", res.Release.Position.Y)
	}

	dist, _ := res.LandingPoint()
	wantDist := speed * speed * math.Sin(2*math.Pi/4) / opts.Gravity
	if math.Abs(dist-wantDist)/wantDist > 0.01 {
		t.Errorf("landing distance: got %.5f, expected %.5f within 1%%", dist, wantDist)
	}
}

func TestEnsemble(t *testing.T) {
	base := RunSpec{Params: testParams(), Ball: testBall(), Arm: testArm(), Opts: DefaultOptions()}

	specs := []RunSpec{base, base, base, base}
	outcomes := Ensemble(specs)

	if len(outcomes) != len(specs) {
		t.Fatalf("expected %d outcomes, got %d", len(specs), len(outcomes))
	}
	for i, out := range outcomes {
		if out.Err != nil {
			t.Fatalf("outcome %d failed: %v", i, out.Err)
		}
	}

	// Identical snapshots land identically even when run concurrently.
	first := outcomes[0].Result
	for _, out := range outcomes[1:] {
		if len(out.Result.Samples) != len(first.Samples) {
			t.Fatal("concurrent identical runs must produce identical sequences")
		}
		if out.Result.Landing != first.Landing {
			t.Fatal("concurrent identical runs must land identically")
		}
	}

	// Distinct torques keep their slots.
	varied := []RunSpec{base, base, base}
	varied[1].Params.Torque = 2
	varied[2].Params.Torque = 8
	got := Ensemble(varied)
	d0, _ := got[0].Result.LandingPoint()
	d1, _ := got[1].Result.LandingPoint()
	d2, _ := got[2].Result.LandingPoint()
	if !(d1 < d0 && d0 < d2) {
		t.Errorf("expected distance to grow with torque: %f, %f, %f", d1, d0, d2)
	}
}
