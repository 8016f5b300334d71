package launch_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/physics"
	"github.com/san-kum/ballista/internal/vec"
)

var _ = Describe("Flight properties", func() {
	var (
		params launch.LaunchParameters
		ball   physics.Ball
		arm    physics.Arm
		opts   launch.Options
	)

	BeforeEach(func() {
		params = launch.LaunchParameters{
			Torque:             5,
			ReleaseAngle:       math.Pi / 4,
			MaxAngularVelocity: 10,
			AirDensity:         1.2,
		}
		ball = physics.NewBall(0.5, 0.05)
		arm = physics.UniformRodArm(3, 1)
		opts = launch.DefaultOptions()
		opts.Dt = 1e-4
	})

	// shoot flies a hand-placed ground-level release to touchdown.
	shoot := func(speed, angle, spin float64) launch.TrajectorySample {
		rel := launch.ReleaseState{
			Angle:    angle,
			Velocity: vec.New(speed*math.Cos(angle), speed*math.Sin(angle)),
			Spin:     spin,
		}
		traj, err := launch.NewTrajectory(rel, ball, params, opts)
		Expect(err).NotTo(HaveOccurred())
		for traj.Next() {
		}
		Expect(traj.Err()).NotTo(HaveOccurred())
		landing, ok := traj.Landing()
		Expect(ok).To(BeTrue(), "flight must reach the ground")
		return landing
	}

	It("matches the closed-form range for ground-level vacuum launches", func() {
		const speed = 6.0
		for _, angle := range []float64{math.Pi / 6, math.Pi / 4, math.Pi / 3} {
			landing := shoot(speed, angle, 0)
			want := speed * speed * math.Sin(2*angle) / opts.Gravity
			Expect(landing.Position.X).To(BeNumerically("~", want, want*0.005))
		}
	})

	It("lands complementary launch angles at the same distance", func() {
		low := shoot(6, math.Pi/6, 0)
		high := shoot(6, math.Pi/3, 0)
		Expect(low.Position.X).To(BeNumerically("~", high.Position.X, high.Position.X*0.005))
	})

	It("conserves energy through a vacuum flight", func() {
		res, err := launch.Run(params, ball, arm, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.EnergyDrift).To(BeNumerically("<", 1e-3))
	})

	It("strictly shortens the range as drag grows", func() {
		light := physics.NewBall(0.05, 0.05)
		prev := math.Inf(1)
		for _, cd := range []float64{0, 0.25, 0.5, 1.0} {
			p := params
			p.DragCoefficient = cd
			res, err := launch.Run(p, light, arm, opts)
			Expect(err).NotTo(HaveOccurred())
			dist, _ := res.LandingPoint()
			Expect(dist).To(BeNumerically("<", prev), "cd %g must land shorter", cd)
			prev = dist
		}
	})

	It("orders landing distance by spin direction", func() {
		backspin := shoot(6, math.Pi/4, 3)
		flat := shoot(6, math.Pi/4, 0)
		topspin := shoot(6, math.Pi/4, -3)
		Expect(backspin.Position.X).To(BeNumerically(">", flat.Position.X))
		Expect(topspin.Position.X).To(BeNumerically("<", flat.Position.X))
	})

	It("never releases faster than the cap allows", func() {
		for _, torque := range []float64{1, 5, 500} {
			p := params
			p.Torque = torque
			rel, err := launch.SpinUp(p, arm, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(rel.Speed()).To(BeNumerically("<=", p.MaxAngularVelocity*arm.Length+1e-9))
		}

		// An oversized motor pins the arm at the cap exactly.
		p := params
		p.Torque = 500
		rel, err := launch.SpinUp(p, arm, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(rel.AngularVelocity).To(Equal(p.MaxAngularVelocity))
	})
})
