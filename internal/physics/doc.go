// Package physics provides the dynamical models of the ball launcher.
//
// Two systems implement the [engine.System] interface:
//
//   - [ArmDynamics]: rotational dynamics of the motor-driven launcher arm
//   - [FlightDynamics]: planar ball flight under gravity, quadratic drag,
//     and Magnus lift
//
// [FlightDynamics] also implements [engine.Hamiltonian]; with drag and spin
// disabled its energy is conserved, which the run loop uses to report
// integration drift:
//
//	fd := physics.NewFlightDynamics(ball)
//	e := fd.Energy(state)
package physics
