// Package motor provides torque sources for the launcher arm.
//
// Motors implement the [engine.Controller] interface and see the arm state
// [theta, omega] each step:
//
//   - [Constant]: full torque while the arm is below the angular velocity
//     cap, zero once pinned
//   - [Servo]: proportional taper toward the cap for a smoother approach
//
// # Usage
//
//	m := motor.NewConstant(5.0, 10.0) // torque, cap
//	u := m.Compute(engine.State{theta, omega}, t)
package motor
