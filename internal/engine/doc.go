// Package engine defines the numerical core shared by every simulation
// stage: spin-up, flight and the metrics observing them.
//
// The package holds only interfaces and the state vector type:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Hamiltonian]: optional total-energy hook on a System
//   - [Integrator]: numerical stepping interface
//   - [Controller]: torque source driving the arm
//   - [Metric]: streaming observer over visited states
//
// # Thread Safety
//
// State values are plain slices and share no hidden structure; each
// concurrent run must work on its own State. The launch package's
// Ensemble arranges that.
package engine
