// Package launch is the simulation engine's public surface: it turns an
// immutable parameter snapshot into a release state ([SpinUp]), steps the
// ball's flight until landing ([Trajectory], [Run]), and reports the
// interpolated landing point.
//
// A full run is synchronous and owns all of its state, so independent runs
// may execute concurrently without coordination. Consumers choose between
// pull ([NewTrajectory] + Next), push ([Run] materializes every sample), and
// streaming ([RunWithCallback]); all three drive the same stepping function.
//
// Failures are explicit results, never panics:
//
//	res, err := launch.Run(p, ball, arm, launch.DefaultOptions())
//	switch {
//	case errors.Is(err, launch.ErrInvalidConfiguration):
//	    // bad input, no partial result
//	case errors.Is(err, launch.ErrNonConvergent):
//	    // res still holds the partial sample sequence
//	}
package launch
