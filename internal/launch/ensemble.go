package launch

import (
	"sync"

	"github.com/san-kum/ballista/internal/physics"
)

// RunSpec bundles everything one independent run needs. Each spec must own
// its inputs: a fresh parameter snapshot and, if set explicitly, its own
// Integrator instance.
type RunSpec struct {
	Params LaunchParameters
	Ball   physics.Ball
	Arm    physics.Arm
	Opts   Options
}

type RunOutcome struct {
	Result *Result
	Err    error
}

// Ensemble executes the specs concurrently, one goroutine per run, and
// returns outcomes in spec order. Runs share no state, so no further
// synchronization is involved.
func Ensemble(specs []RunSpec) []RunOutcome {
	outcomes := make([]RunOutcome, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(idx int, rs RunSpec) {
			defer wg.Done()
			outcomes[idx].Result, outcomes[idx].Err = Run(rs.Params, rs.Ball, rs.Arm, rs.Opts)
		}(i, spec)
	}
	wg.Wait()

	return outcomes
}
