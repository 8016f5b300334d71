package metrics

import "github.com/san-kum/ballista/internal/engine"

// All returns one fresh instance of every flight metric.
func All() []engine.Metric {
	return []engine.Metric{NewApex(), NewPeakSpeed(), NewPathLength()}
}
