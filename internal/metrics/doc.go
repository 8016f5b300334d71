// Package metrics provides flight metrics that observe trajectory
// samples as they are produced and reduce them to a single value.
package metrics
