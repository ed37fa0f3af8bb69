//go:build !(js || wasip1 || outedges_sequential)

package parallel

// ParallelSupported reports that this build schedules bulk scans on
// multiple goroutines.
const ParallelSupported = true

// Default is the strategy chosen for this build target.
var Default Strategy = NewParallel(0)
