//go:build js || wasip1 || outedges_sequential

package parallel

// ParallelSupported reports that this build runs bulk scans on the calling
// goroutine only. js and wasip1 have no OS threads to spread work over.
const ParallelSupported = false

// Default is the strategy chosen for this build target.
var Default Strategy = Sequential{}
