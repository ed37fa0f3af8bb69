// Package edgestore implements the per-node registry of outgoing edges.
//
// A Store belongs to one node (its owner) and maps core.EdgeUID to the shared
// *core.Edge held by the graph's core.Registry. The store never owns edges:
// dropping a store only drops its references.
//
// Shared storage:
//
//	The map itself lives behind an *EdgeMap handle. New(owner, nil) allocates
//	a private map; New(owner, other.Map()) adopts an existing one, after which
//	both stores observe each other's Add/Remove immediately. The handle stays
//	alive as long as any store (or caller) references it.
//
// Operations:
//
//	Size() int                                   // O(1)
//	Get(uid) (*core.Edge[W], error)              // O(1); ErrEdgeNotFound
//	Has(uid) bool                                // O(1)
//	Add(e)                                       // O(1); insert, never overwrite
//	RemoveID(uid)                                // O(1); silent if absent
//	RemoveEdge(e)                                // pointer identity; silent if absent
//	Edges() []*core.Edge[W]                      // O(k log k), sorted by UID
//	Discover(map[core.EdgeUID]*core.Edge[W])     // bulk rebuild, see below
//	DiscoverFrom(*core.Registry[W])              // Discover under registry read lock
//
// Add trusts its caller: it does not check that e.From is the owner.
// Discover does, by pointer identity on the node.
//
// Discover:
//
//  1. Copy the catalog values into a slice, then scan it with the configured
//     parallel.Strategy, testing e.From == owner.
//
//  2. Each match is appended to a scan-local buffer under its own mutex,
//     one short critical section per match.
//
//  3. After the scan returns, merge the buffer into the EdgeMap while holding
//     the EdgeMap's merge lock, with the same no-overwrite rule as Add.
//
// The result is the same set of edges whichever strategy runs.
//
// Concurrency contract:
//
//	Discover is internally synchronized: concurrent Discover calls on stores
//	that share one EdgeMap are safe. Size/Get/Has/Add/RemoveID/RemoveEdge/Edges
//	take no lock. Callers that run them concurrently with each other, or with
//	an in-flight Discover on the same EdgeMap, must serialize externally.
//
// Errors:
//
//	ErrEdgeNotFound – Get on an absent uid. Every other operation is total.
package edgestore
