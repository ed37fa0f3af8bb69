// Package core provides the graph entities shared by per-node edge stores:
// nodes, edges, edge identifiers and the global edge Registry that owns them.
//
// Ownership model:
//
//   - The Registry is the canonical owner of every *Edge.
//   - Per-node stores (package edgestore) hold the same *Edge pointers for
//     fast local lookup; they never copy edges.
//   - Edge identity is pointer identity. Two *Edge values with equal UID but
//     different addresses are different edges as far as identity removal goes.
//   - Node identity is pointer identity as well; Node.ID is only a label.
//
// Payloads:
//
//	Edge[W] carries a payload constrained by Weight = Numeric | Unweighted.
//	Use Edge[core.Unweighted] for unweighted graphs, Edge[int64] or
//	Edge[float64] for weighted ones. The core layer never does arithmetic on W.
//
// Registry methods:
//
//	AddEdge(from, to *Node, w W) (*Edge[W], error) // O(1)
//	RemoveEdge(uid EdgeUID) error                   // O(1)
//	GetEdge(uid EdgeUID) (*Edge[W], error)          // O(1)
//	HasEdge(uid EdgeUID) bool                       // O(1)
//	EdgeCount() int                                 // O(1)
//	Edges() []*Edge[W]                              // O(E log E), sorted by UID
//	View(fn func(map[EdgeUID]*Edge[W]))             // live catalog under read lock
//
// EdgeUIDs come from a per-registry atomic counter ("e1", "e2", …) and are
// therefore unique within one registry and totally ordered.
//
// Errors:
//
//	ErrNilNode        – nil endpoint passed to AddEdge
//	ErrEdgeNotFound   – missing uid in GetEdge/RemoveEdge
//	ErrLoopNotAllowed – self-loop on a registry built without WithLoops
package core
