// Package outedges is the per-node outgoing-edge registry of a directed graph
// engine: each node keeps a map from edge UID to edge, can share that map with
// other holders, and can rebuild it in bulk from the global edge catalog.
//
// What is inside?
//
//	core/      - EdgeUID, Node, Edge[W] and the global Registry[W] that allocates UIDs
//	edgestore/ - Store[W]: point operations, identity removal, shared maps, Discover
//	parallel/  - execution strategies; the default is chosen by build constraints
//	builder/   - deterministic fixture registries (Star, Path, Cycle, Complete, RandomSparse)
//	examples/  - runnable road-network demo
//
// Quick ASCII example:
//
//	    A ──e1──▶ B
//	    │         │
//	   e3        e2
//	    ▼         ▼
//	    C ◀───────┘
//
//	Discover on A's store yields {e1, e3}; B's store is untouched.
//
// Concurrency in one line: Discover is safe to run concurrently on stores that
// share a map; Add and Remove are not synchronized and need external ordering.
//
// Build with -tags outedges_sequential (or for js/wasip1) to force the
// sequential strategy.
//
//	go get github.com/katalvlaran/outedges
package outedges
