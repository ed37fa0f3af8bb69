// SPDX-License-Identifier: MIT
// Package core defines the graph entities consumed by per-node edge stores:
// EdgeUID, Node, Edge, the Weight constraint and the global edge Registry.
//
// This file declares the types, sentinel errors and RegistryOption values.
//
// Errors:
//
//	ErrNilNode        - an edge endpoint is nil.
//	ErrEdgeNotFound   - requested edge does not exist in the registry.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core registry operations.
var (
	// ErrNilNode indicates that an edge endpoint was nil.
	ErrNilNode = errors.New("core: nil node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// edgeUIDPrefix is the textual prefix used by EdgeUID.String ("e1", "e2", ...).
const edgeUIDPrefix = 'e'

// EdgeUID uniquely identifies an edge within one Registry.
// It is totally ordered and hashable; zero is never issued.
type EdgeUID uint64

// String renders the UID as "e<N>" without fmt allocations.
func (u EdgeUID) String() string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeUIDPrefix)
	buf = strconv.AppendUint(buf, uint64(u), 10)

	return string(buf)
}

// Numeric lists the payload types a weighted edge may carry.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Unweighted is the empty payload of edges in unweighted graphs.
type Unweighted struct{}

// Weight is the constraint on edge payloads: a number or nothing at all.
// No arithmetic is defined on it at this layer.
type Weight interface {
	Numeric | Unweighted
}

// Node is a graph vertex. Nodes are compared by pointer identity;
// ID is informational and need not be unique.
type Node struct {
	// ID is a human-readable label.
	ID string
}

// NewNode returns a fresh Node with the given label.
func NewNode(id string) *Node {
	return &Node{ID: id}
}

// Edge connects two nodes. It is shared by pointer between the Registry
// (its owner) and any number of per-node stores, so *Edge identity is the
// edge's identity.
type Edge[W Weight] struct {
	// UID uniquely identifies this edge in its Registry.
	UID EdgeUID

	// From is the source node.
	From *Node

	// To is the destination node.
	To *Node

	// Weight is the optional payload.
	Weight W
}

// RegistryOption configures a Registry before first use.
type RegistryOption func(c *registryConfig)

// registryConfig holds construction-time policy flags.
type registryConfig struct {
	allowLoops bool // allow self-loops
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() RegistryOption {
	return func(c *registryConfig) { c.allowLoops = true }
}

// Registry is the canonical owner of every edge of a graph.
//
// mu guards edges; uidSeq is an atomic counter for EdgeUID generation.
type Registry[W Weight] struct {
	mu sync.RWMutex // guards edges

	allowLoops bool

	uidSeq uint64               // atomic EdgeUID generator
	edges  map[EdgeUID]*Edge[W] // uid → Edge
}

// NewRegistry creates an empty Registry. Self-loops are rejected unless
// WithLoops is given.
// Complexity: O(len(opts)).
func NewRegistry[W Weight](opts ...RegistryOption) *Registry[W] {
	var cfg registryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Registry[W]{
		allowLoops: cfg.allowLoops,
		edges:      make(map[EdgeUID]*Edge[W]),
	}
}
