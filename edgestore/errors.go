// SPDX-License-Identifier: MIT
// Package: outedges/edgestore
//
// errors.go - sentinel errors for the edgestore package.
//
// Error policy:
//   • Only Get can fail; removal of absent entries, duplicate inserts and
//     empty rebuilds are silent no-ops.
//   • Callers branch with errors.Is(err, ErrEdgeNotFound); context is attached
//     with %w and never baked into the sentinel.

package edgestore

import "errors"

// ErrEdgeNotFound indicates Get was asked for a uid the store does not hold.
// Absence may be perfectly expected by the caller, so the store reports it
// and lets the caller decide.
var ErrEdgeNotFound = errors.New("edgestore: edge not found")
