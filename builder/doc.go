// Package builder generates deterministic edge registries for tests,
// benchmarks and examples of outedges.
//
// A fixture is a core.Registry populated by one or more constructors, plus
// the label → *core.Node index the constructors used. Constructors compose:
// nodes with the same label are the same *core.Node across constructors.
//
// Components:
//
//   - BuildRegistry(ropts, bopts, wf, cons...) – the single orchestrator.
//   - Constructors (all directed, no self-loops):
//     – Star(n):            Center↔leaf spokes, 2(n-1) edges.
//     – Path(n):            0→1→…→n-1, n-1 edges.
//     – Cycle(n):           0→1→…→n-1→0, n edges.
//     – Complete(n):        every ordered pair, n(n-1) edges.
//     – RandomSparse(n,p):  each ordered pair with probability p.
//   - Node label schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//   - Payload generators (WeightFn[W]): ZeroWeightFn, UnweightedFn,
//     ConstantWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ same labels, UIDs, endpoints.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
package builder
