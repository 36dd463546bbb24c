// Package builder provides “functional-options”-style graph generators for the
// int-indexed core.Graph. Every generator is a Constructor applied by
// BuildGraph; each family also has a New* wrapper that sizes the graph for it.
//
// The package offers the following key components:
//
//   - Deterministic families (fixed edge sets, no RNG):
//     – Complete, Cycle, Path, Star, Wheel, CompleteBipartite, Grid.
//     – Petersen and the five Platonic solids (PlatonicSolid).
//     – Tiered and SimulatedValidatorNetwork (layered validator topologies).
//   - Randomized families (need WithSeed, WithRand or WithEntropy):
//     – RandomSparse:   Erdős–Rényi G(n,p).
//     – RandomRegular:  d-regular via stub matching.
//     – BarabasiAlbert: preferential attachment.
//     – Gossip:         ring plus random long links and coordinator fan-out.
//     – Sharded:        shard-local density with guaranteed global connectivity.
//   - Name-addressed access: Family, Params and ByName.
//
// Guarantees:
//
//   - Deterministic families insert straight through AddEdge, so misuse
//     surfaces the core sentinels (Cycle(1) → core.ErrSelfLoop,
//     Cycle(2) → core.ErrDuplicateEdge, n ≤ 0 → core.ErrInvalidSize).
//   - Randomized families validate parameters first and return builder
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - Same parameters and seed ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves never panic.
//
// See individual function documentation for detailed contracts and complexity.
package builder
