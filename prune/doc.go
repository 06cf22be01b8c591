// Package prune decides which low-support chains of an assembly
// multigraph are sequencing noise and should be excised before variant
// calling.
//
// Two strategies satisfy the Pruner interface:
//
//   - AdaptivePruner: the default. It seeds "definitely good" chains by
//     raw edge-weight dominance, grows the good set to a fixed point by
//     testing junction log-odds against chains already deemed good,
//     re-estimates the per-base error rate from the chains the first
//     round condemned, classifies again at the estimated rate, and
//     finally caps how many minority-branch variants survive.
//   - LowWeightPruner: the fixed-threshold fallback: a chain dies when
//     every one of its edges falls below a constant multiplicity.
//
// Both never select a chain carrying a reference edge, never mutate
// the graph, and are pure functions of their inputs: all working state
// lives for a single ChainsToRemove call, so a caller may prune
// independent assembly regions concurrently with one pruner per region
// or one shared pruner, as convenient.
//
// Determinism
//
//	Classification passes, ranking ties, and the result all follow the
//	caller's chain order, so a given graph and chain list always yields
//	the same removal set. Note that pass order is semantically load
//	bearing: vertices that join the good frontier mid-pass are visible
//	to chains later in the same pass.
//
// Complexity per invocation: O(E + C·P) for E graph edges, C chains
// and P propagation passes (P ≤ C; each non-empty pass strictly
// shrinks the working set).
package prune
