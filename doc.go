// Package chainprune prunes low-support chains out of read-derived
// assembly multigraphs before variant calling.
//
// An assembly multigraph carries one edge per observed k-mer adjacency,
// weighted by the number of supporting reads (its multiplicity) and
// flagged when it lies on the reference backbone. Decomposed into
// maximal non-branching runs ("chains"), most low-multiplicity chains
// are sequencing or PCR noise, but some are genuine minority variants.
// Telling the two apart is what this module does.
//
// The work is organized under three subpackages:
//
//	multigraph/ — graph capability surface, a concrete assembly
//	              multigraph, chain values, and chain discovery
//	llr/        — the junction log-likelihood-ratio statistic that
//	              scores a branch against the sequencing-error model
//	prune/      — the pruners: an adaptive two-round classifier that
//	              re-estimates the error rate from the data, and a
//	              fixed-threshold fallback
//
// Typical flow:
//
//	g := multigraph.New()
//	// ... populate g from the read evidence ...
//	chains := multigraph.FindChains(g)
//	pruner, err := prune.NewAdaptivePruner[string, *multigraph.KmerEdge](0.001, 2.0, 10)
//	if err != nil { ... }
//	doomed := pruner.ChainsToRemove(g, chains)
//	// hand doomed to the graph-mutation step
//
// Pruners never remove reference-bearing chains, never mutate the
// graph, and are pure functions of their inputs: one invocation holds
// no shared state, so independent assembly regions may be pruned
// concurrently by the caller.
package chainprune
