package prune

import "github.com/strandlab/chainprune/multigraph"

// LowWeightPruner is the fixed-threshold fallback strategy: a chain is
// condemned when every one of its edges has multiplicity strictly
// below pruneFactor. No error model, no junction statistics; the
// AdaptivePruner supersedes it wherever coverage varies across the
// region, but a constant bar is still useful for uniform-coverage
// assemblies and as a cheap baseline.
//
// Reference-bearing chains are kept here too.
type LowWeightPruner[V comparable, E multigraph.Edge] struct {
	pruneFactor int
}

var _ Pruner[string, *multigraph.KmerEdge] = (*LowWeightPruner[string, *multigraph.KmerEdge])(nil)

// NewLowWeightPruner builds a LowWeightPruner with the given
// multiplicity bar; pruneFactor must be ≥ 0 (ErrNegativePruneFactor).
// A pruneFactor of 0 condemns nothing.
func NewLowWeightPruner[V comparable, E multigraph.Edge](pruneFactor int) (*LowWeightPruner[V, E], error) {
	if pruneFactor < 0 {
		return nil, ErrNegativePruneFactor
	}

	return &LowWeightPruner[V, E]{pruneFactor: pruneFactor}, nil
}

// ChainsToRemove returns, in the caller's chain order, every chain
// whose edges all fall below the bar and which carries no reference
// edge. The graph view is unused; it is accepted to satisfy Pruner.
//
// Complexity: O(total chain edges).
func (p *LowWeightPruner[V, E]) ChainsToRemove(
	_ multigraph.Graph[V, E],
	chains []*multigraph.Chain[V, E],
) []*multigraph.Chain[V, E] {
	var doomed []*multigraph.Chain[V, E]
	for _, c := range chains {
		if c.MaxMultiplicity() < p.pruneFactor && !c.ContainsReference() {
			doomed = append(doomed, c)
		}
	}

	return doomed
}
