package prune

import (
	"math"
	"sort"

	"github.com/strandlab/chainprune/llr"
	"github.com/strandlab/chainprune/multigraph"
)

// thresholdDivisor sets the definite-good seeding bar: a chain with an
// edge above maxEdgeWeight/thresholdDivisor is kept without statistics.
const thresholdDivisor = 10

// AdaptivePruner classifies chains in two rounds: a bootstrap round at
// a prior error rate, then a refinement round at the error rate
// estimated from the bootstrap's condemned chains. Configuration is
// immutable for the life of the pruner; all classification state is
// local to one ChainsToRemove call.
type AdaptivePruner[V comparable, E multigraph.Edge] struct {
	initialErrorProbability float64
	logOddsThreshold        float64
	maxUnprunedVariants     int
	logOdds                 llr.Func
}

var _ Pruner[string, *multigraph.KmerEdge] = (*AdaptivePruner[string, *multigraph.KmerEdge])(nil)

// NewAdaptivePruner builds an AdaptivePruner.
//
//   - initialErrorProbability: prior per-base error rate for the
//     bootstrap round; must be > 0 (ErrNonPositiveErrorProbability).
//   - logOddsThreshold: minimum junction log-odds for a chain to be
//     rescued as real during propagation.
//   - maxUnprunedVariants: cap on retained non-reference minority
//     branches; must be ≥ 0 (ErrNegativeVariantCap).
func NewAdaptivePruner[V comparable, E multigraph.Edge](
	initialErrorProbability, logOddsThreshold float64,
	maxUnprunedVariants int,
	opts ...Option,
) (*AdaptivePruner[V, E], error) {
	if initialErrorProbability <= 0 {
		return nil, ErrNonPositiveErrorProbability
	}
	if maxUnprunedVariants < 0 {
		return nil, ErrNegativeVariantCap
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AdaptivePruner[V, E]{
		initialErrorProbability: initialErrorProbability,
		logOddsThreshold:        logOddsThreshold,
		maxUnprunedVariants:     maxUnprunedVariants,
		logOdds:                 cfg.logOdds,
	}, nil
}

// ChainsToRemove returns the chains condemned as sequencing noise, in
// the caller's chain order. Chains carrying a reference edge are never
// returned, whatever their classification. An empty chain list yields
// an empty result.
func (p *AdaptivePruner[V, E]) ChainsToRemove(
	g multigraph.Graph[V, E],
	chains []*multigraph.Chain[V, E],
) []*multigraph.Chain[V, E] {
	if len(chains) == 0 {
		return nil
	}

	// Round 1: classify at the prior rate, then estimate the realized
	// error rate from the condemned chains. Only the last edge of each
	// condemned chain contributes to the error count (junction-adjacent
	// support is the error signal) while the denominator counts every
	// base of every chain. The asymmetry keeps the estimate conservative.
	bootstrap := p.classify(g, chains, p.initialErrorProbability)

	errorCount := 0
	for _, c := range chains {
		if _, bad := bootstrap.errSet[c]; bad {
			errorCount += c.LastEdge().Multiplicity()
		}
	}
	totalBases := 0
	for _, c := range chains {
		totalBases += c.TotalMultiplicity()
	}
	errorRate := 0.0
	if totalBases > 0 {
		errorRate = float64(errorCount) / float64(totalBases)
	}

	// Round 2: reclassify at the estimated rate and cap the surviving
	// minority-branch variants.
	refined := p.classify(g, chains, errorRate)
	p.enforceVariantCap(g, chains, refined)

	removable := make([]*multigraph.Chain[V, E], 0, len(refined.errSet))
	for _, c := range chains {
		if _, bad := refined.errSet[c]; bad && !c.ContainsReference() {
			removable = append(removable, c)
		}
	}

	return removable
}

// oddsPair caches a chain's junction log-odds for one round: left is
// scored at the first vertex against its outgoing total, right at the
// last vertex against its incoming total. A side at the graph boundary
// (source on the left, sink on the right) scores 0.
type oddsPair struct {
	left, right float64
}

// round holds the classification state of a single classify call.
// definiteGood and logOdds are fixed after seeding; errSet shrinks
// during propagation and may grow again under the variant cap.
type round[V comparable, E multigraph.Edge] struct {
	definiteGood map[*multigraph.Chain[V, E]]struct{}
	errSet       map[*multigraph.Chain[V, E]]struct{}
	logOdds      map[*multigraph.Chain[V, E]]oddsPair
}

// classify runs one seeding + fixed-point propagation round at the
// given error rate.
//
// Per-chain states: unclassified → definiteGood | goodByPropagation |
// error. Seeding marks definiteGood any chain carrying an edge
// strictly above maxEdgeWeight/thresholdDivisor; everything else
// starts in errSet. Propagation repeatedly rescues chains whose
// junction with the good frontier scores above the threshold, until a
// full pass rescues nothing.
//
// The frontier is a single mutable set: endpoints added mid-pass are
// visible to chains later in the same pass, while removals from errSet
// are deferred to pass end. Both halves of that policy change which
// chains are rescued and are deliberate.
func (p *AdaptivePruner[V, E]) classify(
	g multigraph.Graph[V, E],
	chains []*multigraph.Chain[V, E],
	errorRate float64,
) *round[V, E] {
	threshold := g.MaxEdgeMultiplicity() / thresholdDivisor

	r := &round[V, E]{
		definiteGood: make(map[*multigraph.Chain[V, E]]struct{}),
		errSet:       make(map[*multigraph.Chain[V, E]]struct{}),
		logOdds:      make(map[*multigraph.Chain[V, E]]oddsPair),
	}

	// Seeding: edge-weight dominance, no statistics involved.
	frontier := make(map[V]struct{})
	for _, c := range chains {
		if c.MaxMultiplicity() > threshold {
			r.definiteGood[c] = struct{}{}
			frontier[c.FirstVertex()] = struct{}{}
			frontier[c.LastVertex()] = struct{}{}
		} else {
			r.errSet[c] = struct{}{}
		}
	}

	// Log-odds are only needed for questionable chains, and are cached
	// for the whole round.
	for _, c := range chains {
		if _, ok := r.errSet[c]; ok {
			r.logOdds[c] = p.junctionOdds(g, c, errorRate)
		}
	}

	// Fixed-point propagation. Terminates in at most len(chains)
	// passes: every non-final pass strictly shrinks errSet.
	for {
		var rescued []*multigraph.Chain[V, E]
		for _, c := range chains {
			if _, ok := r.errSet[c]; !ok {
				continue
			}
			lo := r.logOdds[c]
			_, firstAtFrontier := frontier[c.FirstVertex()]
			_, lastAtFrontier := frontier[c.LastVertex()]
			switch {
			case firstAtFrontier && lo.left > p.logOddsThreshold:
				rescued = append(rescued, c)
				frontier[c.LastVertex()] = struct{}{}
			case lastAtFrontier && lo.right > p.logOddsThreshold:
				rescued = append(rescued, c)
				frontier[c.FirstVertex()] = struct{}{}
			}
		}
		if len(rescued) == 0 {
			break
		}
		for _, c := range rescued {
			delete(r.errSet, c)
		}
	}

	return r
}

// junctionOdds scores both ends of a chain against the competing edges
// at its junctions. Boundary sides score 0: a source has no incoming
// competition to argue error, a sink no outgoing.
func (p *AdaptivePruner[V, E]) junctionOdds(
	g multigraph.Graph[V, E],
	c *multigraph.Chain[V, E],
	errorRate float64,
) oddsPair {
	var odds oddsPair
	if !g.IsSource(c.FirstVertex()) {
		leftTotal := multiplicitySum(g.OutgoingEdges(c.FirstVertex()))
		leftMult := c.FirstEdge().Multiplicity()
		odds.left = p.logOdds(leftTotal-leftMult, leftMult, errorRate)
	}
	if !g.IsSink(c.LastVertex()) {
		rightTotal := multiplicitySum(g.IncomingEdges(c.LastVertex()))
		rightMult := c.LastEdge().Multiplicity()
		odds.right = p.logOdds(rightTotal-rightMult, rightMult, errorRate)
	}

	return odds
}

// enforceVariantCap condemns overflow variants: among chains that are
// neither condemned nor definiteGood, the possible variants (minority
// branch on at least one side) are ranked by descending confidence and
// only the first maxUnprunedVariants survive.
//
// Ties keep the caller's chain order (stable sort).
func (p *AdaptivePruner[V, E]) enforceVariantCap(
	g multigraph.Graph[V, E],
	chains []*multigraph.Chain[V, E],
	r *round[V, E],
) {
	var candidates []*multigraph.Chain[V, E]
	for _, c := range chains {
		if _, bad := r.errSet[c]; bad {
			continue
		}
		if _, good := r.definiteGood[c]; good {
			continue
		}
		if isPossibleVariant(g, c) {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rankKey(r.logOdds[candidates[i]]) > rankKey(r.logOdds[candidates[j]])
	})

	if p.maxUnprunedVariants < len(candidates) {
		for _, c := range candidates[p.maxUnprunedVariants:] {
			r.errSet[c] = struct{}{}
		}
	}
}

// rankKey is the confidence key for the variant cap. Both arms of the
// min read the left junction log-odds, so the right side never
// influences ranking; folding the right side in instead reorders which
// variants survive the cap, so the key is kept exactly as is.
func rankKey(lo oddsPair) float64 {
	return math.Min(lo.left, lo.left)
}

// isPossibleVariant reports whether the chain is a minority branch on
// at least one side of its junctions (truncating halves).
func isPossibleVariant[V comparable, E multigraph.Edge](
	g multigraph.Graph[V, E],
	c *multigraph.Chain[V, E],
) bool {
	leftTotal := multiplicitySum(g.OutgoingEdges(c.FirstVertex()))
	rightTotal := multiplicitySum(g.IncomingEdges(c.LastVertex()))

	return c.FirstEdge().Multiplicity() <= leftTotal/2 ||
		c.LastEdge().Multiplicity() <= rightTotal/2
}

func multiplicitySum[E multigraph.Edge](edges []E) int {
	total := 0
	for _, e := range edges {
		total += e.Multiplicity()
	}

	return total
}
