package prune

import (
	"errors"

	"github.com/strandlab/chainprune/llr"
	"github.com/strandlab/chainprune/multigraph"
)

// Sentinel errors for pruner construction.
var (
	// ErrNonPositiveErrorProbability is returned when the bootstrap
	// error probability is zero or negative.
	ErrNonPositiveErrorProbability = errors.New("prune: initial error probability must be positive")

	// ErrNegativeVariantCap is returned when the variant cap is negative.
	ErrNegativeVariantCap = errors.New("prune: max unpruned variants must be non-negative")

	// ErrNegativePruneFactor is returned when the low-weight threshold is negative.
	ErrNegativePruneFactor = errors.New("prune: prune factor must be non-negative")
)

// Pruner selects chains for removal from an assembly graph. The
// returned chains are handed to an external graph-mutation step; the
// pruner itself never touches the graph.
type Pruner[V comparable, E multigraph.Edge] interface {
	ChainsToRemove(g multigraph.Graph[V, E], chains []*multigraph.Chain[V, E]) []*multigraph.Chain[V, E]
}

// Option configures optional pruner behavior at construction.
type Option func(*options)

type options struct {
	logOdds llr.Func
}

func defaultOptions() options {
	return options{logOdds: llr.JunctionLogOdds}
}

// WithLogOdds replaces the junction scoring statistic. The default is
// llr.JunctionLogOdds.
func WithLogOdds(f llr.Func) Option {
	return func(o *options) { o.logOdds = f }
}
