package multigraph

import "errors"

// Sentinel errors for assembly-graph and chain construction.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("multigraph: vertex ID is empty")

	// ErrNegativeMultiplicity indicates an edge was added with a negative read count.
	ErrNegativeMultiplicity = errors.New("multigraph: negative edge multiplicity")

	// ErrLoopNotAllowed indicates a self-loop was attempted; assembly chains are acyclic runs.
	ErrLoopNotAllowed = errors.New("multigraph: self-loop not allowed")

	// ErrEmptyChain indicates a chain was constructed with no edges.
	ErrEmptyChain = errors.New("multigraph: chain has no edges")
)

// Edge is the per-edge contract pruning depends on.
//
// Multiplicity is the number of read/k-mer observations supporting the
// edge and is never negative. IsReference reports whether the edge lies
// on the reference-genome backbone; reference edges are never pruned.
type Edge interface {
	Multiplicity() int
	IsReference() bool
}

// Graph is the read-only capability surface a pruner requires.
//
// V is an opaque vertex identity used only as a comparable key; E is
// the edge type. Implementations must not mutate returned slices after
// handing them out, and callers must treat them as read-only.
type Graph[V comparable, E Edge] interface {
	// OutgoingEdges enumerates edges leaving v.
	OutgoingEdges(v V) []E

	// IncomingEdges enumerates edges entering v.
	IncomingEdges(v V) []E

	// IsSource reports whether v has no incoming edges.
	IsSource(v V) bool

	// IsSink reports whether v has no outgoing edges.
	IsSink(v V) bool

	// MaxEdgeMultiplicity returns the maximum multiplicity over all
	// edges of the graph, 0 for an empty graph.
	MaxEdgeMultiplicity() int
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*KmerEdge)

// WithReference marks the edge as lying on the reference backbone.
func WithReference() EdgeOption {
	return func(e *KmerEdge) { e.reference = true }
}
