package multigraph

// Chain is an ordered, non-empty run of edges between two vertices
// with no internal branching: every interior vertex has exactly one
// incoming and one outgoing edge. Per-edge multiplicities are read
// from the underlying graph's edges and never copied or rewritten.
//
// A Chain is immutable after construction and safe to share.
type Chain[V comparable, E Edge] struct {
	first, last V
	edges       []E
}

// NewChain builds a chain running first→last along edges.
// Returns ErrEmptyChain if edges is empty. The edge slice is copied so
// later caller mutations cannot reach the chain.
func NewChain[V comparable, E Edge](first, last V, edges []E) (*Chain[V, E], error) {
	if len(edges) == 0 {
		return nil, ErrEmptyChain
	}
	own := make([]E, len(edges))
	copy(own, edges)

	return &Chain[V, E]{first: first, last: last, edges: own}, nil
}

// FirstVertex returns the vertex the chain starts at.
func (c *Chain[V, E]) FirstVertex() V { return c.first }

// LastVertex returns the vertex the chain ends at.
func (c *Chain[V, E]) LastVertex() V { return c.last }

// FirstEdge returns the chain's first edge.
func (c *Chain[V, E]) FirstEdge() E { return c.edges[0] }

// LastEdge returns the chain's last edge.
func (c *Chain[V, E]) LastEdge() E { return c.edges[len(c.edges)-1] }

// Len returns the number of edges in the chain.
func (c *Chain[V, E]) Len() int { return len(c.edges) }

// Edges returns the chain's edges in order. The returned slice is a
// copy; the chain itself stays immutable.
func (c *Chain[V, E]) Edges() []E {
	out := make([]E, len(c.edges))
	copy(out, c.edges)

	return out
}

// MaxMultiplicity returns the largest multiplicity among the chain's
// edges.
func (c *Chain[V, E]) MaxMultiplicity() int {
	best := 0
	for _, e := range c.edges {
		if m := e.Multiplicity(); m > best {
			best = m
		}
	}

	return best
}

// TotalMultiplicity sums the multiplicities of all edges in the chain.
func (c *Chain[V, E]) TotalMultiplicity() int {
	total := 0
	for _, e := range c.edges {
		total += e.Multiplicity()
	}

	return total
}

// ContainsReference reports whether any edge of the chain lies on the
// reference backbone.
func (c *Chain[V, E]) ContainsReference() bool {
	for _, e := range c.edges {
		if e.IsReference() {
			return true
		}
	}

	return false
}
