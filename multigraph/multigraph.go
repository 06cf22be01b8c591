package multigraph

import (
	"sort"
	"strconv"
	"sync"
)

// edgeIDPrefix yields stable human-readable edge IDs: "e1", "e2", ...
const edgeIDPrefix = "e"

// KmerEdge is a directed assembly-graph edge supported by sequencing
// evidence. It satisfies Edge and is immutable after AddEdge returns.
type KmerEdge struct {
	id           string
	from, to     string
	multiplicity int
	reference    bool
}

// ID returns the edge's unique identifier within its graph.
func (e *KmerEdge) ID() string { return e.id }

// From returns the source vertex ID.
func (e *KmerEdge) From() string { return e.from }

// To returns the destination vertex ID.
func (e *KmerEdge) To() string { return e.to }

// Multiplicity returns the number of supporting read observations.
func (e *KmerEdge) Multiplicity() int { return e.multiplicity }

// IsReference reports whether the edge lies on the reference backbone.
func (e *KmerEdge) IsReference() bool { return e.reference }

// AssemblyGraph is a directed multigraph over string vertex IDs.
// Parallel edges between the same vertices are always permitted;
// self-loops never are. The zero value is not usable; call New.
type AssemblyGraph struct {
	mu sync.RWMutex

	vertices map[string]struct{}
	edgeList []*KmerEdge // insertion order

	// adjacency: vertex ID → incident edges, insertion order
	outgoing map[string][]*KmerEdge
	incoming map[string][]*KmerEdge

	nextEdgeID int
	maxMult    int
}

// compile-time capability check
var _ Graph[string, *KmerEdge] = (*AssemblyGraph)(nil)

// New creates an empty AssemblyGraph.
// Complexity: O(1)
func New() *AssemblyGraph {
	return &AssemblyGraph{
		vertices: make(map[string]struct{}),
		outgoing: make(map[string][]*KmerEdge),
		incoming: make(map[string][]*KmerEdge),
	}
}

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1)
func (g *AssemblyGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

func (g *AssemblyGraph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
}

// AddEdge creates a new directed edge from→to carrying the given read
// multiplicity, creating missing endpoint vertices. Parallel edges are
// allowed and kept distinct.
//
// Validation (in order):
//  1. from and to must be non-empty (ErrEmptyVertexID).
//  2. multiplicity must be ≥ 0 (ErrNegativeMultiplicity).
//  3. from must differ from to (ErrLoopNotAllowed).
//
// Complexity: O(1) amortized.
func (g *AssemblyGraph) AddEdge(from, to string, multiplicity int, opts ...EdgeOption) (*KmerEdge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if multiplicity < 0 {
		return nil, ErrNegativeMultiplicity
	}
	if from == to {
		return nil, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	e := &KmerEdge{
		id:           edgeIDPrefix + strconv.Itoa(g.nextEdgeID),
		from:         from,
		to:           to,
		multiplicity: multiplicity,
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edgeList = append(g.edgeList, e)
	g.outgoing[from] = append(g.outgoing[from], e)
	g.incoming[to] = append(g.incoming[to], e)
	if multiplicity > g.maxMult {
		g.maxMult = multiplicity
	}

	return e, nil
}

// HasVertex reports whether the graph contains the given vertex ID.
// Complexity: O(1)
func (g *AssemblyGraph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *AssemblyGraph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E)
func (g *AssemblyGraph) Edges() []*KmerEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*KmerEdge, len(g.edgeList))
	copy(out, g.edgeList)

	return out
}

// OutgoingEdges enumerates edges leaving v, in insertion order.
// A vertex absent from the graph has no incident edges.
// Complexity: O(deg)
func (g *AssemblyGraph) OutgoingEdges(v string) []*KmerEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*KmerEdge, len(g.outgoing[v]))
	copy(out, g.outgoing[v])

	return out
}

// IncomingEdges enumerates edges entering v, in insertion order.
// Complexity: O(deg)
func (g *AssemblyGraph) IncomingEdges(v string) []*KmerEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	in := make([]*KmerEdge, len(g.incoming[v]))
	copy(in, g.incoming[v])

	return in
}

// OutDegree returns the number of edges leaving v.
// Complexity: O(1)
func (g *AssemblyGraph) OutDegree(v string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.outgoing[v])
}

// InDegree returns the number of edges entering v.
// Complexity: O(1)
func (g *AssemblyGraph) InDegree(v string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incoming[v])
}

// IsSource reports whether v has no incoming edges.
func (g *AssemblyGraph) IsSource(v string) bool { return g.InDegree(v) == 0 }

// IsSink reports whether v has no outgoing edges.
func (g *AssemblyGraph) IsSink(v string) bool { return g.OutDegree(v) == 0 }

// MaxEdgeMultiplicity returns the maximum multiplicity over all edges,
// 0 for an empty graph. Maintained incrementally on AddEdge.
// Complexity: O(1)
func (g *AssemblyGraph) MaxEdgeMultiplicity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxMult
}

// VertexCount returns the number of vertices.
func (g *AssemblyGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *AssemblyGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeList)
}
