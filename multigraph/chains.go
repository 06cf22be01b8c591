package multigraph

// FindChains partitions every edge of g into maximal non-branching
// chains. A vertex is interior to a chain iff it has exactly one
// incoming and one outgoing edge; chains begin at every non-interior
// vertex and extend forward while the next vertex stays interior.
//
// Isolated cycles (every vertex interior) have no natural start; they
// are swept afterwards from their lowest-ID unvisited edge and emitted
// as a single chain whose first and last vertex coincide.
//
// Determinism: non-interior vertices are walked in sorted order and
// their outgoing edges in insertion order, so the chain list is
// reproducible for a given construction sequence. Every edge appears
// in exactly one chain.
//
// Complexity: O(V log V + E).
func FindChains(g *AssemblyGraph) []*Chain[string, *KmerEdge] {
	interior := func(v string) bool {
		return g.InDegree(v) == 1 && g.OutDegree(v) == 1
	}

	visited := make(map[*KmerEdge]struct{}, g.EdgeCount())
	chains := make([]*Chain[string, *KmerEdge], 0)

	// extend walks forward from start while the run stays non-branching.
	extend := func(start *KmerEdge) {
		visited[start] = struct{}{}
		edges := []*KmerEdge{start}
		last := start.To()
		for interior(last) {
			next := g.OutgoingEdges(last)[0]
			if _, seen := visited[next]; seen {
				break // closed an isolated cycle
			}
			visited[next] = struct{}{}
			edges = append(edges, next)
			last = next.To()
		}
		chains = append(chains, &Chain[string, *KmerEdge]{
			first: start.From(),
			last:  last,
			edges: edges,
		})
	}

	for _, v := range g.Vertices() {
		if interior(v) {
			continue
		}
		for _, e := range g.OutgoingEdges(v) {
			extend(e)
		}
	}

	// Isolated cycles are all that remains unvisited.
	for _, e := range g.Edges() {
		if _, seen := visited[e]; !seen {
			extend(e)
		}
	}

	return chains
}
