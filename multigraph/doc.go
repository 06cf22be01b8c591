// Package multigraph provides the read capability surface that chain
// pruning operates on, a concrete in-memory assembly multigraph, and
// the decomposition of a graph into maximal non-branching chains.
//
// What
//
//   - Edge: the minimal per-edge contract (multiplicity + reference flag).
//   - Graph[V, E]: the read-only view a pruner needs: outgoing and
//     incoming edge enumeration, source/sink predicates, and the
//     graph-wide maximum edge multiplicity.
//   - AssemblyGraph: a directed multigraph over string vertex IDs whose
//     edges (KmerEdge) carry read-support multiplicities and reference
//     backbone flags. Parallel edges are always permitted; self-loops
//     are not, because chains are acyclic runs.
//   - Chain[V, E]: an ordered, non-empty run of edges between two
//     vertices, with no internal branching.
//   - FindChains: partitions every edge of an AssemblyGraph into
//     maximal non-branching chains.
//
// Why
//
//	Read-derived assembly graphs are queried far more than they are
//	built: pruning visits junctions repeatedly while never mutating the
//	graph. The concrete type therefore favors cheap degree and
//	enumeration queries, and the pruners depend only on the Graph
//	interface so any graph representation with the same capabilities
//	can be pruned.
//
// Determinism
//
//	Vertices() returns IDs sorted ascending; Edges(), OutgoingEdges()
//	and IncomingEdges() return edges in insertion order. FindChains
//	walks sorted vertices and insertion-ordered edges, so the chain
//	list is fully reproducible for a given construction sequence.
//
// Concurrency
//
//	AssemblyGraph guards its catalogs with a single RWMutex: mutations
//	take the write lock, queries the read lock. Chains are immutable
//	once built and safe to share.
package multigraph
