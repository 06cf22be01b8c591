package multigraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/strandlab/chainprune/multigraph"
)

// TestAddEdge_Validation verifies that invalid edges are rejected.
func TestAddEdge_Validation(t *testing.T) {
	g := multigraph.New()

	if _, err := g.AddEdge("", "B", 1); !errors.Is(err, multigraph.ErrEmptyVertexID) {
		t.Errorf("empty from: want ErrEmptyVertexID, got %v", err)
	}
	if _, err := g.AddEdge("A", "", 1); !errors.Is(err, multigraph.ErrEmptyVertexID) {
		t.Errorf("empty to: want ErrEmptyVertexID, got %v", err)
	}
	if _, err := g.AddEdge("A", "B", -3); !errors.Is(err, multigraph.ErrNegativeMultiplicity) {
		t.Errorf("negative multiplicity: want ErrNegativeMultiplicity, got %v", err)
	}
	if _, err := g.AddEdge("A", "A", 1); !errors.Is(err, multigraph.ErrLoopNotAllowed) {
		t.Errorf("self-loop: want ErrLoopNotAllowed, got %v", err)
	}
	if err := g.AddVertex(""); !errors.Is(err, multigraph.ErrEmptyVertexID) {
		t.Errorf("empty vertex: want ErrEmptyVertexID, got %v", err)
	}
}

// TestAddEdge_CreatesEndpoints checks implicit vertex creation and
// parallel-edge support.
func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := multigraph.New()
	if _, err := g.AddEdge("A", "B", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.AddEdge("A", "B", 7); err != nil {
		t.Fatalf("parallel edge rejected: %v", err)
	}

	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Error("endpoints not created implicitly")
	}
	if n := g.EdgeCount(); n != 2 {
		t.Errorf("EdgeCount = %d; want 2", n)
	}
	if d := g.OutDegree("A"); d != 2 {
		t.Errorf("OutDegree(A) = %d; want 2", d)
	}
	if d := g.InDegree("B"); d != 2 {
		t.Errorf("InDegree(B) = %d; want 2", d)
	}
}

// TestVertices_Sorted pins the deterministic enumeration order.
func TestVertices_Sorted(t *testing.T) {
	g := multigraph.New()
	_, _ = g.AddEdge("C", "A", 1)
	_, _ = g.AddEdge("A", "B", 1)

	want := []string{"A", "B", "C"}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}

// TestSourceSinkPredicates covers boundary detection.
func TestSourceSinkPredicates(t *testing.T) {
	g := multigraph.New()
	_, _ = g.AddEdge("src", "mid", 3)
	_, _ = g.AddEdge("mid", "snk", 3)

	if !g.IsSource("src") || g.IsSink("src") {
		t.Error("src must be a source and not a sink")
	}
	if g.IsSource("mid") || g.IsSink("mid") {
		t.Error("mid must be neither source nor sink")
	}
	if g.IsSource("snk") || !g.IsSink("snk") {
		t.Error("snk must be a sink and not a source")
	}
}

// TestMaxEdgeMultiplicity covers the empty graph and the running max.
func TestMaxEdgeMultiplicity(t *testing.T) {
	g := multigraph.New()
	if m := g.MaxEdgeMultiplicity(); m != 0 {
		t.Errorf("empty graph: MaxEdgeMultiplicity = %d; want 0", m)
	}
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 9)
	_, _ = g.AddEdge("C", "D", 2)
	if m := g.MaxEdgeMultiplicity(); m != 9 {
		t.Errorf("MaxEdgeMultiplicity = %d; want 9", m)
	}
}

// TestEdgeAccessors verifies KmerEdge fields and the reference option.
func TestEdgeAccessors(t *testing.T) {
	g := multigraph.New()
	e, err := g.AddEdge("A", "B", 6, multigraph.WithReference())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.From() != "A" || e.To() != "B" {
		t.Errorf("endpoints = %s→%s; want A→B", e.From(), e.To())
	}
	if e.Multiplicity() != 6 {
		t.Errorf("Multiplicity = %d; want 6", e.Multiplicity())
	}
	if !e.IsReference() {
		t.Error("IsReference = false; want true")
	}

	plain, _ := g.AddEdge("B", "C", 1)
	if plain.IsReference() {
		t.Error("edge without WithReference must not be reference")
	}
}
