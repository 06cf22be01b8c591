package prune_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strandlab/chainprune/multigraph"
	"github.com/strandlab/chainprune/prune"
)

// TestNewLowWeightPruner_Validation rejects a negative bar.
func TestNewLowWeightPruner_Validation(t *testing.T) {
	if _, err := prune.NewLowWeightPruner[string, *multigraph.KmerEdge](-1); !errors.Is(err, prune.ErrNegativePruneFactor) {
		t.Errorf("want ErrNegativePruneFactor, got %v", err)
	}
}

// TestLowWeightPruner_Threshold condemns exactly the chains whose every
// edge falls below the bar.
func TestLowWeightPruner_Threshold(t *testing.T) {
	g := multigraph.New()
	_, _ = g.AddEdge("A", "B", 10)
	weak, _ := g.AddEdge("A", "C", 1)
	mixedLow, _ := g.AddEdge("A", "D", 1)
	_, _ = g.AddEdge("D", "E", 5) // lifts the mixed chain above the bar

	chains := multigraph.FindChains(g)
	require.Len(t, chains, 3) // A…B strong, A…C weak, A…D…E mixed

	p, err := prune.NewLowWeightPruner[string, *multigraph.KmerEdge](3)
	require.NoError(t, err)

	doomed := p.ChainsToRemove(g, chains)
	require.Len(t, doomed, 1)
	require.Equal(t, weak, doomed[0].FirstEdge())
	require.NotEqual(t, mixedLow, doomed[0].FirstEdge())
}

// TestLowWeightPruner_KeepsReference never condemns a reference chain,
// however weak.
func TestLowWeightPruner_KeepsReference(t *testing.T) {
	g := multigraph.New()
	_, _ = g.AddEdge("A", "B", 1, multigraph.WithReference())
	_, _ = g.AddEdge("A", "C", 1)

	chains := multigraph.FindChains(g)
	p, err := prune.NewLowWeightPruner[string, *multigraph.KmerEdge](5)
	require.NoError(t, err)

	doomed := p.ChainsToRemove(g, chains)
	require.Len(t, doomed, 1)
	require.False(t, doomed[0].ContainsReference())
}

// TestLowWeightPruner_ZeroBar condemns nothing.
func TestLowWeightPruner_ZeroBar(t *testing.T) {
	g := multigraph.New()
	_, _ = g.AddEdge("A", "B", 0)

	chains := multigraph.FindChains(g)
	p, err := prune.NewLowWeightPruner[string, *multigraph.KmerEdge](0)
	require.NoError(t, err)
	require.Empty(t, p.ChainsToRemove(g, chains))
}
