package prune_test

import (
	"fmt"
	"testing"

	"github.com/strandlab/chainprune/multigraph"
	"github.com/strandlab/chainprune/prune"
)

// BenchmarkAdaptivePruner measures one full two-round invocation on a
// region of 200 well-supported segments, each with a weak side branch.
func BenchmarkAdaptivePruner(b *testing.B) {
	const segments = 200

	g := multigraph.New()
	for i := 0; i < segments; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%03d", i), fmt.Sprintf("v%03d", i+1), 100)
		_, _ = g.AddEdge(fmt.Sprintf("v%03d", i), fmt.Sprintf("n%03d", i), 1)
	}
	chains := multigraph.FindChains(g)

	p, err := prune.NewAdaptivePruner[string, *multigraph.KmerEdge](0.001, 2.0, 10)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if doomed := p.ChainsToRemove(g, chains); len(doomed) == 0 {
			b.Fatal("expected removals")
		}
	}
}
