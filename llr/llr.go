package llr

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Func is the junction scoring contract consumed by pruners.
//
// otherCount is the combined multiplicity of the sibling branches at
// the junction, selfCount the multiplicity of the branch under test,
// and errorRate the assumed per-base sequencing-error probability.
// The result is a log-likelihood ratio; larger favors a real branch.
//
// Counts are expected to be non-negative; the result for negative
// counts is unspecified (the graph contract forbids them upstream).
type Func func(otherCount, selfCount int, errorRate float64) float64

// JunctionLogOdds is the default Func: log of the flat-prior branch
// marginal 1/(n+1) over the Binomial(n, errorRate) error likelihood of
// observing selfCount miscalls among n = selfCount+otherCount reads.
//
// Degenerate rates stay NaN-free: errorRate ≤ 0 yields +Inf whenever
// selfCount > 0 (no miscalls possible, so any support proves a real
// branch) and errorRate ≥ 1 yields +Inf whenever selfCount < n.
//
// Complexity: O(1).
func JunctionLogOdds(otherCount, selfCount int, errorRate float64) float64 {
	n := otherCount + selfCount
	logBranch := -math.Log(float64(n + 1))
	logError := binomialLogProb(n, selfCount, errorRate)

	return logBranch - logError
}

// binomialLogProb returns log P[X = k] for X ~ Binomial(n, p), with
// explicit handling of p = 0 and p = 1 so 0·log 0 never produces NaN.
func binomialLogProb(n, k int, p float64) float64 {
	switch {
	case p <= 0:
		if k == 0 {
			return 0
		}

		return math.Inf(-1)
	case p >= 1:
		if k == n {
			return 0
		}

		return math.Inf(-1)
	}

	return combin.LogGeneralizedBinomial(float64(n), float64(k)) +
		float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p)
}
