// Package llr scores assembly-graph junctions: given the read support
// of one branch (selfCount) against the combined support of its
// sibling branches (otherCount), it returns the log-likelihood ratio
// of "this branch is a real haplotype" versus "this branch is
// sequencing error at the given per-base error rate".
//
// The statistic is pluggable: pruners consume the Func contract, and
// any drop-in scoring function satisfies it. JunctionLogOdds is the
// default implementation.
//
// Model
//
//	Under the error hypothesis, selfCount of n = selfCount+otherCount
//	junction observations are miscalls: selfCount ~ Binomial(n, errorRate).
//	Under the branch hypothesis the allele fraction is unknown with a
//	flat prior, so the marginal likelihood of any split is 1/(n+1).
//	JunctionLogOdds returns log of the branch marginal over the
//	binomial error likelihood; positive values favor a real branch.
//
// With 1 supporting read against 99 at a 1% error rate the log-odds is
// about −3.6: such a branch is comfortably explained by error. A
// 50/50 split at the same rate scores in the hundreds.
package llr
