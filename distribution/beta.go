package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// beta is the Beta distribution on (0, 1) with shape parameters a and
// b
type beta struct{}

// Sample draws size independent variates with shape parameters a and
// b. Sampling is not differentiable.
func (beta) Sample(a, b float64, size int) []float64 {
	dist := distuv.Beta{Alpha: a, Beta: b}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log density of x ∈ (0, 1):
//
//	(a - 1)·log(x) + (b - 1)·log(1 - x) - logBeta(a, b)
//
// The first shape parameter a weights log(x) and the second shape
// parameter b weights log(1 - x).
func (beta) LogProb(x, a, b *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	a, err = squeeze(a)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	b, err = squeeze(b)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	left := G.Must(G.HadamardProd(
		G.Must(G.Sub(a, one)),
		G.Must(G.Log(x)),
	))
	right := G.Must(G.HadamardProd(
		G.Must(G.Sub(b, one)),
		G.Must(G.Log(G.Must(G.Sub(one, x)))),
	))

	norm, err := godist.LogBeta(a, b)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	return G.Sub(G.Must(G.Add(left, right)), norm)
}
