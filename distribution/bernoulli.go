package distribution

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// bernoulli is the Bernoulli distribution over {0, 1}
type bernoulli struct{}

// Sample draws size independent variates with success probability p.
// Sampling is not differentiable.
func (bernoulli) Sample(p float64, size int) []float64 {
	dist := distuv.Bernoulli{P: p}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log mass of x ∈ {0, 1} with success probability
// p:
//
//	x·log(p) + (1 - x)·log(1 - p)
//
// No domain checking is performed: a p outside (0, 1) propagates as a
// non-finite result.
func (bernoulli) LogProb(x, p *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	p, err = squeeze(p)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	success := G.Must(G.HadamardProd(x, G.Must(G.Log(p))))
	failure := G.Must(G.HadamardProd(
		G.Must(G.Sub(one, x)),
		G.Must(G.Log(G.Must(G.Sub(one, p)))),
	))

	return G.Add(success, failure)
}
