package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// poisson is the Poisson distribution over non-negative counts
type poisson struct{}

// Sample draws size independent variates with rate mu. Sampling is
// not differentiable.
func (poisson) Sample(mu float64, size int) []float64 {
	dist := distuv.Poisson{Lambda: mu}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log mass of the count x with rate mu:
//
//	x·log(μ) - μ - logΓ(x + 1)
func (poisson) LogProb(x, mu *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	mu, err = squeeze(mu)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	lgX, err := godist.LogGamma(G.Must(G.Add(x, one)))
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	out := G.Must(G.HadamardProd(x, G.Must(G.Log(mu))))
	out = G.Must(G.Sub(out, mu))

	return G.Sub(out, lgX)
}
