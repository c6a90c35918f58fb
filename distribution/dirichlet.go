package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distmv"
	G "gorgonia.org/gorgonia"
)

// dirichlet is the Dirichlet distribution over the probability simplex
type dirichlet struct{}

// Sample draws size independent variates with concentration vector
// alpha. Each variate is a vector on the probability simplex of
// dimension len(alpha). Sampling is not differentiable.
func (dirichlet) Sample(alpha []float64, size int) [][]float64 {
	dist := distmv.NewDirichlet(alpha, nil)

	out := make([][]float64, size)
	for i := range out {
		out[i] = dist.Rand(nil)
	}

	return out
}

// LogProb returns the log density of the simplex vector x with
// concentration vector alpha:
//
//	-logDirichlet(α) + Σᵢ (αᵢ - 1)·log(xᵢ)
func (dirichlet) LogProb(x, alpha *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	alpha, err = squeeze(alpha)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	norm, err := godist.LogDirichlet(alpha)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	weighted := G.Must(G.Sum(G.Must(G.HadamardProd(
		G.Must(G.Sub(alpha, one)),
		G.Must(G.Log(x)),
	))))

	return G.Sub(weighted, norm)
}
