package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// multinomial is the Multinomial distribution over count vectors of n
// trials
type multinomial struct{}

// Sample draws size independent count vectors of n trials with event
// probabilities p. Each variate has length len(p) and sums to n.
// Sampling is not differentiable.
func (multinomial) Sample(n int, p []float64, size int) [][]float64 {
	dist := distuv.NewCategorical(p, nil)

	out := make([][]float64, size)
	for i := range out {
		counts := make([]float64, len(p))
		for j := 0; j < n; j++ {
			counts[int(dist.Rand())]++
		}
		out[i] = counts
	}

	return out
}

// LogProb returns the log mass of the count vector x of n trials with
// event probabilities p:
//
//	-logMultinomial(x, n) + Σᵢ xᵢ·log(pᵢ)
func (multinomial) LogProb(x, n, p *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	n, err = squeeze(n)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	p, err = squeeze(p)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	norm, err := godist.LogMultinomial(x, n)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	weighted := G.Must(G.Sum(G.Must(G.HadamardProd(
		x,
		G.Must(G.Log(p)),
	))))

	return G.Sub(weighted, norm)
}
