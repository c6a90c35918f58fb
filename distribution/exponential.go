package distribution

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// exponential is the Exponential distribution in its scale
// parameterization
type exponential struct{}

// Sample draws size independent variates with the given scale.
// Sampling is not differentiable.
func (exponential) Sample(scale float64, size int) []float64 {
	dist := distuv.Exponential{Rate: 1.0 / scale}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log density of x ≥ 0 with the given scale:
//
//	-x/scale - log(scale)
func (exponential) LogProb(x, scale *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	scale, err = squeeze(scale)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	scaled := G.Must(G.Neg(G.Must(G.HadamardDiv(x, scale))))

	return G.Sub(scaled, G.Must(G.Log(scale)))
}
