package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// gamma is the Gamma distribution in its shape/scale parameterization
type gamma struct{}

// Sample draws size independent variates with shape a and the given
// scale. Sampling is not differentiable.
func (gamma) Sample(a, scale float64, size int) []float64 {
	// Gonum parameterizes the Gamma distribution by rate
	dist := distuv.Gamma{Alpha: a, Beta: 1.0 / scale}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log density of x > 0 with shape a and the given
// scale:
//
//	(a - 1)·log(x) - x/scale - a·log(scale) - logΓ(a)
func (gamma) LogProb(x, a, scale *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	a, err = squeeze(a)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	scale, err = squeeze(scale)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	lgA, err := godist.LogGamma(a)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	out := G.Must(G.HadamardProd(
		G.Must(G.Sub(a, one)),
		G.Must(G.Log(x)),
	))
	out = G.Must(G.Sub(out, G.Must(G.HadamardDiv(x, scale))))
	out = G.Must(G.Sub(out, G.Must(G.HadamardProd(
		a,
		G.Must(G.Log(scale)),
	))))

	return G.Sub(out, lgA)
}
