package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// invGamma is the Inverse-Gamma distribution with shape alpha and
// scale beta
type invGamma struct{}

// Sample draws size independent variates with shape alpha and scale
// beta. Sampling is not differentiable.
func (invGamma) Sample(alpha, beta float64, size int) []float64 {
	dist := distuv.InverseGamma{Alpha: alpha, Beta: beta}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log density of x > 0 with shape alpha and scale
// beta:
//
//	-logInvGamma(α, β) - (α + 1)·log(x) - β/x
func (invGamma) LogProb(x, alpha, beta *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	alpha, err = squeeze(alpha)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	beta, err = squeeze(beta)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	norm, err := godist.LogInvGamma(alpha, beta)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	out := G.Must(G.Neg(norm))
	out = G.Must(G.Sub(out, G.Must(G.HadamardProd(
		G.Must(G.Add(alpha, one)),
		G.Must(G.Log(x)),
	))))

	return G.Sub(out, G.Must(G.HadamardDiv(beta, x)))
}
