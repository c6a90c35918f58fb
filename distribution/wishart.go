package distribution

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmat"
	G "gorgonia.org/gorgonia"
)

// ErrWishartLogProb is returned by Wishart.LogProb: the log density of
// the Wishart distribution is intentionally not implemented.
var ErrWishartLogProb = errors.New(
	"logProb: not implemented for the Wishart distribution")

// wishart is the Wishart distribution over symmetric positive-definite
// matrices
type wishart struct{}

// Sample draws size independent matrix variates with df degrees of
// freedom and the given scale matrix. Sampling is not differentiable.
// An error is returned if df does not exceed the dimension of scale
// minus one.
func (wishart) Sample(df float64, scale *mat.SymDense,
	size int) ([]*mat.SymDense, error) {
	dim := scale.Symmetric()

	// distmat.NewWishart panics on too few degrees of freedom
	if df <= float64(dim-1) {
		return nil, fmt.Errorf("sample: degrees of freedom %v must exceed "+
			"the scale dimension minus one", df)
	}

	dist, ok := distmat.NewWishart(scale, df, nil)
	if !ok {
		return nil, fmt.Errorf("sample: scale matrix is not positive definite")
	}

	out := make([]*mat.SymDense, size)
	for i := range out {
		out[i] = mat.NewSymDense(dim, nil)
		dist.RandSymTo(out[i])
	}

	return out, nil
}

// LogProb always returns ErrWishartLogProb. The normalizing constant
// of the Wishart density is not implemented, and an explicit failure
// is preferred over a silently wrong value.
func (wishart) LogProb(x, df, scale *G.Node) (*G.Node, error) {
	return nil, ErrWishartLogProb
}
