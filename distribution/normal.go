package distribution

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// covKind identifies the representation of a covariance parameter.
// Exactly one kind applies per call, resolved from the parameter's
// rank before any arithmetic happens.
type covKind int

const (
	covAbsent covKind = iota // identity covariance
	covScalar                // isotropic: a single shared variance
	covVector                // diagonal: per-dimension variances
	covMatrix                // full covariance matrix
)

// covKindOf resolves the covariance representation of sigma
func covKindOf(sigma *G.Node) covKind {
	switch {
	case sigma == nil:
		return covAbsent
	case sigma.IsScalar():
		return covScalar
	case sigma.Dims() == 1:
		return covVector
	default:
		return covMatrix
	}
}

// normal is the Normal (Gaussian) distribution, univariate or
// multivariate
type normal struct{}

// Sample draws size independent univariate variates with location loc
// and standard deviation scale. Sampling is not differentiable; for
// batched in-graph sampling see NormalRand.
func (normal) Sample(loc, scale float64, size int) []float64 {
	dist := distuv.Normal{Mu: loc, Sigma: scale}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log density of x under a Normal with mean mu
// and covariance sigma.
//
// The dimensionality d is taken from the leading dimension of x. A
// nil mu denotes a zero mean; a scalar mu is broadcast across all d
// dimensions. Sigma holds variances and may be:
//
//   - nil: the identity covariance
//   - a scalar: an isotropic covariance σ·I
//   - a vector: a diagonal covariance with per-dimension variances
//   - a matrix: a full covariance
//
// The inverse and determinant are computed by the representation's
// own rule. A scalar sigma contributes its own value as the
// determinant, so it is equivalent to the 1×1 matrix [σ] rather than
// to σ·I in higher dimensions; a variance vector and the matrix with
// that diagonal are equivalent at any dimension. The result is always
// a flat rank-1 node, even when the computation degenerates to a
// single number.
//
// The direct inverse/determinant path is used rather than a Cholesky
// factorization; callers evaluating densities of ill-conditioned
// covariances should condition them upstream.
func (normal) LogProb(x, mu, sigma *G.Node) (*G.Node, error) {
	d := godist.Dims(x)[0]
	g := x.Graph()

	var r *G.Node
	if mu == nil {
		r = G.Must(G.HadamardProd(onesVector(g, d), x))
	} else {
		// A scalar mu broadcasts over every dimension of x
		r = G.Must(G.Sub(x, mu))
	}

	var sigmaInv, detSigma *G.Node
	var err error
	switch covKindOf(sigma) {
	case covAbsent:
		sigmaInv = eye(g, d)
		detSigma = g.Constant(G.NewF64(1.0))

	case covScalar:
		sigmaInv = G.Must(G.Inverse(sigma))
		detSigma = sigma

	case covVector:
		sigmaInv, err = godist.Diag(G.Must(G.Inverse(sigma)))
		if err != nil {
			return nil, fmt.Errorf("logProb: could not build diagonal "+
				"precision: %v", err)
		}
		detSigma, err = godist.ReduceProd(sigma, 0)
		if err != nil {
			return nil, fmt.Errorf("logProb: could not reduce diagonal "+
				"covariance: %v", err)
		}

	case covMatrix:
		sigmaInv, err = godist.MatInv(sigma)
		if err != nil {
			return nil, fmt.Errorf("logProb: could not invert covariance: "+
				"%v", err)
		}
		detSigma, err = godist.Det(sigma)
		if err != nil {
			return nil, fmt.Errorf("logProb: could not compute covariance "+
				"determinant: %v", err)
		}
	}

	half := g.Constant(G.NewF64(0.5))
	norm := g.Constant(G.NewF64(-0.5 * float64(d) * math.Log(2.0*math.Pi)))

	var quad *G.Node
	if d == 1 {
		// Scalar arithmetic: flatten a 1×1 precision first
		inv := sigmaInv
		if inv.Dims() == 2 {
			inv = G.Must(G.Reshape(inv, []int{1}))
		}
		quad = G.Must(G.HadamardProd(r, inv))
		quad = G.Must(G.HadamardProd(quad, r))
	} else {
		// Quadratic form rᵗ·Σ⁻¹·r
		quad, err = godist.Dot(r, sigmaInv)
		if err != nil {
			return nil, fmt.Errorf("logProb: %v", err)
		}
		quad, err = godist.Dot(quad, r)
		if err != nil {
			return nil, fmt.Errorf("logProb: %v", err)
		}
	}

	lps := G.Must(G.Sub(norm, G.Must(G.HadamardProd(
		half,
		G.Must(G.Log(detSigma)),
	))))
	lps = G.Must(G.Sub(lps, G.Must(G.HadamardProd(half, quad))))

	// Always a flat vector, even for a single point
	return G.Reshape(lps, []int{lps.Shape().TotalSize()})
}

// Entropy returns the differential entropy of a Normal with
// covariance sigma:
//
//	0.5·(d + d·log(2π) + log det Σ)
//
// The entropy of a Gaussian does not depend on its mean, so no
// location parameter is taken. Sigma may be a scalar, vector, or
// matrix, interpreted as in LogProb.
func (normal) Entropy(sigma *G.Node) (*G.Node, error) {
	if sigma == nil {
		return nil, fmt.Errorf("entropy: nil covariance")
	}

	d := godist.Dims(sigma)[0]
	g := sigma.Graph()

	var detSigma *G.Node
	var err error
	switch covKindOf(sigma) {
	case covScalar:
		detSigma = sigma

	case covVector:
		detSigma, err = godist.ReduceProd(sigma, 0)
		if err != nil {
			return nil, fmt.Errorf("entropy: could not reduce diagonal "+
				"covariance: %v", err)
		}

	case covMatrix:
		detSigma, err = godist.Det(sigma)
		if err != nil {
			return nil, fmt.Errorf("entropy: could not compute covariance "+
				"determinant: %v", err)
		}
	}

	half := g.Constant(G.NewF64(0.5))
	c := g.Constant(G.NewF64(float64(d) + float64(d)*math.Log(2.0*math.Pi)))

	return G.HadamardProd(half, G.Must(G.Add(c, G.Must(G.Log(detSigma)))))
}
