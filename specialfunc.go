package godist

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// LogBeta computes the log of the Beta function:
//
//	logBeta(a, b) = logΓ(a) + logΓ(b) - logΓ(a + b)
func LogBeta(a, b *G.Node) (*G.Node, error) {
	la, err := LogGamma(a)
	if err != nil {
		return nil, fmt.Errorf("logBeta: %v", err)
	}
	lb, err := LogGamma(b)
	if err != nil {
		return nil, fmt.Errorf("logBeta: %v", err)
	}
	lab, err := LogGamma(G.Must(G.Add(a, b)))
	if err != nil {
		return nil, fmt.Errorf("logBeta: %v", err)
	}

	return G.Sub(G.Must(G.Add(la, lb)), lab)
}

// LogDirichlet computes the log of the Dirichlet normalizing constant
// for the concentration vector alpha:
//
//	logDirichlet(α) = Σᵢ logΓ(αᵢ) - logΓ(Σᵢ αᵢ)
func LogDirichlet(alpha *G.Node) (*G.Node, error) {
	if alpha.Dims() != 1 {
		return nil, fmt.Errorf("logDirichlet: expected a concentration "+
			"vector but got shape %v", alpha.Shape())
	}

	la, err := LogGamma(alpha)
	if err != nil {
		return nil, fmt.Errorf("logDirichlet: %v", err)
	}
	lsum, err := LogGamma(G.Must(G.Sum(alpha)))
	if err != nil {
		return nil, fmt.Errorf("logDirichlet: %v", err)
	}

	return G.Sub(G.Must(G.Sum(la)), lsum)
}

// LogInvGamma computes the log of the Inverse-Gamma normalizing
// constant:
//
//	logInvGamma(α, β) = logΓ(α) - α·log(β)
func LogInvGamma(alpha, beta *G.Node) (*G.Node, error) {
	la, err := LogGamma(alpha)
	if err != nil {
		return nil, fmt.Errorf("logInvGamma: %v", err)
	}

	albeta := G.Must(G.HadamardProd(alpha, G.Must(G.Log(beta))))

	return G.Sub(la, albeta)
}

// LogMultinomial computes the log of the inverse multinomial
// coefficient for the count vector x summing to n:
//
//	logMultinomial(x, n) = Σᵢ logΓ(xᵢ + 1) - logΓ(n + 1)
func LogMultinomial(x, n *G.Node) (*G.Node, error) {
	if x.Dims() != 1 {
		return nil, fmt.Errorf("logMultinomial: expected a count vector "+
			"but got shape %v", x.Shape())
	}

	one := x.Graph().Constant(G.NewF64(1.0))

	lx, err := LogGamma(G.Must(G.Add(x, one)))
	if err != nil {
		return nil, fmt.Errorf("logMultinomial: %v", err)
	}
	ln, err := LogGamma(G.Must(G.Add(n, one)))
	if err != nil {
		return nil, fmt.Errorf("logMultinomial: %v", err)
	}

	return G.Sub(G.Must(G.Sum(lx)), ln)
}

// Dot computes the product of a and b: the Hadamard product if either
// argument is a scalar, and the matrix or inner product otherwise.
func Dot(a, b *G.Node) (*G.Node, error) {
	if a.IsScalar() || b.IsScalar() {
		return G.HadamardProd(a, b)
	}

	return G.Mul(a, b)
}

// Dims returns the dimension sizes of x. A scalar is reported as
// having a single dimension of size 1.
func Dims(x *G.Node) []int {
	if x.IsScalar() {
		return []int{1}
	}

	return []int(x.Shape())
}
