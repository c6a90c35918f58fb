// Package godist provides extended Gorgonia operations for probability
// computations: elementwise log-Gamma, diagonal embedding, matrix
// inverse and determinant, product reductions, and the composite
// special functions built from them. All operations are differentiable
// and participate in Gorgonia's symbolic differentiation.
package godist

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// LogGamma computes the element-wise log of the absolute value of the
// Gamma function
func LogGamma(x *G.Node) (*G.Node, error) {
	op := newLgammaOp()

	return G.ApplyOp(op, x)
}

// Diag places the elements of vector x on the diagonal of a new square
// matrix. All off-diagonal entries are zero.
func Diag(x *G.Node) (*G.Node, error) {
	if x.Dims() != 1 {
		return nil, fmt.Errorf("diag: expected a vector but got shape %v",
			x.Shape())
	}
	op := newDiagOp()

	return G.ApplyOp(op, x)
}

// MatInv computes the inverse of the square matrix x
func MatInv(x *G.Node) (*G.Node, error) {
	if x.Dims() != 2 || x.Shape()[0] != x.Shape()[1] {
		return nil, fmt.Errorf("matInv: expected a square matrix but got "+
			"shape %v", x.Shape())
	}
	op := newMatInvOp()

	return G.ApplyOp(op, x)
}

// Det computes the determinant of the square matrix x
func Det(x *G.Node) (*G.Node, error) {
	if x.Dims() != 2 || x.Shape()[0] != x.Shape()[1] {
		return nil, fmt.Errorf("det: expected a square matrix but got "+
			"shape %v", x.Shape())
	}
	op := newDetOp()

	return G.ApplyOp(op, x)
}

// ReduceProd computes the product of the elements of the vector x
// along axis, resulting in a scalar. Only vector inputs are supported,
// so axis must be 0.
func ReduceProd(x *G.Node, axis int) (*G.Node, error) {
	if x.Dims() != 1 {
		return nil, fmt.Errorf("reduceProd: expected a vector but got "+
			"shape %v", x.Shape())
	}
	if axis != 0 {
		return nil, fmt.Errorf("reduceProd: axis %d out of range for a "+
			"vector", axis)
	}
	op := newReduceProdOp()

	return G.ApplyOp(op, x)
}

// Squeeze removes the axis'th dimension of x if it has size 1. If the
// axis'th dimension does not have size 1, x is returned unchanged.
// Squeezing the only dimension of a size-1 vector results in a scalar.
func Squeeze(x *G.Node, axis int) (*G.Node, error) {
	if x.IsScalar() {
		return x, nil
	}
	if axis < 0 || axis >= x.Dims() {
		return nil, fmt.Errorf("squeeze: axis %d out of range for shape %v",
			axis, x.Shape())
	}

	shape := x.Shape()
	if shape[axis] != 1 {
		return x, nil
	}
	if x.Dims() == 1 {
		return G.Slice(x, G.S(0))
	}

	newShape := make(tensor.Shape, 0, x.Dims()-1)
	newShape = append(newShape, shape[:axis]...)
	newShape = append(newShape, shape[axis+1:]...)

	return G.Reshape(x, newShape)
}
