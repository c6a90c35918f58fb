package distribution

import (
	"fmt"

	"github.com/samuelfneumann/godist"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// squeeze collapses every singleton dimension of x, leaving the value
// at its natural rank. A size-1 tensor collapses to a scalar.
func squeeze(x *G.Node) (*G.Node, error) {
	var err error
	for axis := x.Dims() - 1; axis >= 0; axis-- {
		if x.IsScalar() {
			break
		}
		if x.Shape()[axis] == 1 {
			x, err = godist.Squeeze(x, axis)
			if err != nil {
				return nil, fmt.Errorf("squeeze: %v", err)
			}
		}
	}

	return x, nil
}

// onesVector returns a new length-d vector node of ones
func onesVector(g *G.ExprGraph, d int) *G.Node {
	t := tensor.NewDense(
		tensor.Float64,
		[]int{d},
		tensor.WithBacking(ones64(d)),
	)

	return G.NewVector(
		g,
		tensor.Float64,
		G.WithValue(t),
		G.WithName(godist.UnixNano("ones")),
	)
}

// eye returns a new d×d identity matrix node
func eye(g *G.ExprGraph, d int) *G.Node {
	backing := make([]float64, d*d)
	for i := 0; i < d; i++ {
		backing[i*d+i] = 1.0
	}
	t := tensor.NewDense(
		tensor.Float64,
		[]int{d, d},
		tensor.WithBacking(backing),
	)

	return G.NewMatrix(
		g,
		tensor.Float64,
		G.WithValue(t),
		G.WithName(godist.UnixNano("eye")),
	)
}

func ones64(size int) []float64 {
	slice := make([]float64, size)
	for i := range slice {
		slice[i] = 1.0
	}

	return slice
}
