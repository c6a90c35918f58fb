package distribution

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// NormalRand returns a node that draws numSamples fresh normal
// variates for every element of mean and stddev each time the node is
// passed. The output has shape (numSamples, shape of mean...). This
// function is not differentiable: it exists for batched in-graph
// sampling only, and taking its gradient is an error.
func NormalRand(mean, stddev *G.Node, seed uint64,
	numSamples int) (*G.Node, error) {
	if mean.Dtype() != tensor.Float64 || stddev.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("normalRand: mean and stddev must have "+
			"dtype %v but got %v and %v", tensor.Float64, mean.Dtype(),
			stddev.Dtype())
	}

	if !mean.Shape().Eq(stddev.Shape()) {
		return nil, fmt.Errorf("normalRand: mean and stddev should have "+
			"same shape but got %v and %v", mean.Shape(), stddev.Shape())
	}

	if mean.IsScalar() {
		var err error
		mean, err = G.Reshape(mean, []int{1})
		if err != nil {
			return nil, fmt.Errorf("normalRand: could not expand mean to "+
				"shape (1): %v", err)
		}
		stddev, err = G.Reshape(stddev, []int{1})
		if err != nil {
			return nil, fmt.Errorf("normalRand: could not expand stddev to "+
				"shape (1): %v", err)
		}
	}

	op := newNormalSampleOp(seed, numSamples, mean.Shape()...)

	return G.ApplyOp(op, mean, stddev)
}
