package distribution

import (
	"fmt"
	"hash"

	"golang.org/x/exp/rand"

	"github.com/chewxy/hm"
	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// normalSampleOp draws normal variates element-wise from tensors of
// means and standard deviations. The op holds its own seeded source
// so that graphs replay deterministically for a fixed seed.
type normalSampleOp struct {
	shape      tensor.Shape
	dist       distuv.Normal
	numSamples int
}

func newNormalSampleOp(seed uint64, numSamples int,
	shape ...int) *normalSampleOp {
	return &normalSampleOp{
		shape: tensor.Shape(shape),
		dist: distuv.Normal{
			Mu:    0.0,
			Sigma: 1.0,
			Src:   rand.NewSource(seed),
		},
		numSamples: numSamples,
	}
}

func (n *normalSampleOp) Arity() int { return 2 }

func (n *normalSampleOp) Type() hm.Type {
	in := G.TensorType{
		Dims: n.shape.Dims(),
		Of:   tensor.Float64,
	}
	out := G.TensorType{
		Dims: n.shape.Dims() + 1,
		Of:   tensor.Float64,
	}

	return hm.NewFnType(in, in, out)
}

func (n *normalSampleOp) InferShape(...G.DimSizer) (tensor.Shape, error) {
	return append(tensor.Shape{n.numSamples}, n.shape...), nil
}

func (n *normalSampleOp) ReturnsPtr() bool { return false }

func (n *normalSampleOp) CallsExtern() bool { return false }

func (n *normalSampleOp) OverwritesInput() int { return -1 }

func (n *normalSampleOp) String() string {
	return fmt.Sprintf("NormalSample{shape=%v}()", n.shape)
}

func (n *normalSampleOp) WriteHash(h hash.Hash) {
	fmt.Fprint(h, n.String())
}

func (n *normalSampleOp) Hashcode() uint32 { return godist.SimpleHash(n) }

func (n *normalSampleOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := n.checkInputs(inputs...); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	means := inputs[0].(tensor.Tensor).Data().([]float64)
	stddevs := inputs[1].(tensor.Tensor).Data().([]float64)

	out := tensor.New(
		tensor.WithShape(append([]int{n.numSamples}, n.shape...)...),
		tensor.Of(tensor.Float64),
	)
	outData := out.Data().([]float64)

	// Samples are laid out row-major: sample s of element i lands at
	// flat index s·len(means) + i
	for i := range means {
		n.dist.Mu = means[i]
		n.dist.Sigma = stddevs[i]

		for s := 0; s < n.numSamples; s++ {
			outData[s*len(means)+i] = n.dist.Rand()
		}
	}

	return out, nil
}

func (n *normalSampleOp) checkInputs(inputs ...G.Value) error {
	if err := godist.CheckArity(n, len(inputs)); err != nil {
		return err
	}

	mean, ok := inputs[0].(tensor.Tensor)
	if !ok || mean == nil {
		return fmt.Errorf("cannot sample from nil mean")
	} else if mean.Size() == 0 {
		return fmt.Errorf("cannot sample from empty mean tensor")
	} else if !mean.Shape().Eq(n.shape) {
		return fmt.Errorf("expected mean to have shape %v but got %v",
			n.shape, mean.Shape())
	} else if mean.Dtype() != tensor.Float64 {
		return fmt.Errorf("expected mean to have dtype %v but got %v",
			tensor.Float64, mean.Dtype())
	}

	stddev, ok := inputs[1].(tensor.Tensor)
	if !ok || stddev == nil {
		return fmt.Errorf("cannot sample from nil stddev")
	} else if stddev.Size() == 0 {
		return fmt.Errorf("cannot sample from empty stddev tensor")
	} else if !stddev.Shape().Eq(n.shape) {
		return fmt.Errorf("expected stddev to have shape %v but got %v",
			n.shape, stddev.Shape())
	} else if stddev.Dtype() != tensor.Float64 {
		return fmt.Errorf("expected stddev to have dtype %v but got %v",
			tensor.Float64, stddev.Dtype())
	}

	return nil
}
