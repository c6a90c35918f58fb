package godist

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// reduceProdOp computes the product of the elements of a vector,
// reducing it to a scalar
type reduceProdOp struct{}

func newReduceProdOp() *reduceProdOp {
	return &reduceProdOp{}
}

func (r *reduceProdOp) Arity() int { return 1 }

func (r *reduceProdOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	in := G.TensorType{Dims: 1, Of: a}
	return hm.NewFnType(in, a)
}

func (r *reduceProdOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(r, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return tensor.ScalarShape(), nil
}

func (r *reduceProdOp) ReturnsPtr() bool { return false }

func (r *reduceProdOp) CallsExtern() bool { return false }

func (r *reduceProdOp) OverwritesInput() int { return -1 }

func (r *reduceProdOp) String() string { return "ReduceProd" }

func (r *reduceProdOp) WriteHash(h hash.Hash) { fmt.Fprint(h, r.String()) }

func (r *reduceProdOp) Hashcode() uint32 { return SimpleHash(r) }

func (r *reduceProdOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(r, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	x, err := vecVal(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	prod := 1.0
	for _, elem := range x {
		prod *= elem
	}

	return G.NewF64(prod), nil
}

func (r *reduceProdOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(r, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &reduceProdDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, inputs[0], grad)

	return nodes, err
}

func (r *reduceProdOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("reduceProd operator only supports one input, "+
			"got %d instead", inputs))
	}
	return []bool{true}
}

// reduceProdDiffOp computes the gradient of the product reduction:
//
//	∂L/∂xᵢ = ḡ · Π_{j≠i} xⱼ
//
// The partial products are formed without dividing by xᵢ so that
// zero-valued elements stay differentiable.
type reduceProdDiffOp struct{}

func (r *reduceProdDiffOp) Arity() int { return 2 }

func (r *reduceProdDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	t := G.TensorType{Dims: 1, Of: a}
	return hm.NewFnType(t, a, t)
}

func (r *reduceProdDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(r, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (r *reduceProdDiffOp) ReturnsPtr() bool { return false }

func (r *reduceProdDiffOp) CallsExtern() bool { return false }

func (r *reduceProdDiffOp) OverwritesInput() int { return -1 }

func (r *reduceProdDiffOp) String() string { return "ReduceProdDiff" }

func (r *reduceProdDiffOp) WriteHash(h hash.Hash) {
	fmt.Fprint(h, r.String())
}

func (r *reduceProdDiffOp) Hashcode() uint32 { return SimpleHash(r) }

func (r *reduceProdDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(r, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	x, err := vecVal(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	grad, err := scalarVal(inputs[1])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	n := len(x)
	out := tensor.New(
		tensor.WithShape(n),
		tensor.Of(tensor.Float64),
	)
	outData := out.Data().([]float64)

	// Prefix and suffix products around each element
	prefix := 1.0
	for i := 0; i < n; i++ {
		outData[i] = prefix
		prefix *= x[i]
	}
	suffix := 1.0
	for i := n - 1; i >= 0; i-- {
		outData[i] *= grad * suffix
		suffix *= x[i]
	}

	return out, nil
}
