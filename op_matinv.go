package godist

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	"gonum.org/v1/gonum/mat"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// matInvOp computes the inverse of a square matrix
type matInvOp struct{}

func newMatInvOp() *matInvOp {
	return &matInvOp{}
}

func (m *matInvOp) Arity() int { return 1 }

func (m *matInvOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	t := G.TensorType{Dims: 2, Of: a}
	return hm.NewFnType(t, t)
}

func (m *matInvOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(m, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (m *matInvOp) ReturnsPtr() bool { return false }

func (m *matInvOp) CallsExtern() bool { return false }

func (m *matInvOp) OverwritesInput() int { return -1 }

func (m *matInvOp) String() string { return "MatInv" }

func (m *matInvOp) WriteHash(h hash.Hash) { fmt.Fprint(h, m.String()) }

func (m *matInvOp) Hashcode() uint32 { return SimpleHash(m) }

func (m *matInvOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(m, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	a, err := squareDense(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, fmt.Errorf("do: could not invert matrix: %v", err)
	}

	return denseToTensor(&inv), nil
}

func (m *matInvOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(m, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	// The gradient depends only on the op's output A⁻¹
	diffOp := &matInvDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, output, grad)

	return nodes, err
}

func (m *matInvOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("matInv operator only supports one input, got "+
			"%d instead", inputs))
	}
	return []bool{true}
}

// matInvDiffOp computes the gradient of the matrix inverse:
//
//	∂L/∂A = -A⁻ᵀ · Ḡ · A⁻ᵀ
//
// where Ḡ is the incoming gradient and A⁻¹ the forward output.
type matInvDiffOp struct{}

func (m *matInvDiffOp) Arity() int { return 2 }

func (m *matInvDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	t := G.TensorType{Dims: 2, Of: a}
	return hm.NewFnType(t, t, t)
}

func (m *matInvDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(m, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (m *matInvDiffOp) ReturnsPtr() bool { return false }

func (m *matInvDiffOp) CallsExtern() bool { return false }

func (m *matInvDiffOp) OverwritesInput() int { return -1 }

func (m *matInvDiffOp) String() string { return "MatInvDiff" }

func (m *matInvDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, m.String()) }

func (m *matInvDiffOp) Hashcode() uint32 { return SimpleHash(m) }

func (m *matInvDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(m, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	inv, err := squareDense(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	grad, err := squareDense(inputs[1])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	var out mat.Dense
	out.Product(inv.T(), grad, inv.T())
	out.Scale(-1.0, &out)

	return denseToTensor(&out), nil
}

// squareDense copies the data of a square-matrix Value into a gonum
// dense matrix
func squareDense(v G.Value) (*mat.Dense, error) {
	t, ok := v.(tensor.Tensor)
	if !ok {
		return nil, fmt.Errorf("squareDense: expected a tensor but got %T", v)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("squareDense: dtype %v not supported",
			t.Dtype())
	}
	if t.Dims() != 2 || t.Shape()[0] != t.Shape()[1] {
		return nil, fmt.Errorf("squareDense: expected a square matrix but "+
			"got shape %v", t.Shape())
	}

	n := t.Shape()[0]
	data := append([]float64(nil), t.Data().([]float64)...)

	return mat.NewDense(n, n, data), nil
}

// denseToTensor wraps the data of a gonum dense matrix in a tensor
func denseToTensor(d *mat.Dense) tensor.Tensor {
	r, c := d.Dims()

	return tensor.New(
		tensor.WithShape(r, c),
		tensor.WithBacking(d.RawMatrix().Data),
	)
}
