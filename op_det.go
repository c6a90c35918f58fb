package godist

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	"gonum.org/v1/gonum/mat"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// detOp computes the determinant of a square matrix
type detOp struct{}

func newDetOp() *detOp {
	return &detOp{}
}

func (d *detOp) Arity() int { return 1 }

func (d *detOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	in := G.TensorType{Dims: 2, Of: a}
	return hm.NewFnType(in, a)
}

func (d *detOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(d, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return tensor.ScalarShape(), nil
}

func (d *detOp) ReturnsPtr() bool { return false }

func (d *detOp) CallsExtern() bool { return false }

func (d *detOp) OverwritesInput() int { return -1 }

func (d *detOp) String() string { return "Det" }

func (d *detOp) WriteHash(h hash.Hash) { fmt.Fprint(h, d.String()) }

func (d *detOp) Hashcode() uint32 { return SimpleHash(d) }

func (d *detOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(d, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	a, err := squareDense(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return G.NewF64(mat.Det(a)), nil
}

func (d *detOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(d, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &detDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, inputs[0], output, grad)

	return nodes, err
}

func (d *detOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("det operator only supports one input, got %d "+
			"instead", inputs))
	}
	return []bool{true}
}

// detDiffOp computes the gradient of the determinant:
//
//	∂L/∂A = ḡ · det(A) · A⁻ᵀ
//
// where ḡ is the incoming scalar gradient. A must be invertible for
// the gradient to exist.
type detDiffOp struct{}

func (d *detDiffOp) Arity() int { return 3 }

func (d *detDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	t := G.TensorType{Dims: 2, Of: a}
	return hm.NewFnType(t, a, a, t)
}

func (d *detDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(d, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (d *detDiffOp) ReturnsPtr() bool { return false }

func (d *detDiffOp) CallsExtern() bool { return false }

func (d *detDiffOp) OverwritesInput() int { return -1 }

func (d *detDiffOp) String() string { return "DetDiff" }

func (d *detDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, d.String()) }

func (d *detDiffOp) Hashcode() uint32 { return SimpleHash(d) }

func (d *detDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(d, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	a, err := squareDense(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	det, err := scalarVal(inputs[1])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	grad, err := scalarVal(inputs[2])
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, fmt.Errorf("do: could not invert matrix: %v", err)
	}

	var out mat.Dense
	out.CloneFrom(inv.T())
	out.Scale(grad*det, &out)

	return denseToTensor(&out), nil
}
