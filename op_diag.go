package godist

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// diagOp embeds a vector on the diagonal of a square matrix
type diagOp struct{}

func newDiagOp() *diagOp {
	return &diagOp{}
}

func (d *diagOp) Arity() int { return 1 }

func (d *diagOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	in := G.TensorType{Dims: 1, Of: a}
	out := G.TensorType{Dims: 2, Of: a}
	return hm.NewFnType(in, out)
}

func (d *diagOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(d, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	in := inputs[0].(tensor.Shape)
	return tensor.Shape{in[0], in[0]}, nil
}

func (d *diagOp) ReturnsPtr() bool { return false }

func (d *diagOp) CallsExtern() bool { return false }

func (d *diagOp) OverwritesInput() int { return -1 }

func (d *diagOp) String() string { return "Diag" }

func (d *diagOp) WriteHash(h hash.Hash) { fmt.Fprint(h, d.String()) }

func (d *diagOp) Hashcode() uint32 { return SimpleHash(d) }

func (d *diagOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(d, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	x, ok := inputs[0].(tensor.Tensor)
	if !ok {
		return nil, fmt.Errorf("do: expected a tensor but got %T", inputs[0])
	}

	n := x.Shape()[0]
	out := tensor.New(
		tensor.WithShape(n, n),
		tensor.Of(x.Dtype()),
	)

	switch data := x.Data().(type) {
	case []float64:
		outData := out.Data().([]float64)
		for i, elem := range data {
			outData[i*n+i] = elem
		}

	case []float32:
		outData := out.Data().([]float32)
		for i, elem := range data {
			outData[i*n+i] = elem
		}

	default:
		return nil, fmt.Errorf("do: dtype %v not supported", x.Dtype())
	}

	return out, nil
}

func (d *diagOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(d, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &diagDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, grad)

	return nodes, err
}

func (d *diagOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("diag operator only supports one input, got %d "+
			"instead", inputs))
	}
	return []bool{true}
}

// diagDiffOp extracts the diagonal of the incoming gradient, since
// off-diagonal entries of a diagonal embedding do not depend on the
// input vector.
type diagDiffOp struct{}

func (d *diagDiffOp) Arity() int { return 1 }

func (d *diagDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	in := G.TensorType{Dims: 2, Of: a}
	out := G.TensorType{Dims: 1, Of: a}
	return hm.NewFnType(in, out)
}

func (d *diagDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(d, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	in := inputs[0].(tensor.Shape)
	return tensor.Shape{in[0]}, nil
}

func (d *diagDiffOp) ReturnsPtr() bool { return false }

func (d *diagDiffOp) CallsExtern() bool { return false }

func (d *diagDiffOp) OverwritesInput() int { return -1 }

func (d *diagDiffOp) String() string { return "DiagDiff" }

func (d *diagDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, d.String()) }

func (d *diagDiffOp) Hashcode() uint32 { return SimpleHash(d) }

func (d *diagDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(d, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	grad, ok := inputs[0].(tensor.Tensor)
	if !ok {
		return nil, fmt.Errorf("do: expected a tensor but got %T", inputs[0])
	}

	n := grad.Shape()[0]
	out := tensor.New(
		tensor.WithShape(n),
		tensor.Of(grad.Dtype()),
	)

	switch gradData := grad.Data().(type) {
	case []float64:
		outData := out.Data().([]float64)
		for i := 0; i < n; i++ {
			outData[i] = gradData[i*n+i]
		}

	case []float32:
		outData := out.Data().([]float32)
		for i := 0; i < n; i++ {
			outData[i] = gradData[i*n+i]
		}

	default:
		return nil, fmt.Errorf("do: dtype %v not supported", grad.Dtype())
	}

	return out, nil
}
