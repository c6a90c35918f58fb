package godist

import (
	"fmt"
	"hash"
	"math"

	"github.com/chewxy/hm"
	"gonum.org/v1/gonum/mathext"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// lgammaOp computes the element-wise log of the absolute value of the
// Gamma function
type lgammaOp struct{}

func newLgammaOp() *lgammaOp {
	return &lgammaOp{}
}

func (l *lgammaOp) Arity() int { return 1 }

func (l *lgammaOp) Type() hm.Type {
	// Pointwise unary operation: op :: (Arithable a) => a -> a
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

// InferShape returns the output shape as a function of the inputs
func (l *lgammaOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(l, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (l *lgammaOp) ReturnsPtr() bool { return false }

func (l *lgammaOp) CallsExtern() bool { return false }

func (l *lgammaOp) OverwritesInput() int { return -1 }

func (l *lgammaOp) String() string { return "Lgamma" }

// WriteHash writes the hash of the receiver to a hash struct
func (l *lgammaOp) WriteHash(h hash.Hash) { fmt.Fprint(h, l.String()) }

// Hashcode returns the hash code of the receiver
func (l *lgammaOp) Hashcode() uint32 { return SimpleHash(l) }

func (l *lgammaOp) Do(values ...G.Value) (G.Value, error) {
	err := l.checkInputs(values...)
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	switch v := values[0].(type) {
	case *G.F64:
		out, _ := math.Lgamma(float64(*v))
		return G.NewF64(out), nil

	case *G.F32:
		out, _ := math.Lgamma(float64(*v))
		return G.NewF32(float32(out)), nil

	case tensor.Tensor:
		out := tensor.New(
			tensor.WithShape(v.Shape().Clone()...),
			tensor.Of(v.Dtype()),
		)

		switch data := v.Data().(type) {
		case []float64:
			outData := out.Data().([]float64)
			for i, elem := range data {
				outData[i], _ = math.Lgamma(elem)
			}

		case []float32:
			outData := out.Data().([]float32)
			for i, elem := range data {
				lg, _ := math.Lgamma(float64(elem))
				outData[i] = float32(lg)
			}

		default:
			return nil, fmt.Errorf("do: dtype %v not supported", v.Dtype())
		}

		return out, nil
	}

	return nil, fmt.Errorf("do: unable to compute lgamma on type %T",
		values[0])
}

func (l *lgammaOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(l, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &lgammaDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, inputs[0], grad)

	return nodes, err
}

func (l *lgammaOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("lgamma operator only supports one input, got "+
			"%d instead", inputs))
	}
	return []bool{true}
}

// checkInputs returns an error if the input to this Op is invalid
func (l *lgammaOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(l, len(inputs)); err != nil {
		return err
	}

	_, okF64 := inputs[0].(*G.F64)
	_, okF32 := inputs[0].(*G.F32)
	_, okTensor := inputs[0].(tensor.Tensor)

	if !(okF64 || okF32 || okTensor) {
		return fmt.Errorf("expected input to be a scalar or tensor, got %T",
			inputs[0])
	}
	if inputs[0] == nil {
		return fmt.Errorf("no input")
	}

	return nil
}

// lgammaDiffOp is the derivative of lgammaOp. The derivative of the
// log-Gamma function is the digamma function.
type lgammaDiffOp struct{}

func (l *lgammaDiffOp) Arity() int { return 2 }

func (l *lgammaDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a, a)
}

func (l *lgammaDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(l, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (l *lgammaDiffOp) ReturnsPtr() bool { return false }

func (l *lgammaDiffOp) CallsExtern() bool { return false }

func (l *lgammaDiffOp) OverwritesInput() int { return -1 }

func (l *lgammaDiffOp) String() string { return "LgammaDiff" }

func (l *lgammaDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, l.String()) }

func (l *lgammaDiffOp) Hashcode() uint32 { return SimpleHash(l) }

func (l *lgammaDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(l, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	switch x := inputs[0].(type) {
	case *G.F64:
		grad, err := scalarVal(inputs[1])
		if err != nil {
			return nil, fmt.Errorf("do: %v", err)
		}
		return G.NewF64(grad * mathext.Digamma(float64(*x))), nil

	case *G.F32:
		grad, ok := inputs[1].(*G.F32)
		if !ok {
			return nil, fmt.Errorf("do: expected a float32 gradient but "+
				"got %T", inputs[1])
		}
		out := float64(*grad) * mathext.Digamma(float64(*x))
		return G.NewF32(float32(out)), nil

	case tensor.Tensor:
		grad, ok := inputs[1].(tensor.Tensor)
		if !ok {
			return nil, fmt.Errorf("do: expected a tensor gradient but got %T",
				inputs[1])
		}

		ret := tensor.New(
			tensor.WithShape(x.Shape().Clone()...),
			tensor.Of(x.Dtype()),
		)

		switch xData := x.Data().(type) {
		case []float64:
			gradData, ok := grad.Data().([]float64)
			if !ok {
				return nil, fmt.Errorf("do: expected a float64 gradient but "+
					"got %v", grad.Dtype())
			}
			retData := ret.Data().([]float64)
			for i, elem := range xData {
				retData[i] = gradData[i] * mathext.Digamma(elem)
			}

		case []float32:
			gradData, ok := grad.Data().([]float32)
			if !ok {
				return nil, fmt.Errorf("do: expected a float32 gradient but "+
					"got %v", grad.Dtype())
			}
			retData := ret.Data().([]float32)
			for i, elem := range xData {
				dg := mathext.Digamma(float64(elem))
				retData[i] = float32(float64(gradData[i]) * dg)
			}

		default:
			return nil, fmt.Errorf("do: dtype %v not supported", x.Dtype())
		}

		return ret, nil
	}

	return nil, fmt.Errorf("do: unable to compute the lgamma gradient on "+
		"type %T", inputs[0])
}
