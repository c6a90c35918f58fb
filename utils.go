package godist

import (
	"fmt"
	"hash/fnv"
	"time"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// SimpleHash constructs the 32-bit FNV-1a hash of a Gorgonia Op.
// Taken from Gorgonia.
func SimpleHash(op G.Op) uint32 {
	h := fnv.New32a()
	op.WriteHash(h)
	return h.Sum32()
}

// CheckArity returns an error if the number of inputs does not match
// the arity of op
func CheckArity(op G.Op, inputs int) error {
	if inputs != op.Arity() && op.Arity() >= 0 {
		return fmt.Errorf("%v has an arity of %d. Got %d instead", op,
			op.Arity(), inputs)
	}
	return nil
}

// UnixNano appends an _ followed by the current Unix time in
// nanoseconds to name. Useful for generating unique node names.
func UnixNano(name string) string {
	return fmt.Sprintf("%v_%v", name, time.Now().UnixNano())
}

// scalarVal extracts the float64 held by a scalar Value
func scalarVal(v G.Value) (float64, error) {
	switch s := v.(type) {
	case *G.F64:
		return float64(*s), nil

	case tensor.Tensor:
		switch data := s.Data().(type) {
		case float64:
			return data, nil

		case []float64:
			if len(data) == 1 {
				return data[0], nil
			}
		}
	}

	return 0, fmt.Errorf("scalarVal: value %v is not a float64 scalar", v)
}

// vecVal extracts the float64 data backing a non-scalar Value
func vecVal(v G.Value) ([]float64, error) {
	t, ok := v.(tensor.Tensor)
	if !ok {
		return nil, fmt.Errorf("vecVal: expected a tensor but got %T", v)
	}

	switch data := t.Data().(type) {
	case []float64:
		return data, nil

	case float64:
		return []float64{data}, nil
	}

	return nil, fmt.Errorf("vecVal: dtype %v not supported", t.Dtype())
}
