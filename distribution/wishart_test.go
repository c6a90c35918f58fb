package distribution

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
	G "gorgonia.org/gorgonia"
)

func TestWishartSample(t *testing.T) {
	const size int = 10
	const dim int = 3
	const df float64 = 5.0

	scale := mat.NewSymDense(dim, []float64{
		2.0, 0.3, 0.1,
		0.3, 1.5, 0.2,
		0.1, 0.2, 1.0,
	})

	samples, err := Wishart.Sample(df, scale, size)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != size {
		t.Fatalf("expected %v samples but got %v", size, len(samples))
	}

	for _, x := range samples {
		r, c := x.Dims()
		if r != dim || c != dim {
			t.Errorf("expected a %v×%v variate but got %v×%v", dim, dim, r, c)
		}

		// Every variate is symmetric positive definite
		var chol mat.Cholesky
		if !chol.Factorize(x) {
			t.Errorf("drew a variate that is not positive definite: %v",
				mat.Formatted(x))
		}
	}
}

func TestWishartSampleInvalidDf(t *testing.T) {
	scale := mat.NewSymDense(3, []float64{
		1.0, 0.0, 0.0,
		0.0, 1.0, 0.0,
		0.0, 0.0, 1.0,
	})

	// Both below and at the dim-1 boundary must error, not panic
	for _, df := range []float64{1.0, 2.0} {
		if _, err := Wishart.Sample(df, scale, 1); err == nil {
			t.Errorf("expected an error for %v degrees of freedom", df)
		}
	}
}

func TestWishartSampleIndefiniteScale(t *testing.T) {
	scale := mat.NewSymDense(2, []float64{
		1.0, 0.0,
		0.0, -1.0,
	})

	if _, err := Wishart.Sample(5.0, scale, 1); err == nil {
		t.Error("expected an error for an indefinite scale matrix")
	}
}

func TestWishartLogProb(t *testing.T) {
	g := G.NewGraph()
	out, err := Wishart.LogProb(
		matrixNode(g, 2, []float64{1.0, 0.0, 0.0, 1.0}),
		scalarNode(t, g, "df", 3.0),
		matrixNode(g, 2, []float64{1.0, 0.0, 0.0, 1.0}),
	)
	if out != nil {
		t.Error("expected a nil node")
	}
	if !errors.Is(err, ErrWishartLogProb) {
		t.Errorf("expected ErrWishartLogProb but got %v", err)
	}
}
