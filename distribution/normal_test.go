package distribution

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// spdBacking returns the row-major backing of a random size×size
// symmetric positive-definite matrix
func spdBacking(size int) []float64 {
	a := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a.Set(i, j, rand.NormFloat64())
		}
	}

	var spd mat.Dense
	spd.Mul(a.T(), a)
	for i := 0; i < size; i++ {
		spd.Set(i, i, spd.At(i, i)+1.0)
	}

	backing := make([]float64, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			backing[i*size+j] = spd.At(i, j)
		}
	}
	return backing
}

// TestNormalLogProbStandard checks the density of the standard Normal
// at its mode, -0.5·log(2π), through the nil-mean and nil-covariance
// defaults as well as explicit parameters.
func TestNormalLogProbStandard(t *testing.T) {
	const threshold float64 = 0.00001

	expected := -0.5 * math.Log(2.0*math.Pi)

	g := G.NewGraph()
	out, err := Norm.LogProb(scalarNode(t, g, "x", 0.0), nil, nil)
	if err != nil {
		t.Error(err)
	}
	if computed := runScalar(t, g, out); math.Abs(
		computed-expected) > threshold {
		t.Errorf("expected: %v received: %v", expected, computed)
	}

	g = G.NewGraph()
	out, err = Norm.LogProb(
		scalarNode(t, g, "x", 0.0),
		scalarNode(t, g, "mu", 0.0),
		scalarNode(t, g, "sigma", 1.0),
	)
	if err != nil {
		t.Error(err)
	}
	if computed := runScalar(t, g, out); math.Abs(
		computed-expected) > threshold {
		t.Errorf("expected: %v received: %v", expected, computed)
	}
}

func TestNormalLogProbUnivariate(t *testing.T) {
	const threshold float64 = 0.00001
	const tests int = 30

	for i := 0; i < tests; i++ {
		mu := rand.NormFloat64()
		variance := math.Exp(rand.Float64())
		dist := distuv.Normal{Mu: mu, Sigma: math.Sqrt(variance)}
		x := dist.Rand()

		g := G.NewGraph()
		out, err := Norm.LogProb(
			scalarNode(t, g, "x", x),
			scalarNode(t, g, "mu", mu),
			scalarNode(t, g, "sigma", variance),
		)
		if err != nil {
			t.Error(err)
		}

		expected := dist.LogProb(x)
		if computed := runScalar(t, g, out); math.Abs(
			computed-expected) > threshold {
			t.Errorf("expected: %v received: %v for x: %v mu: %v "+
				"variance: %v", expected, computed, x, mu, variance)
		}
	}
}

// TestNormalLogProbCovRepresentations checks that equivalent
// covariances in different representations produce identical
// densities: a scalar variance against the 1×1 matrix holding it, a
// variance vector against the matrix with that diagonal, and the
// identity defaults against each other.
func TestNormalLogProbCovRepresentations(t *testing.T) {
	const threshold float64 = 0.00001
	const size int = 4

	x := make([]float64, size)
	for i := range x {
		x[i] = rand.NormFloat64()
	}

	eval := func(point []float64, sigma func(g *G.ExprGraph) *G.Node) float64 {
		g := G.NewGraph()
		var s *G.Node
		if sigma != nil {
			s = sigma(g)
		}
		out, err := Norm.LogProb(
			vectorNode(g, append([]float64(nil), point...)), nil, s)
		if err != nil {
			t.Fatal(err)
		}
		return runScalar(t, g, out)
	}

	// Identity covariance: absent, scalar 1, unit vector, identity matrix
	identity := make([]float64, size*size)
	for i := 0; i < size; i++ {
		identity[i*size+i] = 1.0
	}
	absent := eval(x, nil)
	unit := eval(x, func(g *G.ExprGraph) *G.Node {
		return scalarNode(t, g, "sigma", 1.0)
	})
	unitVec := eval(x, func(g *G.ExprGraph) *G.Node {
		return vectorNode(g, ones64(size))
	})
	unitMat := eval(x, func(g *G.ExprGraph) *G.Node {
		return matrixNode(g, size, append([]float64(nil), identity...))
	})
	for _, lp := range []float64{unit, unitVec, unitMat} {
		if math.Abs(absent-lp) > threshold {
			t.Errorf("expected: %v received: %v", absent, lp)
		}
	}

	// Scalar variance against the 1×1 matrix holding it
	s := math.Exp(rand.Float64())
	point := []float64{rand.NormFloat64()}
	scalarLp := eval(point, func(g *G.ExprGraph) *G.Node {
		return scalarNode(t, g, "sigma", s)
	})
	oneByOneLp := eval(point, func(g *G.ExprGraph) *G.Node {
		return matrixNode(g, 1, []float64{s})
	})
	if math.Abs(scalarLp-oneByOneLp) > threshold {
		t.Errorf("expected: %v received: %v", scalarLp, oneByOneLp)
	}

	// Diagonal covariance: variance vector v and diag(v) matrix
	v := make([]float64, size)
	diagBacking := make([]float64, size*size)
	for i := range v {
		v[i] = math.Exp(rand.Float64())
		diagBacking[i*size+i] = v[i]
	}
	diagVecLp := eval(x, func(g *G.ExprGraph) *G.Node {
		return vectorNode(g, append([]float64(nil), v...))
	})
	diagMatLp := eval(x, func(g *G.ExprGraph) *G.Node {
		return matrixNode(g, size, append([]float64(nil), diagBacking...))
	})
	if math.Abs(diagVecLp-diagMatLp) > threshold {
		t.Errorf("expected: %v received: %v", diagVecLp, diagMatLp)
	}
}

// TestNormalLogProbFullCov checks the full-covariance density against
// the multivariate Normal with the same mean and covariance.
func TestNormalLogProbFullCov(t *testing.T) {
	const threshold float64 = 0.00001
	const tests int = 10
	const maxSize int = 5
	const minSize int = 2

	for i := 0; i < tests; i++ {
		size := minSize + rand.Intn(maxSize-minSize)
		backing := spdBacking(size)

		mu := make([]float64, size)
		x := make([]float64, size)
		for j := range mu {
			mu[j] = rand.NormFloat64()
			x[j] = rand.NormFloat64()
		}

		sym := mat.NewSymDense(size, nil)
		for r := 0; r < size; r++ {
			for c := r; c < size; c++ {
				sym.SetSym(r, c, backing[r*size+c])
			}
		}
		dist, ok := distmv.NewNormal(mu, sym, nil)
		if !ok {
			t.Fatalf("could not construct a %v-dimensional Normal", size)
		}

		g := G.NewGraph()
		out, err := Norm.LogProb(
			vectorNode(g, append([]float64(nil), x...)),
			vectorNode(g, append([]float64(nil), mu...)),
			matrixNode(g, size, backing),
		)
		if err != nil {
			t.Error(err)
		}

		expected := dist.LogProb(x)
		if computed := runScalar(t, g, out); math.Abs(
			computed-expected) > threshold {
			t.Errorf("expected: %v received: %v for x: %v mu: %v",
				expected, computed, x, mu)
		}
	}
}

func TestNormalEntropy(t *testing.T) {
	const threshold float64 = 0.00001
	const size int = 4

	// Scalar covariance against the univariate entropy
	variance := math.Exp(rand.Float64())
	g := G.NewGraph()
	out, err := Norm.Entropy(scalarNode(t, g, "sigma", variance))
	if err != nil {
		t.Error(err)
	}
	expected := distuv.Normal{Mu: 0.0, Sigma: math.Sqrt(variance)}.Entropy()
	if computed := runScalar(t, g, out); math.Abs(
		computed-expected) > threshold {
		t.Errorf("expected: %v received: %v for variance: %v", expected,
			computed, variance)
	}

	// Diagonal covariance against the closed form
	v := make([]float64, size)
	logDet := 0.0
	for i := range v {
		v[i] = math.Exp(rand.Float64())
		logDet += math.Log(v[i])
	}
	g = G.NewGraph()
	out, err = Norm.Entropy(vectorNode(g, append([]float64(nil), v...)))
	if err != nil {
		t.Error(err)
	}
	expected = 0.5 * (float64(size) + float64(size)*math.Log(2.0*math.Pi) +
		logDet)
	if computed := runScalar(t, g, out); math.Abs(
		computed-expected) > threshold {
		t.Errorf("expected: %v received: %v for variances: %v", expected,
			computed, v)
	}

	// Full covariance against the closed form
	backing := spdBacking(size)
	g = G.NewGraph()
	out, err = Norm.Entropy(matrixNode(g, size,
		append([]float64(nil), backing...)))
	if err != nil {
		t.Error(err)
	}
	det := mat.Det(mat.NewDense(size, size, backing))
	expected = 0.5 * (float64(size) + float64(size)*math.Log(2.0*math.Pi) +
		math.Log(det))
	if computed := runScalar(t, g, out); math.Abs(
		computed-expected) > threshold {
		t.Errorf("expected: %v received: %v", expected, computed)
	}

	if _, err := Norm.Entropy(nil); err == nil {
		t.Error("expected an error for a nil covariance")
	}
}

// TestNormalSample loosely checks the first two sample moments.
func TestNormalSample(t *testing.T) {
	const size int = 10000
	const loc float64 = 1.5
	const scale float64 = 2.0

	samples := Norm.Sample(loc, scale, size)
	if len(samples) != size {
		t.Fatalf("expected %v samples but got %v", size, len(samples))
	}

	mean := 0.0
	for _, x := range samples {
		mean += x
	}
	mean /= float64(size)

	variance := 0.0
	for _, x := range samples {
		variance += (x - mean) * (x - mean)
	}
	variance /= float64(size)

	if math.Abs(mean-loc) > 0.1 {
		t.Errorf("sample mean %v too far from %v", mean, loc)
	}
	if math.Abs(variance-scale*scale) > 0.25 {
		t.Errorf("sample variance %v too far from %v", variance, scale*scale)
	}
}
