package distribution

import (
	"math"
	"math/rand"
	"testing"

	G "gorgonia.org/gorgonia"
)

// studentsTLogProb is a host-side oracle for the log density used by
// StudentsT.LogProb.
func studentsTLogProb(x, df, loc, scale float64) float64 {
	lgDf1, _ := math.Lgamma(df + 1.0)
	lgHalfDf, _ := math.Lgamma(0.5 * df)

	z := (x - loc) / scale
	return 0.5*lgDf1 - lgHalfDf -
		0.5*(math.Log(math.Pi)+math.Log(df)) +
		math.Log(scale) -
		0.5*(df+1.0)*math.Log(1.0+z*z/df)
}

func TestStudentsTLogProb(t *testing.T) {
	const threshold float64 = 0.00001
	const tests int = 30

	for i := 0; i < tests; i++ {
		df := rand.Float64()*10.0 + 1.0
		loc := rand.NormFloat64()
		scale := math.Exp(rand.Float64())
		x := loc + rand.NormFloat64()*scale*2.0

		g := G.NewGraph()
		out, err := StudentsT.LogProb(
			scalarNode(t, g, "x", x),
			scalarNode(t, g, "df", df),
			scalarNode(t, g, "loc", loc),
			scalarNode(t, g, "scale", scale),
		)
		if err != nil {
			t.Error(err)
		}

		expected := studentsTLogProb(x, df, loc, scale)
		if computed := runScalar(t, g, out); math.Abs(
			computed-expected) > threshold {
			t.Errorf("expected: %v received: %v for x: %v df: %v loc: %v "+
				"scale: %v", expected, computed, x, df, loc, scale)
		}
	}
}

// TestStudentsTLogProbVec checks the element-wise behavior on a vector
// of observations sharing scalar parameters.
func TestStudentsTLogProbVec(t *testing.T) {
	const threshold float64 = 0.00001
	const size int = 5
	const df float64 = 4.0
	const loc float64 = 1.0
	const scale float64 = 2.0

	xBacking := make([]float64, size)
	expected := make([]float64, size)
	for i := range xBacking {
		xBacking[i] = loc + rand.NormFloat64()*scale
		expected[i] = studentsTLogProb(xBacking[i], df, loc, scale)
	}

	g := G.NewGraph()
	out, err := StudentsT.LogProb(
		vectorNode(g, xBacking),
		scalarNode(t, g, "df", df),
		scalarNode(t, g, "loc", loc),
		scalarNode(t, g, "scale", scale),
	)
	if err != nil {
		t.Error(err)
	}

	computed := run(t, g, out)
	for i := range expected {
		if math.Abs(computed[i]-expected[i]) > threshold {
			t.Errorf("expected: %v received: %v for x: %v", expected[i],
				computed[i], xBacking[i])
		}
	}
}
