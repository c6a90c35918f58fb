package distribution

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/godist"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
)

// studentsT is Student's t distribution with df degrees of freedom,
// location loc, and the given scale
type studentsT struct{}

// Sample draws size independent variates with df degrees of freedom,
// location loc, and the given scale. Sampling is not differentiable.
func (studentsT) Sample(df, loc, scale float64, size int) []float64 {
	dist := distuv.StudentsT{Mu: loc, Sigma: scale, Nu: df}

	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// LogProb returns the log density of x:
//
//	0.5·logΓ(df + 1) - logΓ(0.5·df) - 0.5·(log π + log df) + log(scale)
//	  - 0.5·(df + 1)·log(1 + (1/df)·((x - loc)/scale)²)
func (studentsT) LogProb(x, df, loc, scale *G.Node) (*G.Node, error) {
	x, err := squeeze(x)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	df, err = squeeze(df)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	loc, err = squeeze(loc)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	scale, err = squeeze(scale)
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	g := x.Graph()
	half := g.Constant(G.NewF64(0.5))
	one := g.Constant(G.NewF64(1.0))
	two := g.Constant(G.NewF64(2.0))
	logPi := g.Constant(G.NewF64(math.Log(math.Pi)))

	lgDf1, err := godist.LogGamma(G.Must(G.Add(df, one)))
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}
	lgHalfDf, err := godist.LogGamma(G.Must(G.HadamardProd(half, df)))
	if err != nil {
		return nil, fmt.Errorf("logProb: %v", err)
	}

	out := G.Must(G.HadamardProd(half, lgDf1))
	out = G.Must(G.Sub(out, lgHalfDf))
	out = G.Must(G.Sub(out, G.Must(G.HadamardProd(
		half,
		G.Must(G.Add(logPi, G.Must(G.Log(df)))),
	))))
	out = G.Must(G.Add(out, G.Must(G.Log(scale))))

	z := G.Must(G.HadamardDiv(G.Must(G.Sub(x, loc)), scale))
	z = G.Must(G.Pow(z, two))
	inner := G.Must(G.Add(one, G.Must(G.HadamardDiv(z, df))))

	tail := G.Must(G.HadamardProd(half, G.Must(G.Add(df, one))))
	tail = G.Must(G.HadamardProd(tail, G.Must(G.Log(inner))))

	return G.Sub(out, tail)
}
