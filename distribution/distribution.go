// Package distribution provides probability distributions for
// variational inference. Each distribution exposes non-differentiable
// random sampling, backed by Gonum, and a differentiable log density
// or log mass evaluated on a Gorgonia graph, so that densities can
// participate in gradient-based optimization.
//
// Distributions are stateless: parameters are passed per call and no
// instance holds mutable fields, so the shared instances below are
// safe for concurrent use.
package distribution

// Shared, ready-to-use instance of each distribution.
var (
	Bernoulli   bernoulli
	Beta        beta
	Dirichlet   dirichlet
	Expon       exponential
	Gamma       gamma
	InvGamma    invGamma
	Multinomial multinomial
	Norm        normal
	Poisson     poisson
	StudentsT   studentsT
	Wishart     wishart
)
