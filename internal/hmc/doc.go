// Package hmc provides the core primitives for Hamiltonian Monte Carlo
// sampling over two-dimensional target densities.
//
// The package defines the vocabulary shared by the rest of the engine:
//
//   - [Point]: a 2-D position or momentum vector
//   - [Target]: a target density via potential energy U(q) = -log p(q)
//     and its analytic gradient
//   - [Integrator]: a symplectic trajectory integrator
//   - [Kinetic]: the kinetic energy of a momentum under an identity mass
//     matrix
//
// # Divergence
//
// Numerical divergence during integration is not an error. An integrator
// that produces a non-finite state reports ok=false, and the chain driver
// treats the proposed Hamiltonian as +Inf so the Metropolis step rejects
// the proposal and the chain continues.
//
// # Thread Safety
//
// Targets are pure and safe for concurrent use. Chains own their random
// source and must not be shared between goroutines; run one chain per
// goroutine instead (see the chain package's Ensemble).
package hmc
