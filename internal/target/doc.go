// Package target provides the closed set of target distributions the
// sampler can draw from.
//
// Each target implements [hmc.Target], supplying the potential energy
// U(q) = -log p(q) and its analytic gradient:
//
//   - [Gaussian]: quadratic bowl, configurable mean and covariance
//   - [Bimodal]: equal-weight mixture of two isotropic Gaussian modes
//   - [Banana]: Rosenbrock-shaped curved ridge
//
// The set is fixed; [New] dispatches by name and fails with
// [hmc.ErrUnknownTarget] for anything else. Adding a distribution means
// adding a type here and a case to New, not subclassing.
package target
