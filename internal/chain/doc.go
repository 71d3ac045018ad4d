// Package chain drives Hamiltonian Monte Carlo chains: it resamples
// momentum, integrates a leapfrog trajectory, applies the Metropolis
// correction and records the visited positions.
//
// Two usage styles are supported:
//
//   - [Sample] / [SampleSeeded]: one-shot calls matching the engine's
//     external contract. Each call owns a fresh generator, seeded from
//     crypto/rand (Sample) or by the caller (SampleSeeded).
//   - [Chain]: a reusable driver whose generator persists across Run
//     calls, so a sequence of batches started from the previous batch's
//     last sample forms one statistically coherent chain. The live
//     visualization uses this mode.
//
// Chains are single-threaded and run to completion; for concurrent
// sampling start independent chains (see [Ensemble]).
package chain
