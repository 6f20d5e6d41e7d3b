// Package covparam is the module boundary: it converts covariance
// matrices to unconstrained parameter vectors and back.
//
// A parameter vector for an n×n covariance matrix has length
// n + n(n−1)/2:
//
//	theta = [ σ₁ … σₙ | offdiag(log C) … ]
//
// where σᵢ = √Cov[i,i] and C is the correlation matrix. The first block
// is the standard deviations in original variable order; the second is
// the strict lower triangle of log C in logcorr's row-major scan order.
//
// Four components, individually exported for independent testing:
//
//   - Decompose — covariance → (σ, correlation). Validates shape and
//     symmetry; positive-definiteness is the caller's contract and is
//     not re-verified here.
//   - Recompose — (σ, correlation) → covariance.
//   - Encode    — Decompose + logcorr.Forward, concatenated.
//   - Decode    — split + logcorr.Inverse + Recompose. Also reports the
//     fixed-point iteration count, which is the cost driver when Decode
//     runs inside an optimizer's objective loop.
//
// All functions are pure: no package state, inputs never mutated, safe
// for parallel callers. Errors are package sentinels matched with
// errors.Is; failures from the inverse mapper (logcorr.ErrNotConverged,
// logcorr.ErrBadTolerance, …) pass through unwrapped behind %w.
package covparam
