// Package covtrans turns covariance matrices into unconstrained real
// vectors and back — so covariance structures can be fitted by plain
// unconstrained optimizers instead of constrained search over the
// positive-definite cone.
//
// 🚀 What is covtrans?
//
//	A small, deterministic library built around the matrix-logarithm
//	parametrization of correlation matrices:
//		• Decompose / Recompose: covariance ↔ (std-devs, correlation)
//		• Forward map: correlation → off-diagonal entries of log C
//		• Inverse map: off-diagonals → correlation, via a fixed-point
//		  iteration on the matrix exponential
//		• Encode / Decode: the full round trip at the module boundary
//
// ✨ Why choose covtrans?
//
//   - Bijective – n(n−1)/2 log-correlation entries plus n standard
//     deviations pin down the covariance matrix uniquely
//   - Unconstrained – every real vector of the right length is a legal
//     optimizer candidate; no cone projections, no Cholesky jitter
//   - Honest failure modes – sentinel errors, an explicit iteration cap,
//     no partial results
//   - Pure functions – no package state, safe for parallel objective
//     evaluations
//
// Everything is organized under three subpackages:
//
//	symlog/   — matrix exponential & logarithm of symmetric matrices
//	logcorr/  — the forward and inverse correlation mappers
//	covparam/ — Decompose, Recompose, Encode, Decode boundary API
//
// Quick sketch, encode direction:
//
//	Covariance ──Decompose──▶ (σ, C) ──Forward──▶ offdiag(log C)
//	                 │                                  │
//	                 └────────── concatenate ───────────┘
//	                                   │
//	                                   ▼
//	                            ParameterVector
//
// Decode inverts every arrow; the only non-trivial step is recovering
// the diagonal of log C, which logcorr.Inverse does by fixed-point
// iteration (see that package's doc for the recurrence).
//
// See each package's Example tests for runnable usage.
//
//	go get github.com/katalvlaran/covtrans
package covtrans
