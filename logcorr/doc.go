// Package logcorr maps correlation matrices to and from the off-diagonal
// entries of their matrix logarithm — the coordinate system that makes
// correlation structures estimable by unconstrained optimization.
//
// 🚀 Why log-correlation coordinates?
//
//	For a correlation matrix C (symmetric positive definite, unit
//	diagonal), the strict lower triangle of log C is an unconstrained
//	point in R^{n(n−1)/2} — and it determines C uniquely. The diagonal
//	of log C carries no information: it is exactly the diagonal that
//	makes exp(log C) have unit diagonal, so it can be dropped on the
//	way out and recovered on the way back.
//
// ✨ The two mappers:
//
//   - Forward: C → offdiag(log C). One symmetric eigen-decomposition,
//     then a fixed row-major scan of the strict lower triangle.
//   - Inverse: offdiag vector → C. The diagonal of log C is the unknown;
//     it is the fixed point of
//
//     diag(A) ← diag(A) − log(diag(exp A))
//
//     starting from a zero diagonal. Each sweep costs one symmetric
//     eigen-decomposition, O(n³); the iteration count — not n — is what
//     reacts to the tolerance.
//
// Scan order (shared by both mappers): strict lower triangle, row-major —
// (1,0), (2,0), (2,1), (3,0), … Both directions go through the same pair
// of pack/unpack helpers, so they cannot disagree.
//
// Tolerance: the stopping test is max|diag(exp A) − 1| < Tol. The band
// [MinRecommendedTol, MaxRecommendedTol] is recommended; out-of-band
// values are accepted with degraded guarantees (see types.go).
//
// ⚙️ Usage:
//
//	v, err := logcorr.Forward(corr)          // n(n−1)/2 coordinates
//	c, iters, err := logcorr.Inverse(v, n, nil) // nil opts = defaults
//
// Every call is pure and reentrant: scratch buffers are allocated once
// per call and reused only across that call's iterations, never shared.
package logcorr
