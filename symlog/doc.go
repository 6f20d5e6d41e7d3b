// Package symlog computes matrix exponentials and logarithms of real
// symmetric matrices through their eigen-decomposition.
//
// For a symmetric A = Q Λ Qᵗ (real eigenvalues Λ, orthonormal Q):
//
//	exp(A) = Q e^Λ Qᵗ      — always defined
//	log(A) = Q log(Λ) Qᵗ   — defined only when every eigenvalue is > 0,
//	                         i.e. when A is positive definite
//
// Both functions apply the scalar map elementwise to the eigenvalues and
// reassemble with the same eigenvectors. The symmetric-specific solver is
// used deliberately: eigenvalues are guaranteed real and the eigenbasis
// orthonormal, so the result is unique and independent of the solver's
// ordering or sign conventions. Outputs are symmetrized by averaging with
// their own transpose to scrub floating-point asymmetry from the
// reassembly products.
//
// Errors:
//   - ErrNilMatrix           — nil input.
//   - ErrEigenFailed         — the eigen factorization did not converge.
//   - ErrNotPositiveDefinite — LogSym on a matrix with an eigenvalue ≤ 0.
//
// Complexity: one symmetric eigen-decomposition plus two dense products,
// O(n³) time, O(n²) memory per call. No package state; every call is
// independent and safe to run concurrently.
package symlog
