// SPDX-License-Identifier: MIT
// Package covparam: Encode / Decode boundary operations.
//
// Purpose:
//   - Thin compositions over the Decompose/Recompose kernels and the
//     logcorr mappers; no logic of their own beyond vector layout.
//   - The parameter vector layout is [σ₁…σₙ | offdiag(log C)], total
//     length n + n(n−1)/2.

package covparam

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covtrans/logcorr"
)

// ParamLen returns the parameter vector length for dimension n:
// n standard deviations plus n(n−1)/2 log-correlation coordinates.
func ParamLen(n int) int {
	return n + logcorr.OffDiagLen(n)
}

// Encode maps a symmetric positive-definite covariance matrix to its
// unconstrained parameter vector. The caller guarantees positive
// definiteness (typically checked once, upstream, before optimization
// starts); shape and symmetry are validated here via Decompose.
//
// Errors: ErrNonSquare, ErrAsymmetry, and the logcorr/symlog sentinels
// if the implied correlation matrix is not positive definite.
// Complexity: O(n³), dominated by one eigen-decomposition.
func Encode(cov mat.Matrix) ([]float64, error) {
	sigma, corr, err := Decompose(cov)
	if err != nil {
		return nil, err
	}

	off, err := logcorr.Forward(corr)
	if err != nil {
		return nil, covErrorf(opEncode, err)
	}

	theta := make([]float64, 0, ParamLen(len(sigma)))
	theta = append(theta, sigma...)
	theta = append(theta, off...)

	return theta, nil
}

// Decode maps a parameter vector back to a covariance matrix, returning
// the matrix and the number of fixed-point iterations spent recovering
// the correlation matrix. A nil opts means logcorr.DefaultOptions().
//
// Decode is the hot path when the vector comes from an optimizer's
// candidate: one call per objective evaluation. Each call allocates its
// own working set, so concurrent evaluations are safe.
//
// Errors: ErrBadDimension (n < 1), ErrVectorLength (len(theta) ≠
// n + n(n−1)/2), and the logcorr sentinels (ErrNotConverged,
// ErrBadTolerance, …) passed through for errors.Is.
// Complexity: O(iterations · n³).
func Decode(theta []float64, n int, opts *logcorr.Options) (*mat.SymDense, int, error) {
	if n < 1 {
		return nil, 0, covErrorf(opDecode, fmt.Errorf("n=%d: %w", n, ErrBadDimension))
	}
	if len(theta) != ParamLen(n) {
		return nil, 0, covErrorf(opDecode, fmt.Errorf("len(theta)=%d, want %d: %w", len(theta), ParamLen(n), ErrVectorLength))
	}

	sigma, off := theta[:n], theta[n:]

	corr, iters, err := logcorr.Inverse(off, n, opts)
	if err != nil {
		return nil, iters, covErrorf(opDecode, err)
	}

	cov, err := Recompose(sigma, corr)
	if err != nil {
		return nil, iters, covErrorf(opDecode, err)
	}

	return cov, iters, nil
}
