// SPDX-License-Identifier: MIT
// Package symlog: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions
// return these sentinels and tests check them via errors.Is. Call sites
// wrap with fmt.Errorf("op: %w", ErrX) so the sentinel stays matchable.

package symlog

import "errors"

var (
	// ErrNilMatrix indicates that a nil *mat.SymDense was passed in.
	ErrNilMatrix = errors.New("symlog: nil matrix")

	// ErrEigenFailed indicates that the symmetric eigen factorization
	// did not converge for the given input.
	ErrEigenFailed = errors.New("symlog: eigen decomposition failed")

	// ErrNotPositiveDefinite signals a matrix logarithm request on a
	// matrix with a non-positive eigenvalue, where log is undefined.
	ErrNotPositiveDefinite = errors.New("symlog: matrix is not positive definite")
)
