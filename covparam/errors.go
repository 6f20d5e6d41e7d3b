// SPDX-License-Identifier: MIT
// Package covparam: sentinel error set.
// Sentinels only; call sites wrap with fmt.Errorf("op: %w", ErrX) and
// tests match with errors.Is.

package covparam

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("covparam: nil matrix")

	// ErrNonSquare indicates a covariance input that is not square.
	ErrNonSquare = errors.New("covparam: matrix is not square")

	// ErrAsymmetry indicates a covariance input whose (i,j) and (j,i)
	// entries differ by more than the symmetry tolerance.
	ErrAsymmetry = errors.New("covparam: matrix is not symmetric within tolerance")

	// ErrDimensionMismatch indicates that the std-dev vector length does
	// not match the correlation matrix dimension in Recompose.
	ErrDimensionMismatch = errors.New("covparam: std-dev length does not match correlation dimension")

	// ErrVectorLength indicates a parameter vector whose length is not
	// n + n(n−1)/2 for the requested dimension n.
	ErrVectorLength = errors.New("covparam: parameter vector length must be n + n(n-1)/2")

	// ErrBadDimension indicates a requested dimension n < 1.
	ErrBadDimension = errors.New("covparam: dimension must be >= 1")
)
