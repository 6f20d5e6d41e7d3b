// SPDX-License-Identifier: MIT
// Package covparam: Decompose / Recompose kernels.
//
// Purpose:
//   - Decompose splits a covariance matrix into standard deviations and a
//     correlation matrix; Recompose is its exact inverse.
//   - Both are closed-form O(n²) kernels; the heavy lifting of the module
//     lives in logcorr.
//
// Numeric policy:
//   - Symmetry is validated within SymmetryTol; the two triangles are then
//     averaged so downstream code sees an exactly symmetric matrix.
//   - The correlation diagonal is forced to exactly 1.0 to eliminate
//     floating-point drift from the σᵢσⱼ division.

package covparam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SymmetryTol is the absolute tolerance used when validating that a
// covariance input is symmetric.
const SymmetryTol = 1e-10

// op tags used when wrapping sentinels at the public boundary.
const (
	opDecompose = "Decompose"
	opRecompose = "Recompose"
	opEncode    = "Encode"
	opDecode    = "Decode"
)

// covErrorf wraps a sentinel with the public operation tag.
func covErrorf(op string, err error) error {
	return fmt.Errorf("covparam: %s: %w", op, err)
}

// Decompose splits covariance matrix cov into a standard-deviation vector
// and a correlation matrix: σᵢ = √cov[i,i], C[i,j] = cov[i,j]/(σᵢσⱼ) with
// the diagonal forced to exactly 1. The input is never mutated.
//
// Positive-definiteness is the caller's contract and is not re-verified;
// only shape (ErrNonSquare) and symmetry within SymmetryTol (ErrAsymmetry)
// are validated. Complexity: O(n²).
func Decompose(cov mat.Matrix) ([]float64, *mat.SymDense, error) {
	if cov == nil {
		return nil, nil, covErrorf(opDecompose, ErrNilMatrix)
	}
	r, c := cov.Dims()
	if r != c {
		return nil, nil, covErrorf(opDecompose, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			if math.Abs(cov.At(i, j)-cov.At(j, i)) > SymmetryTol {
				return nil, nil, covErrorf(opDecompose, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	sigma := make([]float64, r)
	for i := 0; i < r; i++ {
		sigma[i] = math.Sqrt(cov.At(i, i))
	}

	corr := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < r; j++ {
			// Average the two triangles so sub-tolerance asymmetry in the
			// input cannot leak into the correlation matrix.
			m := 0.5 * (cov.At(i, j) + cov.At(j, i))
			corr.SetSym(i, j, m/(sigma[i]*sigma[j]))
		}
	}

	return sigma, corr, nil
}

// Recompose combines a standard-deviation vector and a correlation matrix
// into the covariance matrix Cov[i,j] = σᵢσⱼC[i,j]. Symmetric by
// construction. Complexity: O(n²).
//
// Errors: ErrNilMatrix on nil corr, ErrDimensionMismatch when len(sigma)
// differs from corr's dimension.
func Recompose(sigma []float64, corr *mat.SymDense) (*mat.SymDense, error) {
	if corr == nil {
		return nil, covErrorf(opRecompose, ErrNilMatrix)
	}
	n := corr.SymmetricDim()
	if len(sigma) != n {
		return nil, covErrorf(opRecompose, fmt.Errorf("len(sigma)=%d, dim=%d: %w", len(sigma), n, ErrDimensionMismatch))
	}

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, sigma[i]*sigma[j]*corr.At(i, j))
		}
	}

	return cov, nil
}
