// SPDX-License-Identifier: MIT
// Package symlog: spectral exp/log kernels for symmetric matrices.
//
// Purpose:
//   - ExpSym / LogSym are the only two public kernels; both delegate to a
//     shared decompose → map eigenvalues → reassemble pipeline.
//   - The eigen primitive is gonum's mat.EigenSym (symmetric-specific:
//     real eigenvalues, orthonormal eigenvectors).
//
// Determinism:
//   - The spectral function of a symmetric matrix is unique, so results do
//     not depend on the solver's eigenvalue ordering or eigenvector signs.

package symlog

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// op tags used when wrapping sentinels at the public boundary.
const (
	opExpSym = "ExpSym"
	opLogSym = "LogSym"
)

// symlogErrorf wraps a sentinel with the public operation tag.
func symlogErrorf(op string, err error) error {
	return fmt.Errorf("symlog: %s: %w", op, err)
}

// ExpSym returns exp(a) = Q e^Λ Qᵗ for symmetric a.
// Defined for every symmetric matrix; the result is symmetric positive
// definite. Complexity: O(n³).
func ExpSym(a *mat.SymDense) (*mat.SymDense, error) {
	if a == nil {
		return nil, symlogErrorf(opExpSym, ErrNilMatrix)
	}
	vals, q, err := eigenSym(opExpSym, a)
	if err != nil {
		return nil, err
	}
	for i := range vals {
		vals[i] = math.Exp(vals[i])
	}

	return reassemble(vals, q), nil
}

// LogSym returns log(a) = Q log(Λ) Qᵗ for symmetric positive definite a.
// Fails with ErrNotPositiveDefinite if any eigenvalue is ≤ 0: the matrix
// logarithm is surfaced as undefined rather than silently producing NaN.
// Complexity: O(n³).
func LogSym(a *mat.SymDense) (*mat.SymDense, error) {
	if a == nil {
		return nil, symlogErrorf(opLogSym, ErrNilMatrix)
	}
	vals, q, err := eigenSym(opLogSym, a)
	if err != nil {
		return nil, err
	}
	for i := range vals {
		if vals[i] <= 0 {
			return nil, symlogErrorf(opLogSym, fmt.Errorf("eigenvalue %d = %g: %w", i, vals[i], ErrNotPositiveDefinite))
		}
		vals[i] = math.Log(vals[i])
	}

	return reassemble(vals, q), nil
}

// eigenSym factorizes symmetric a and returns its eigenvalues and the
// dense eigenvector matrix Q (columns are eigenvectors).
func eigenSym(op string, a *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(a, true) {
		return nil, nil, symlogErrorf(op, ErrEigenFailed)
	}
	vals := es.Values(nil)
	var q mat.Dense
	es.VectorsTo(&q)

	return vals, &q, nil
}

// reassemble builds Q·diag(vals)·Qᵗ and returns it as a SymDense,
// averaging (i,j) with (j,i) to remove floating-point asymmetry from the
// two dense products.
func reassemble(vals []float64, q *mat.Dense) *mat.SymDense {
	n := len(vals)
	d := mat.NewDiagDense(n, vals)

	var qd, full mat.Dense
	qd.Mul(q, d)
	full.Mul(&qd, q.T())

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, full.At(i, i))
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, 0.5*(full.At(i, j)+full.At(j, i)))
		}
	}

	return out
}
