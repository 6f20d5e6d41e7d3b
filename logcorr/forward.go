package logcorr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covtrans/symlog"
)

// Forward maps a correlation matrix c (symmetric, unit diagonal, positive
// definite) to the strict lower-triangular entries of log c, in the
// package scan order. The result has length OffDiagLen(n) and is the
// unconstrained coordinate vector consumed by Inverse.
//
// The matrix logarithm of a symmetric positive definite matrix is unique,
// so Forward is deterministic regardless of the eigensolver's internal
// ordering.
//
// Errors:
//   - ErrNilMatrix — c is nil.
//   - symlog.ErrNotPositiveDefinite — c has an eigenvalue ≤ 0 (not a
//     valid correlation matrix); surfaced rather than silently handled.
//
// Complexity: O(n³) for one symmetric eigen-decomposition.
func Forward(c *mat.SymDense) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("logcorr: Forward: %w", ErrNilMatrix)
	}

	logC, err := symlog.LogSym(c)
	if err != nil {
		return nil, fmt.Errorf("logcorr: Forward: %w", err)
	}

	v := make([]float64, OffDiagLen(c.SymmetricDim()))
	packLower(logC, v)

	return v, nil
}
