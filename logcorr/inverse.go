package logcorr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covtrans/symlog"
)

// Inverse reconstructs the correlation matrix whose matrix logarithm has
// the given strict lower-triangular entries v (package scan order).
// Returns the matrix, the number of fixed-point iterations performed, and
// an error. A nil opts means DefaultOptions().
//
// Algorithm:
//  1. Seed A with v on the off-diagonal and zeros on the diagonal.
//  2. Compute M = exp(A) spectrally. If max|M[i][i] − 1| < Tol, stop:
//     M with its diagonal forced to exactly 1 is the answer.
//  3. Otherwise subtract log(M[i][i]) from A's diagonal and repeat.
//
// The unknown diagonal of log C is precisely the one that gives exp(A) a
// unit diagonal, which makes it a fixed point of step 3; the iteration
// converges whenever v comes from a genuine correlation matrix. The cap
// (Options.MaxIter) turns a non-converging input into ErrNotConverged
// instead of an unbounded loop.
//
// Edge case n = 1: v must be empty; the 1×1 matrix [1] is returned with
// iteration count 0 and no eigenwork at all.
//
// Errors:
//   - ErrBadDimension — n < 1.
//   - ErrVectorLength — len(v) ≠ OffDiagLen(n).
//   - ErrBadTolerance / ErrBadMaxIter — nonsensical options.
//   - ErrNotConverged — cap reached; no partial matrix is returned.
//   - symlog.ErrEigenFailed — the eigensolver gave up on an iterate.
//
// Complexity: one O(n³) symmetric eigen-decomposition per iteration.
// Scratch buffers are allocated once and reused across iterations, so a
// converging call performs a constant number of allocations regardless of
// the iteration count; calls share nothing and are safe to run in
// parallel.
func Inverse(v []float64, n int, opts *Options) (*mat.SymDense, int, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("logcorr: Inverse: n=%d: %w", n, ErrBadDimension)
	}
	if len(v) != OffDiagLen(n) {
		return nil, 0, fmt.Errorf("logcorr: Inverse: len(v)=%d, want %d: %w", len(v), OffDiagLen(n), ErrVectorLength)
	}

	// Apply options or defaults; zero values mean defaults.
	tol, maxIter := DefaultTol, DefaultMaxIter
	if opts != nil {
		if opts.Tol != 0 {
			tol = opts.Tol
		}
		if opts.MaxIter != 0 {
			maxIter = opts.MaxIter
		}
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return nil, 0, fmt.Errorf("logcorr: Inverse: tol=%g: %w", tol, ErrBadTolerance)
	}
	if maxIter < 1 {
		return nil, 0, fmt.Errorf("logcorr: Inverse: maxIter=%d: %w", maxIter, ErrBadMaxIter)
	}

	// Trivial dimension: no off-diagonal data, nothing to iterate.
	if n == 1 {
		return mat.NewSymDense(1, []float64{1}), 0, nil
	}

	// A starts with the known off-diagonal and a zero diagonal.
	a := mat.NewSymDense(n, nil)
	unpackLower(v, a)

	// Per-call scratch, reused every iteration.
	var (
		es       mat.EigenSym
		q        mat.Dense              // eigenvectors of A
		qd, full mat.Dense              // Q·e^Λ, then Q·e^Λ·Qᵗ
		vals     = make([]float64, n)   // eigenvalues, then e^Λ in place
		diag     = make([]float64, n)   // diag(exp A) − 1 for the stopping test
		d        = mat.NewDiagDense(n, vals) // view over vals
	)

	for k := 0; k < maxIter; k++ {
		// M = exp(A) via the symmetric eigen-decomposition of A.
		if !es.Factorize(a, true) {
			return nil, k, fmt.Errorf("logcorr: Inverse: iteration %d: %w", k, symlog.ErrEigenFailed)
		}
		es.Values(vals)
		es.VectorsTo(&q)
		for i := range vals {
			vals[i] = math.Exp(vals[i])
		}
		qd.Mul(&q, d)
		full.Mul(&qd, q.T())

		// Stopping test: max deviation of diag(M) from 1.
		for i := 0; i < n; i++ {
			diag[i] = full.At(i, i)
		}
		floats.AddConst(-1, diag)
		if floats.Norm(diag, math.Inf(1)) < tol {
			return finishCorr(&full, n), k, nil
		}

		// diag(A) ← diag(A) − log(diag(M)); off-diagonal stays fixed.
		for i := 0; i < n; i++ {
			a.SetSym(i, i, a.At(i, i)-math.Log(full.At(i, i)))
		}
	}

	return nil, maxIter, fmt.Errorf("logcorr: Inverse: %d iterations at tol=%g: %w", maxIter, tol, ErrNotConverged)
}

// finishCorr converts the converged dense exponential into the returned
// correlation matrix: diagonal forced to exactly 1, off-diagonal averaged
// with its transpose to scrub floating-point asymmetry.
func finishCorr(full *mat.Dense, n int) *mat.SymDense {
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, 0.5*(full.At(i, j)+full.At(j, i)))
		}
	}

	return out
}
