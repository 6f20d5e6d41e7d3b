// Package logcorr defines options and defaults for the log-correlation mappers.
package logcorr

// Tolerance band and iteration defaults for Inverse.
const (
	// DefaultTol is the convergence tolerance applied when Options.Tol is
	// left at its zero value: the iteration stops once every diagonal
	// entry of exp(A) is within DefaultTol of 1.
	DefaultTol = 1e-9

	// DefaultMaxIter is the iteration cap applied when Options.MaxIter is
	// left at its zero value. The underlying fixed-point scheme converges
	// in a handful of iterations for vectors drawn from genuine
	// correlation matrices; hitting the cap signals an invalid input or
	// an unreasonably tight tolerance.
	DefaultMaxIter = 1000

	// MinRecommendedTol / MaxRecommendedTol bound the tolerance band with
	// well-understood convergence behavior. Values outside the band are
	// accepted, but below MinRecommendedTol the stopping test can chatter
	// at the floating-point noise floor (more iterations for no extra
	// accuracy), and above MaxRecommendedTol the reconstructed diagonal
	// may deviate visibly from 1.
	MinRecommendedTol = 1e-14
	MaxRecommendedTol = 1e-4
)

// Options configures the Inverse fixed-point iteration.
//
// Fields:
//   - Tol     — convergence tolerance on max|diag(exp A) − 1|.
//     Zero means DefaultTol; must otherwise be a finite positive number.
//   - MaxIter — iteration cap. Zero means DefaultMaxIter; must otherwise
//     be positive.
//
// A nil *Options passed to Inverse behaves exactly like DefaultOptions().
type Options struct {
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the documented defaults: Tol = DefaultTol,
// MaxIter = DefaultMaxIter.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

// OffDiagLen returns the number of strict lower-triangular entries of an
// n×n matrix: n(n−1)/2. It is the required input length for Inverse and
// the output length of Forward.
func OffDiagLen(n int) int {
	return n * (n - 1) / 2
}
