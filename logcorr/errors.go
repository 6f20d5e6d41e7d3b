package logcorr

import "errors"

var (
	// ErrNilMatrix indicates a nil correlation matrix was passed to Forward.
	ErrNilMatrix = errors.New("logcorr: nil matrix")

	// ErrBadDimension indicates a requested dimension n < 1.
	ErrBadDimension = errors.New("logcorr: dimension must be >= 1")

	// ErrVectorLength indicates an off-diagonal vector whose length is not
	// n(n−1)/2 for the requested dimension n.
	ErrVectorLength = errors.New("logcorr: off-diagonal vector length must be n(n-1)/2")

	// ErrBadTolerance indicates a tolerance that is NaN, infinite or
	// negative. Tolerances outside [MinRecommendedTol, MaxRecommendedTol]
	// are NOT rejected; see the package doc for the degraded guarantees.
	ErrBadTolerance = errors.New("logcorr: tolerance must be finite and positive")

	// ErrBadMaxIter indicates a negative iteration cap.
	ErrBadMaxIter = errors.New("logcorr: iteration cap must be positive")

	// ErrNotConverged indicates the fixed-point iteration exhausted its
	// cap before the diagonal of exp(A) came within Tol of 1. The supplied
	// off-diagonal vector may not correspond to any valid correlation
	// matrix, or the cap is too low for the requested tolerance.
	ErrNotConverged = errors.New("logcorr: fixed-point iteration did not converge")
)
