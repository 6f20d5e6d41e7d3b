package covparam_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covtrans/covparam"
	"github.com/katalvlaran/covtrans/logcorr"
)

// randomCov builds a deterministic pseudo-random SPD covariance matrix
// C = B Bᵗ/n + I from a fixed seed. The 1/n scaling keeps variances
// around 1–3 so absolute round-trip tolerances stay meaningful across
// dimensions.
func randomCov(n int, seed int64) *mat.SymDense {
	rng := rand.New(rand.NewSource(seed))
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.Set(i, j, rng.NormFloat64())
		}
	}

	var bbT mat.Dense
	bbT.Mul(b, b.T())

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cov.SetSym(i, i, bbT.At(i, i)/float64(n)+1)
		for j := i + 1; j < n; j++ {
			cov.SetSym(i, j, 0.5*(bbT.At(i, j)+bbT.At(j, i))/float64(n))
		}
	}

	return cov
}

// TestEncode_ConcreteScenario checks the reference case end to end:
// theta = [√0.7, √0.6, atanh(r)] with r = 0.3/√0.42 — for n = 2 the
// single log-correlation coordinate has the closed form atanh(r).
func TestEncode_ConcreteScenario(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{
		0.7, 0.3,
		0.3, 0.6,
	})

	theta, err := covparam.Encode(cov)
	require.NoError(t, err)
	require.Len(t, theta, covparam.ParamLen(2), "length must be n + n(n-1)/2 = 3")

	assert.InDelta(t, math.Sqrt(0.7), theta[0], 1e-15)
	assert.InDelta(t, math.Sqrt(0.6), theta[1], 1e-15)
	assert.InDelta(t, math.Atanh(0.3/math.Sqrt(0.42)), theta[2], 1e-12)
}

// TestEncode_NonSquare verifies shape validation propagates from Decompose.
func TestEncode_NonSquare(t *testing.T) {
	_, err := covparam.Encode(mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, covparam.ErrNonSquare)
}

// TestDecode_ConcreteScenario verifies decode(encode(M)) recovers the
// reference matrix within 1e-8 with a non-negative iteration count.
func TestDecode_ConcreteScenario(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{
		0.7, 0.3,
		0.3, 0.6,
	})

	theta, err := covparam.Encode(cov)
	require.NoError(t, err)

	got, iters, err := covparam.Decode(theta, 2, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, iters, 0)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, cov.At(i, j), got.At(i, j), 1e-8, "round trip at (%d,%d)", i, j)
		}
	}
}

// TestDecode_RoundTripRandom verifies the round-trip property on seeded
// random SPD matrices of several dimensions.
func TestDecode_RoundTripRandom(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		cov := randomCov(n, int64(100+n))

		theta, err := covparam.Encode(cov)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, theta, covparam.ParamLen(n))

		got, iters, err := covparam.Decode(theta, n, nil)
		require.NoError(t, err, "n=%d", n)
		assert.GreaterOrEqual(t, iters, 0)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.InDelta(t, cov.At(i, j), got.At(i, j), 1e-8, "n=%d round trip at (%d,%d)", n, i, j)
			}
		}
	}
}

// TestDecode_TrivialDimension verifies n = 1: theta = [σ] decodes to
// [[σ²]] with zero iterations.
func TestDecode_TrivialDimension(t *testing.T) {
	got, iters, err := covparam.Decode([]float64{2.5}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, iters)
	assert.InDelta(t, 6.25, got.At(0, 0), 1e-15)
}

// TestDecode_VectorLength verifies a mis-sized parameter vector errors
// ErrVectorLength for several (len, n) combinations.
func TestDecode_VectorLength(t *testing.T) {
	cases := []struct {
		theta []float64
		n     int
	}{
		{[]float64{1, 2}, 2},       // want 3
		{[]float64{1, 2, 3, 4}, 2}, // want 3
		{nil, 1},                   // want 1
	}
	for _, tc := range cases {
		_, _, err := covparam.Decode(tc.theta, tc.n, nil)
		assert.ErrorIs(t, err, covparam.ErrVectorLength, "len=%d n=%d", len(tc.theta), tc.n)
	}
}

// TestDecode_BadDimension verifies n < 1 errors ErrBadDimension.
func TestDecode_BadDimension(t *testing.T) {
	_, _, err := covparam.Decode(nil, 0, nil)
	assert.ErrorIs(t, err, covparam.ErrBadDimension)
}

// TestDecode_NonConvergencePassesThrough verifies that logcorr's
// non-convergence sentinel survives the covparam wrapping, so optimizer
// callers can match it with errors.Is at the boundary. The off-diagonal
// block must not be sign-symmetric, or the iteration converges in one
// sweep regardless of the cap.
func TestDecode_NonConvergencePassesThrough(t *testing.T) {
	theta := []float64{1, 1, 1, 6, 0.1, -3} // extreme off-diagonal block, n=3
	opts := logcorr.Options{Tol: 1e-14, MaxIter: 4}

	got, _, err := covparam.Decode(theta, 3, &opts)
	assert.ErrorIs(t, err, logcorr.ErrNotConverged)
	assert.Nil(t, got, "no partial result on failure")
	assert.ErrorContains(t, err, "covparam: Decode:", "boundary errors carry the Decode tag")
}

// TestDecode_IterationMonotonicity verifies the reported iteration count
// is non-increasing as the tolerance loosens, at the Decode boundary.
func TestDecode_IterationMonotonicity(t *testing.T) {
	theta, err := covparam.Encode(randomCov(4, 7))
	require.NoError(t, err)

	prev := math.MaxInt
	for _, tol := range []float64{1e-13, 1e-10, 1e-7, 1e-4} {
		opts := logcorr.Options{Tol: tol}
		_, iters, errDec := covparam.Decode(theta, 4, &opts)
		require.NoError(t, errDec, "tol=%g", tol)
		assert.LessOrEqual(t, iters, prev, "tol=%g", tol)
		prev = iters
	}
}

// TestDecode_Concurrent verifies parallel decodes of the same vector all
// succeed and agree, mirroring an optimizer evaluating candidates in
// parallel workers.
func TestDecode_Concurrent(t *testing.T) {
	cov := randomCov(5, 11)
	theta, err := covparam.Encode(cov)
	require.NoError(t, err)

	const workers = 8
	results := make(chan *mat.SymDense, workers)
	for w := 0; w < workers; w++ {
		go func() {
			got, _, errDec := covparam.Decode(theta, 5, nil)
			assert.NoError(t, errDec)
			results <- got
		}()
	}
	for w := 0; w < workers; w++ {
		got := <-results
		require.NotNil(t, got)
		assert.True(t, mat.EqualApprox(cov, got, 1e-7), "concurrent decode must recover the covariance")
	}
}
