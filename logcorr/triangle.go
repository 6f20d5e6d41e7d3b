package logcorr

import "gonum.org/v1/gonum/mat"

// The scan order below is the single source of truth for how off-diagonal
// vectors line up with matrix entries: strict lower triangle, row-major,
// i.e. (1,0), (2,0), (2,1), (3,0), (3,1), (3,2), …
// Forward packs with it, Inverse unpacks with it; nothing else touches
// the flattening.

// packLower copies the strict lower triangle of m into dst, which must
// have length OffDiagLen(n).
func packLower(m *mat.SymDense, dst []float64) {
	n := m.SymmetricDim()
	k := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			dst[k] = m.At(i, j)
			k++
		}
	}
}

// unpackLower writes v into the strict lower triangle of dst (mirrored by
// SymDense storage), leaving the diagonal untouched. v must have length
// OffDiagLen(n).
func unpackLower(v []float64, dst *mat.SymDense) {
	n := dst.SymmetricDim()
	k := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			dst.SetSym(i, j, v[k])
			k++
		}
	}
}
