package symlog_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covtrans/symlog"
)

// ExampleLogSym takes the matrix logarithm of a 2×2 correlation matrix.
// For [[1,r],[r,1]] the closed form is log(1−r²)/2 on the diagonal and
// atanh(r) off it.
func ExampleLogSym() {
	c := mat.NewSymDense(2, []float64{
		1, 0.5,
		0.5, 1,
	})

	l, err := symlog.LogSym(c)
	if err != nil {
		fmt.Println("log failed:", err)
		return
	}

	fmt.Printf("diag = %.4f\n", l.At(0, 0))
	fmt.Printf("off  = %.4f\n", l.At(0, 1))
	// Output:
	// diag = -0.1438
	// off  = 0.5493
}
