package math

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// ErrEigenFailed is returned when the symmetric eigen-solve does not converge.
var ErrEigenFailed = errors.New("symmetric eigendecomposition did not converge")

// Eigen2 is the eigendecomposition of a symmetric 2x2 matrix.
// Values are ascending and Vectors[i] is the unit eigenvector of Values[i].
type Eigen2 struct {
	Values  [2]float64
	Vectors [2]mgl64.Vec2
}

// SymEigen2 decomposes the symmetric matrix [[a, b], [b, c]].
func SymEigen2(a, b, c float64) (Eigen2, error) {
	sym := mat.NewSymDense(2, []float64{
		a, b,
		b, c,
	})

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Eigen2{}, ErrEigenFailed
	}

	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	var e Eigen2
	for i := 0; i < 2; i++ {
		e.Values[i] = values[i]
		e.Vectors[i] = mgl64.Vec2{vectors.At(0, i), vectors.At(1, i)}
	}
	return e, nil
}
