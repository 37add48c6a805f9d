package quaternion

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a Quaternion can be built over.
type Scalar interface {
	constraints.Integer | constraints.Float
}

func sqrt[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func sincos[T Scalar](x T) (sin, cos T) {
	if f, ok := any(x).(float32); ok {
		s, c := math32.Sincos(f)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}
