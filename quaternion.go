// Package quaternion implements quaternion arithmetic over any integer or
// floating-point scalar type.
//
// Quaternions are plain values: every method and function returns a new
// Quaternion and never modifies its operands, so values can be shared
// freely between goroutines.
package quaternion

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, wrapped, by every operation that would
// otherwise divide by zero.
var ErrInvalidArgument = errors.New("invalid argument")

// Quaternion is the hypercomplex number One + I·i + J·j + K·k.
type Quaternion[T Scalar] struct {
	One, I, J, K T
}

// Zero returns the additive identity.
func Zero[T Scalar]() Quaternion[T] {
	return Quaternion[T]{}
}

// New returns the general quaternion {r, x, y, z}.
func New[T Scalar](r, x, y, z T) Quaternion[T] {
	return Quaternion[T]{r, x, y, z}
}

// FromReal embeds a real number as {r, 0, 0, 0}.
func FromReal[T Scalar](r T) Quaternion[T] {
	return Quaternion[T]{One: r}
}

// FromComplex embeds the complex number r + x·i as {r, x, 0, 0}.
func FromComplex[T Scalar](r, x T) Quaternion[T] {
	return Quaternion[T]{One: r, I: x}
}

// FromVector embeds the 3D vector (x, y, z) as {0, x, y, z}.
func FromVector[T Scalar](x, y, z T) Quaternion[T] {
	return Quaternion[T]{I: x, J: y, K: z}
}

// Vec returns the imaginary part.
func (q Quaternion[T]) Vec() Vec3[T] {
	return Vec3[T]{q.I, q.J, q.K}
}

func (q Quaternion[T]) Add(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.One + p.One, q.I + p.I, q.J + p.J, q.K + p.K}
}

func (q Quaternion[T]) Sub(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.One - p.One, q.I - p.I, q.J - p.J, q.K - p.K}
}

func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.One, -q.I, -q.J, -q.K}
}

// Mul returns the Hamilton product q*p. It is not commutative.
func (q Quaternion[T]) Mul(p Quaternion[T]) Quaternion[T] {
	a, v := q.One, q.Vec()
	b, w := p.One, p.Vec()
	im := w.Scale(a).Add(v.Scale(b)).Add(v.Cross(w))
	return Quaternion[T]{a*b - v.Dot(w), im.X, im.Y, im.Z}
}

func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.One * s, q.I * s, q.J * s, q.K * s}
}

// Div divides every component by s. A zero divisor is rejected before any
// division takes place.
func (q Quaternion[T]) Div(s T) (Quaternion[T], error) {
	if s == 0 {
		return Quaternion[T]{}, fmt.Errorf("divide %v by zero: %w", q, ErrInvalidArgument)
	}
	return Quaternion[T]{q.One / s, q.I / s, q.J / s, q.K / s}, nil
}

// Equal reports exact component-wise equality. Floating-point callers that
// need a tolerance must compare the components themselves.
func (q Quaternion[T]) Equal(p Quaternion[T]) bool {
	return q.One == p.One && q.I == p.I && q.J == p.J && q.K == p.K
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v + %vi + %vj + %vk)", q.One, q.I, q.J, q.K)
}
