package quaternion

import "fmt"

// Conjugate negates the imaginary part of q.
func Conjugate[T Scalar](q Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.One, -q.I, -q.J, -q.K}
}

// SquNorm returns One² + I² + J² + K².
func SquNorm[T Scalar](q Quaternion[T]) T {
	return q.One*q.One + q.I*q.I + q.J*q.J + q.K*q.K
}

func Norm[T Scalar](q Quaternion[T]) T {
	return sqrt(SquNorm(q))
}

// Inverse returns Conjugate(q) / SquNorm(q). The zero quaternion has no
// inverse.
func Inverse[T Scalar](q Quaternion[T]) (Quaternion[T], error) {
	inv, err := Conjugate(q).Div(SquNorm(q))
	if err != nil {
		return Quaternion[T]{}, fmt.Errorf("inverse: %w", err)
	}
	return inv, nil
}

// Normalize returns q scaled to unit norm.
func Normalize[T Scalar](q Quaternion[T]) (Quaternion[T], error) {
	unit, err := q.Div(Norm(q))
	if err != nil {
		return Quaternion[T]{}, fmt.Errorf("normalize: %w", err)
	}
	return unit, nil
}

// PolarTurn returns the unit quaternion rotating by theta radians about the
// axis (x, y, z). The axis must already be unit length.
func PolarTurn[T Scalar](x, y, z, theta T) Quaternion[T] {
	sin, cos := sincos(theta / 2)
	return Quaternion[T]{cos, x * sin, y * sin, z * sin}
}

// Turn3DVec rotates the pure quaternion v by the unit quaternion q,
// returning q * v * Conjugate(q).
func Turn3DVec[T Scalar](v, q Quaternion[T]) Quaternion[T] {
	return q.Mul(v).Mul(Conjugate(q))
}
