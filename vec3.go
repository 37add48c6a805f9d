package quaternion

// Vec3 is a 3D vector, the imaginary part of a Quaternion.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3[T]) Scale(t T) Vec3[T] {
	return Vec3[T]{v.X * t, v.Y * t, v.Z * t}
}

func (v Vec3[T]) Dot(u Vec3[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3[T]) L2() T {
	return sqrt(v.Dot(v))
}

// Normalize scales v to unit length. The zero vector has no direction and
// comes back unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.L2()
	if l == 0 {
		return v
	}
	return Vec3[T]{v.X / l, v.Y / l, v.Z / l}
}

func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// RotateAroundAxis rotates v by angle radians about axis using Rodrigues'
// formula. The axis is normalized first.
func (v Vec3[T]) RotateAroundAxis(axis Vec3[T], angle T) Vec3[T] {
	axis = axis.Normalize()
	sin, cos := sincos(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

// Quaternion embeds v as the pure quaternion {0, X, Y, Z}.
func (v Vec3[T]) Quaternion() Quaternion[T] {
	return Quaternion[T]{I: v.X, J: v.Y, K: v.Z}
}
