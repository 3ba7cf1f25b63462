package keyframe

import "math"

// Quat is a rotation quaternion (X, Y, Z vector part, W scalar part).
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat is the no-rotation quaternion.
var IdentityQuat = Quat{W: 1}

// slerpLinearThreshold is the cosine above which Slerp falls back to a
// normalized linear blend; sin(theta) is too small to divide by reliably.
const slerpLinearThreshold = 0.9995

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis need not be normalized. A zero axis yields IdentityQuat.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	if axis == (Vec3{}) {
		return IdentityQuat
	}
	s, c := math.Sincos(angle / 2)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// Dot returns the 4D dot product of q and o.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Len returns the norm of q.
func (q Quat) Len() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length. A zero quaternion becomes
// IdentityQuat.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return IdentityQuat
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Neg returns -q, which represents the same rotation.
func (q Quat) Neg() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// SameRotation reports whether q and o represent the same rotation within eps,
// treating q and -q as equal.
func (q Quat) SameRotation(o Quat, eps float64) bool {
	return math.Abs(math.Abs(q.Normalize().Dot(o.Normalize()))-1) <= eps
}

// Slerp spherically interpolates between two unit quaternions along the
// shorter arc.
func Slerp(a, b Quat, t float64) Quat {
	cos := a.Dot(b)
	if cos < 0 {
		b = b.Neg()
		cos = -cos
	}

	if cos > slerpLinearThreshold {
		return Quat{
			lerp(a.X, b.X, t),
			lerp(a.Y, b.Y, t),
			lerp(a.Z, b.Z, t),
			lerp(a.W, b.W, t),
		}.Normalize()
	}

	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		wa*a.X + wb*b.X,
		wa*a.Y + wb*b.Y,
		wa*a.Z + wb*b.Z,
		wa*a.W + wb*b.W,
	}
}

// quatFromBasis converts an orthonormal right-handed basis (the columns of a
// rotation matrix) to a unit quaternion using Shepperd's method, which picks
// the numerically largest component to divide by.
func quatFromBasis(x, y, z Vec3) Quat {
	r00, r10, r20 := x.X, x.Y, x.Z
	r01, r11, r21 := y.X, y.Y, y.Z
	r02, r12, r22 := z.X, z.Y, z.Z

	var q Quat
	trace := r00 + r11 + r22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quat{(r21 - r12) * s, (r02 - r20) * s, (r10 - r01) * s, 0.25 / s}
	case r00 > r11 && r00 > r22:
		s := 2 * math.Sqrt(1+r00-r11-r22)
		q = Quat{0.25 * s, (r01 + r10) / s, (r02 + r20) / s, (r21 - r12) / s}
	case r11 > r22:
		s := 2 * math.Sqrt(1+r11-r00-r22)
		q = Quat{(r01 + r10) / s, 0.25 * s, (r12 + r21) / s, (r02 - r20) / s}
	default:
		s := 2 * math.Sqrt(1+r22-r00-r11)
		q = Quat{(r02 + r20) / s, (r12 + r21) / s, 0.25 * s, (r10 - r01) / s}
	}
	return q.Normalize()
}
