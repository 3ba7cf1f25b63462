package keyframe

import "math"

// degenerateAxisEpsilon is the column length below which an axis is treated
// as collapsed (zero scale) during decomposition.
const degenerateAxisEpsilon = 1e-12

// Transform is a matrix split into independent translation, rotation and
// non-uniform scale channels. Matrix recomposes it as T * R * S.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// Matrix recomposes the transform.
func (tr Transform) Matrix() Mat4 {
	return Compose(tr.Translation, tr.Rotation, tr.Scale)
}

// Decompose splits the affine part of m into translation, rotation and scale.
//
// The upper 3x3 block is orthogonalized with Gram-Schmidt in X, Y, Z column
// order (a QR decomposition): scale is the length of each orthogonalized
// column and shear is discarded. A reflection (negative determinant) is folded
// into the X scale so the rotation stays proper. Collapsed axes (zero scale)
// get a basis vector rebuilt from the surviving axes so the rotation remains
// defined. The projective row of m is ignored.
func Decompose(m Mat4) Transform {
	c0, c1, c2 := m.column(0), m.column(1), m.column(2)

	sx := c0.Len()
	x := unitOrZero(c0, sx)

	c1 = c1.Sub(x.Scale(x.Dot(c1)))
	sy := c1.Len()
	y := unitOrZero(c1, sy)

	c2 = c2.Sub(x.Scale(x.Dot(c2))).Sub(y.Scale(y.Dot(c2)))
	sz := c2.Len()
	z := unitOrZero(c2, sz)

	x, y, z = completeBasis(x, y, z)

	if x.Cross(y).Dot(z) < 0 {
		sx = -sx
		x = x.Scale(-1)
	}

	return Transform{
		Translation: m.TranslationPart(),
		Rotation:    quatFromBasis(x, y, z),
		Scale:       Vec3{sx, sy, sz},
	}
}

func unitOrZero(v Vec3, l float64) Vec3 {
	if l < degenerateAxisEpsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// completeBasis fills zero vectors in an orthonormal set so that the result is
// a right-handed orthonormal basis. Axes that are already present are kept.
func completeBasis(x, y, z Vec3) (Vec3, Vec3, Vec3) {
	zero := Vec3{}
	hx, hy, hz := x != zero, y != zero, z != zero

	switch {
	case hx && hy && hz:
	case hx && hy:
		z = x.Cross(y)
	case hx && hz:
		y = z.Cross(x)
	case hy && hz:
		x = y.Cross(z)
	case hx:
		y = perpendicular(x)
		z = x.Cross(y)
	case hy:
		z = perpendicular(y)
		x = y.Cross(z)
	case hz:
		x = perpendicular(z)
		y = z.Cross(x)
	default:
		x, y, z = Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}
	}
	return x, y, z
}

// perpendicular returns a unit vector orthogonal to the unit vector v, built
// against the world axis v is least aligned with.
func perpendicular(v Vec3) Vec3 {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var ref Vec3
	switch {
	case ax <= ay && ax <= az:
		ref = Vec3{1, 0, 0}
	case ay <= az:
		ref = Vec3{0, 1, 0}
	default:
		ref = Vec3{0, 0, 1}
	}
	return v.Cross(ref).Normalize()
}
