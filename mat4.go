package keyframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Mat4 is a 4x4 homogeneous transform matrix stored in column-major order:
// element (row r, col c) lives at index c*4+r. Points are column vectors, so
// the translation occupies indices 12, 13 and 14.
//
//	| m0  m4  m8   m12 |
//	| m1  m5  m9   m13 |
//	| m2  m6  m10  m14 |
//	| m3  m7  m11  m15 |
type Mat4 [16]float64

// Identity is the identity matrix.
var Identity = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// At returns the element at the given row and column.
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float64) Mat4 {
	m := Identity
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scaling returns a matrix scaling each axis independently.
func Scaling(x, y, z float64) Mat4 {
	m := Identity
	m[0], m[5], m[10] = x, y, z
	return m
}

// Rotation returns the rotation matrix for a unit quaternion.
func Rotation(q Quat) Mat4 {
	return Compose(Vec3{}, q, Vec3{1, 1, 1})
}

// Compose builds T * R * S: scale first, then rotate, then translate.
func Compose(t Vec3, r Quat, s Vec3) Mat4 {
	x, y, z, w := r.X, r.Y, r.Z, r.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat4{
		(1 - 2*(yy+zz)) * s.X, 2 * (xy + wz) * s.X, 2 * (xz - wy) * s.X, 0,
		2 * (xy - wz) * s.Y, (1 - 2*(xx+zz)) * s.Y, 2 * (yz + wx) * s.Y, 0,
		2 * (xz + wy) * s.Z, 2 * (yz - wx) * s.Z, (1 - 2*(xx+yy)) * s.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// Mul returns m * o. Applying the result to a point applies o first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*o[c*4] +
				m[4+row]*o[c*4+1] +
				m[8+row]*o[c*4+2] +
				m[12+row]*o[c*4+3]
		}
	}
	return r
}

// TransformPoint applies m to the point p (w = 1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TranslationPart returns the translation column.
func (m Mat4) TranslationPart() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// column returns the first three rows of column c.
func (m Mat4) column(c int) Vec3 {
	return Vec3{m[c*4], m[c*4+1], m[c*4+2]}
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// GeoM projects m onto the XY plane as an ebiten.GeoM, dropping Z. Use it to
// draw a 2D sprite with a transform produced by a matrix timeline.
func (m Mat4) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.At(0, 0))
	g.SetElement(0, 1, m.At(0, 1))
	g.SetElement(0, 2, m.At(0, 3))
	g.SetElement(1, 0, m.At(1, 0))
	g.SetElement(1, 1, m.At(1, 1))
	g.SetElement(1, 2, m.At(1, 3))
	return g
}

// String formats m row by row.
func (m Mat4) String() string {
	var b strings.Builder
	b.WriteString("mat4(")
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%g %g %g %g", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	b.WriteString(")")
	return b.String()
}
