package keyframe

import (
	"errors"
	"math"
)

// Errors returned by constructors and by Timeline.Update. Match with errors.Is.
var (
	// ErrInvalidArgument is returned when keyframe times or values are empty.
	ErrInvalidArgument = errors.New("keyframe: invalid argument")

	// ErrLengthMismatch is returned when the times and values passed to a
	// table constructor differ in length.
	ErrLengthMismatch = errors.New("keyframe: the number of keys must match in both times and values")

	// ErrInterpolationUnavailable is returned when a timeline is asked to
	// interpolate but has no Interpolator for its value type. There is no
	// fallback blend.
	ErrInterpolationUnavailable = errors.New("keyframe: interpolation not available for this value type")

	// ErrZeroDuration is returned by Evaluate on a zero-length timeline.
	ErrZeroDuration = errors.New("keyframe: timeline has zero duration")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// components. Out-of-range components are clamped.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// Vec3 is a 3D vector used for translations, scales and rotation axes.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates between v and o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// lerp interpolates a scalar.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
