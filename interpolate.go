package keyframe

import "github.com/lucasb-eyer/go-colorful"

// Interpolator blends two keyframe values. t is the eased progress from
// `from` (t = 0) to `to` (t = 1).
type Interpolator[V any] interface {
	Interpolate(from, to V, t float64) (V, error)
}

// InterpolatorFunc adapts a function to the Interpolator interface.
type InterpolatorFunc[V any] func(from, to V, t float64) (V, error)

// Interpolate calls f(from, to, t).
func (f InterpolatorFunc[V]) Interpolate(from, to V, t float64) (V, error) {
	return f(from, to, t)
}

// shouldInterpolate is the boundary policy: blend only strictly inside the
// keyframe span. At or past the last keyframe the value snaps, and there is no
// wrap-around blend from the last keyframe back to the first.
func shouldInterpolate(enabled bool, t, first, last uint32) bool {
	return enabled && t >= first && t < last
}

// MatrixInterpolator blends transform matrices by decomposition: translation
// and scale are interpolated linearly, rotation spherically, and the result is
// recomposed. Raw matrix entries are never blended.
//
// Rotation always blends. When Translation or Scale is false that channel
// holds the `from` keyframe's component instead.
type MatrixInterpolator struct {
	Scale       bool
	Translation bool
}

// Interpolate implements Interpolator.
func (mi MatrixInterpolator) Interpolate(from, to Mat4, t float64) (Mat4, error) {
	a := Decompose(from)
	b := Decompose(to)

	out := Transform{
		Translation: a.Translation,
		Rotation:    Slerp(a.Rotation, b.Rotation, t),
		Scale:       a.Scale,
	}
	if mi.Translation {
		out.Translation = a.Translation.Lerp(b.Translation, t)
	}
	if mi.Scale {
		out.Scale = a.Scale.Lerp(b.Scale, t)
	}
	return out.Matrix(), nil
}

// ColorInterpolator blends colors in CIE L*u*v* space, which keeps perceived
// brightness steady through the blend. Alpha is interpolated linearly.
type ColorInterpolator struct{}

// Interpolate implements Interpolator.
func (ColorInterpolator) Interpolate(from, to Color, t float64) (Color, error) {
	a := colorful.Color{R: from.R, G: from.G, B: from.B}
	b := colorful.Color{R: to.R, G: to.G, B: to.B}
	c := a.BlendLuv(b, t).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: lerp(from.A, to.A, t)}, nil
}

// FloatInterpolator blends scalars linearly.
type FloatInterpolator struct{}

// Interpolate implements Interpolator.
func (FloatInterpolator) Interpolate(from, to, t float64) (float64, error) {
	return lerp(from, to, t), nil
}

// Vec3Interpolator blends vectors linearly.
type Vec3Interpolator struct{}

// Interpolate implements Interpolator.
func (Vec3Interpolator) Interpolate(from, to Vec3, t float64) (Vec3, error) {
	return from.Lerp(to, t), nil
}
