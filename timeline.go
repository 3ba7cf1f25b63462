package keyframe

import "fmt"

// Track is the type-erased view of a Timeline used by Animation and other
// per-frame drivers.
type Track interface {
	Property() string
	Duration() uint32
	Update(time uint32, target PropertyStore) error
	Seed(target PropertyStore)
	Lock()
	Unlock()
	IsLocked() bool
}

// TimelineConfig configures a Timeline.
type TimelineConfig struct {
	// Property is the name written on the target store.
	Property string
	// Duration is the loop length. Playback time wraps into [0, Duration].
	// A zero duration disables evaluation entirely.
	Duration uint32
	// Interpolate enables blending between bracketing keyframes. When false
	// the timeline steps from keyframe to keyframe.
	Interpolate bool
	// InterpolateScale and InterpolateTranslation gate the scale and
	// translation channels of a Mat4 timeline. They override the flags of a
	// MatrixInterpolator passed to NewTimeline. Disabled channels hold the
	// earlier keyframe's component.
	InterpolateScale       bool
	InterpolateTranslation bool
	// Easing shapes progress within each segment. Nil is linear.
	Easing Easing
}

// Timeline maps playback time onto a keyframe table and writes the resulting
// value into a named property of a target store.
//
// A Timeline is not safe for concurrent use. The table is immutable after
// construction; only the lock flag changes.
type Timeline[V any] struct {
	cfg    TimelineConfig
	table  *Table[V]
	interp Interpolator[V]
	locked bool
}

// NewTimeline builds a timeline from parallel times and values. interp may be
// nil, in which case the timeline can only step; entering the interpolation
// branch then fails with ErrInterpolationUnavailable. A MatrixInterpolator
// takes its channel flags from cfg.
func NewTimeline[V any](cfg TimelineConfig, times []uint32, values []V, interp Interpolator[V]) (*Timeline[V], error) {
	table, err := NewTable(times, values)
	if err != nil {
		return nil, fmt.Errorf("timeline %q: %w", cfg.Property, err)
	}
	if mi, ok := any(interp).(MatrixInterpolator); ok {
		mi.Scale = cfg.InterpolateScale
		mi.Translation = cfg.InterpolateTranslation
		interp = any(mi).(Interpolator[V])
	}
	return &Timeline[V]{cfg: cfg, table: table, interp: interp}, nil
}

// NewMatrixTimeline builds a transform timeline that interpolates by
// decomposition (see MatrixInterpolator).
func NewMatrixTimeline(property string, duration uint32, times []uint32, matrices []Mat4,
	interpolate, interpolateScale, interpolateTranslation bool) (*Timeline[Mat4], error) {
	cfg := TimelineConfig{
		Property:               property,
		Duration:               duration,
		Interpolate:            interpolate,
		InterpolateScale:       interpolateScale,
		InterpolateTranslation: interpolateTranslation,
	}
	return NewTimeline[Mat4](cfg, times, matrices, MatrixInterpolator{})
}

// NewColorTimeline builds a color timeline blended with ColorInterpolator.
func NewColorTimeline(property string, duration uint32, times []uint32, colors []Color, interpolate bool) (*Timeline[Color], error) {
	cfg := TimelineConfig{Property: property, Duration: duration, Interpolate: interpolate}
	return NewTimeline[Color](cfg, times, colors, ColorInterpolator{})
}

// NewFloatTimeline builds a scalar timeline blended linearly.
func NewFloatTimeline(property string, duration uint32, times []uint32, values []float64, interpolate bool) (*Timeline[float64], error) {
	cfg := TimelineConfig{Property: property, Duration: duration, Interpolate: interpolate}
	return NewTimeline[float64](cfg, times, values, FloatInterpolator{})
}

// NewVec3Timeline builds a vector timeline blended linearly.
func NewVec3Timeline(property string, duration uint32, times []uint32, values []Vec3, interpolate bool) (*Timeline[Vec3], error) {
	cfg := TimelineConfig{Property: property, Duration: duration, Interpolate: interpolate}
	return NewTimeline[Vec3](cfg, times, values, Vec3Interpolator{})
}

// WithEasing sets the segment easing and returns tl for chaining.
func (tl *Timeline[V]) WithEasing(e Easing) *Timeline[V] {
	tl.cfg.Easing = e
	return tl
}

// Property returns the target property name.
func (tl *Timeline[V]) Property() string { return tl.cfg.Property }

// Duration returns the loop length.
func (tl *Timeline[V]) Duration() uint32 { return tl.cfg.Duration }

// Config returns the timeline configuration.
func (tl *Timeline[V]) Config() TimelineConfig { return tl.cfg }

// Table returns the sorted keyframe table.
func (tl *Timeline[V]) Table() *Table[V] { return tl.table }

// Lock suspends evaluation. Update becomes a no-op until Unlock.
func (tl *Timeline[V]) Lock() { tl.locked = true }

// Unlock resumes evaluation.
func (tl *Timeline[V]) Unlock() { tl.locked = false }

// IsLocked reports whether the timeline is locked.
func (tl *Timeline[V]) IsLocked() bool { return tl.locked }

// Update evaluates the timeline at time and writes the value into target's
// property. It is a silent no-op when the timeline is locked, has zero
// duration or no keyframes, when target is nil, or when target does not
// already hold a V under the property name. The only error is a failed
// interpolation.
func (tl *Timeline[V]) Update(time uint32, target PropertyStore) error {
	if tl.locked || tl.cfg.Duration == 0 || tl.table.Len() == 0 {
		return nil
	}
	if target == nil || !target.HasProperty(tl.cfg.Property) {
		return nil
	}
	if _, ok := Lookup[V](target, tl.cfg.Property); !ok {
		return nil
	}

	v, err := tl.sample(normalizeTime(time, uint64(tl.cfg.Duration)+1))
	if err != nil {
		return fmt.Errorf("timeline %q: %w", tl.cfg.Property, err)
	}
	target.Set(tl.cfg.Property, v)
	return nil
}

// Evaluate returns the value at time without touching any store. The lock
// flag is ignored.
func (tl *Timeline[V]) Evaluate(time uint32) (V, error) {
	var zero V
	if tl.cfg.Duration == 0 {
		return zero, fmt.Errorf("timeline %q: %w", tl.cfg.Property, ErrZeroDuration)
	}
	if tl.table.Len() == 0 {
		return zero, fmt.Errorf("timeline %q: no keyframes: %w", tl.cfg.Property, ErrInvalidArgument)
	}
	v, err := tl.sample(normalizeTime(time, uint64(tl.cfg.Duration)+1))
	if err != nil {
		return zero, fmt.Errorf("timeline %q: %w", tl.cfg.Property, err)
	}
	return v, nil
}

// Seed writes the first keyframe's value into target when the property is
// absent, so that subsequent Updates have a property to write to.
func (tl *Timeline[V]) Seed(target PropertyStore) {
	if target == nil || tl.table.Len() == 0 || target.HasProperty(tl.cfg.Property) {
		return
	}
	target.Set(tl.cfg.Property, tl.table.Front().Value)
}

// sample evaluates an already-normalized time.
func (tl *Timeline[V]) sample(t uint32) (V, error) {
	keys := tl.table
	i := keys.Locate(t)
	a := keys.At(i)

	// A keyframe's own time yields its exact value in either mode.
	if t == a.Time || !shouldInterpolate(tl.cfg.Interpolate, t, keys.Front().Time, keys.Back().Time) {
		return a.Value, nil
	}
	if tl.interp == nil {
		var zero V
		return zero, ErrInterpolationUnavailable
	}

	b := keys.At(i + 1)
	var progress float64
	if span := b.Time - a.Time; span > 0 {
		progress = float64(t-a.Time) / float64(span)
	}
	return tl.interp.Interpolate(a.Value, b.Value, tl.cfg.Easing.apply(progress))
}

// normalizeTime loops t into [0, modulus). Callers pass duration+1 because
// keyframes address the closed range [0, duration]; the modulus is 64-bit so
// the maximum duration does not overflow.
func normalizeTime(t uint32, modulus uint64) uint32 {
	return uint32(uint64(t) % modulus)
}
