// Package clip loads keyframe animations from YAML clip files.
//
// A clip is a list of tracks, each animating one property:
//
//	name: spin
//	tracks:
//	  - property: transform
//	    type: matrix
//	    duration: 2000
//	    interpolate: true
//	    interpolateScale: true
//	    interpolateTranslation: true
//	    ease: inOutQuad
//	    keys:
//	      - time: 0
//	        translate: [0, 0, 0]
//	      - time: 1000
//	        translate: [100, 0, 0]
//	        rotate: {axis: [0, 0, 1], degrees: 90}
//	        scale: [2, 2, 1]
//	  - property: tint
//	    type: color
//	    interpolate: true
//	    keys:
//	      - {time: 0, color: "#ff0000"}
//	      - {time: 500, color: "#0000ff", alpha: 0.5}
//
// Track types are matrix, color, float and vec3. When duration is omitted it
// defaults to the last key's time.
package clip

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/keyframe"
	"gopkg.in/yaml.v2"
)

// Track types.
const (
	TypeMatrix = "matrix"
	TypeColor  = "color"
	TypeFloat  = "float"
	TypeVec3   = "vec3"
)

// Clip is a parsed clip file.
type Clip struct {
	Name   string  `yaml:"name"`
	Tracks []Track `yaml:"tracks"`
}

// Track describes one timeline.
type Track struct {
	Property               string  `yaml:"property"`
	Type                   string  `yaml:"type"`
	Duration               *uint32 `yaml:"duration,omitempty"`
	Interpolate            bool    `yaml:"interpolate"`
	InterpolateScale       bool    `yaml:"interpolateScale"`
	InterpolateTranslation bool    `yaml:"interpolateTranslation"`
	Ease                   string  `yaml:"ease,omitempty"`
	Keys                   []Key   `yaml:"keys"`
}

// Key is one keyframe. Which fields apply depends on the track type.
type Key struct {
	Time uint32 `yaml:"time"`

	// matrix: either a full column-major matrix or translate/rotate/scale parts.
	Matrix    []float64 `yaml:"matrix,omitempty"`
	Translate []float64 `yaml:"translate,omitempty"`
	Rotate    *Rotation `yaml:"rotate,omitempty"`
	Scale     []float64 `yaml:"scale,omitempty"`

	// color
	Color string   `yaml:"color,omitempty"`
	Alpha *float64 `yaml:"alpha,omitempty"`

	// float
	Value *float64 `yaml:"value,omitempty"`

	// vec3
	Vector []float64 `yaml:"vector,omitempty"`
}

// Rotation is either an axis and angle in degrees or a quaternion [x, y, z, w].
type Rotation struct {
	Axis    []float64 `yaml:"axis,omitempty"`
	Degrees float64   `yaml:"degrees,omitempty"`
	Quat    []float64 `yaml:"quat,omitempty"`
}

// Load reads and parses a clip file.
func Load(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load clip: %w", err)
	}
	return Parse(data)
}

// Parse decodes a clip and validates its structure. Unknown fields are
// rejected.
func Parse(data []byte) (*Clip, error) {
	var c Clip
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("parse clip: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks track-level structure. Key contents are checked by Build.
func (c *Clip) Validate() error {
	if len(c.Tracks) == 0 {
		return fmt.Errorf("clip %q: no tracks", c.Name)
	}
	for i, tr := range c.Tracks {
		if tr.Property == "" {
			return fmt.Errorf("clip %q: track %d: property required", c.Name, i)
		}
		switch tr.Type {
		case TypeMatrix, TypeColor, TypeFloat, TypeVec3:
		default:
			return fmt.Errorf("clip %q: track %d (%s): unknown type %q", c.Name, i, tr.Property, tr.Type)
		}
		if len(tr.Keys) == 0 {
			return fmt.Errorf("clip %q: track %d (%s): no keys", c.Name, i, tr.Property)
		}
		if tr.Ease != "" {
			if _, ok := keyframe.EasingByName(tr.Ease); !ok {
				return fmt.Errorf("clip %q: track %d (%s): unknown ease %q", c.Name, i, tr.Property, tr.Ease)
			}
		}
	}
	return nil
}

// Build converts every track into a timeline.
func (c *Clip) Build() ([]keyframe.Track, error) {
	tracks := make([]keyframe.Track, 0, len(c.Tracks))
	for i, tr := range c.Tracks {
		built, err := tr.Build()
		if err != nil {
			return nil, fmt.Errorf("clip %q: track %d (%s): %w", c.Name, i, tr.Property, err)
		}
		tracks = append(tracks, built)
	}
	return tracks, nil
}

// Animation builds the clip's timelines into an Animation writing to target
// and seeds target with each track's first keyframe.
func (c *Clip) Animation(target keyframe.PropertyStore) (*keyframe.Animation, error) {
	tracks, err := c.Build()
	if err != nil {
		return nil, err
	}
	a := keyframe.NewAnimation(target, tracks...)
	a.Seed()
	return a, nil
}

// Build converts the track into a timeline.
func (t Track) Build() (keyframe.Track, error) {
	cfg := keyframe.TimelineConfig{
		Property:               t.Property,
		Duration:               t.duration(),
		Interpolate:            t.Interpolate,
		InterpolateScale:       t.InterpolateScale,
		InterpolateTranslation: t.InterpolateTranslation,
	}
	if t.Ease != "" {
		e, ok := keyframe.EasingByName(t.Ease)
		if !ok {
			return nil, fmt.Errorf("unknown ease %q", t.Ease)
		}
		cfg.Easing = e
	}

	times := make([]uint32, len(t.Keys))
	for i, k := range t.Keys {
		times[i] = k.Time
	}

	switch t.Type {
	case TypeMatrix:
		return buildTimeline(cfg, times, t.Keys, Key.matrix, keyframe.MatrixInterpolator{})
	case TypeColor:
		return buildTimeline(cfg, times, t.Keys, Key.color, keyframe.ColorInterpolator{})
	case TypeFloat:
		return buildTimeline(cfg, times, t.Keys, Key.float, keyframe.FloatInterpolator{})
	case TypeVec3:
		return buildTimeline(cfg, times, t.Keys, Key.vec3, keyframe.Vec3Interpolator{})
	default:
		return nil, fmt.Errorf("unknown type %q", t.Type)
	}
}

func buildTimeline[V any](cfg keyframe.TimelineConfig, times []uint32, keys []Key,
	conv func(Key) (V, error), interp keyframe.Interpolator[V]) (keyframe.Track, error) {
	values, err := convertKeys(keys, conv)
	if err != nil {
		return nil, err
	}
	tl, err := keyframe.NewTimeline(cfg, times, values, interp)
	if err != nil {
		return nil, err
	}
	return tl, nil
}

func (t Track) duration() uint32 {
	if t.Duration != nil {
		return *t.Duration
	}
	var d uint32
	for _, k := range t.Keys {
		d = max(d, k.Time)
	}
	return d
}

func convertKeys[V any](keys []Key, conv func(Key) (V, error)) ([]V, error) {
	values := make([]V, len(keys))
	for i, k := range keys {
		v, err := conv(k)
		if err != nil {
			return nil, fmt.Errorf("key %d (time %d): %w", i, k.Time, err)
		}
		values[i] = v
	}
	return values, nil
}

func (k Key) matrix() (keyframe.Mat4, error) {
	if len(k.Matrix) > 0 {
		if k.Translate != nil || k.Rotate != nil || k.Scale != nil {
			return keyframe.Mat4{}, fmt.Errorf("matrix cannot be combined with translate/rotate/scale")
		}
		if len(k.Matrix) != 16 {
			return keyframe.Mat4{}, fmt.Errorf("matrix needs 16 values, got %d", len(k.Matrix))
		}
		var m keyframe.Mat4
		copy(m[:], k.Matrix)
		return m, nil
	}

	tr := keyframe.Transform{Rotation: keyframe.IdentityQuat, Scale: keyframe.Vec3{X: 1, Y: 1, Z: 1}}
	var err error
	if k.Translate != nil {
		if tr.Translation, err = vec3("translate", k.Translate); err != nil {
			return keyframe.Mat4{}, err
		}
	}
	if k.Scale != nil {
		if tr.Scale, err = vec3("scale", k.Scale); err != nil {
			return keyframe.Mat4{}, err
		}
	}
	if k.Rotate != nil {
		if tr.Rotation, err = k.Rotate.quat(); err != nil {
			return keyframe.Mat4{}, err
		}
	}
	return tr.Matrix(), nil
}

func (k Key) color() (keyframe.Color, error) {
	if k.Color == "" {
		return keyframe.Color{}, fmt.Errorf("color required")
	}
	hex := k.Color
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return keyframe.Color{}, fmt.Errorf("color %q: %w", k.Color, err)
	}
	alpha := 1.0
	if k.Alpha != nil {
		alpha = *k.Alpha
	}
	if alpha < 0 || alpha > 1 {
		return keyframe.Color{}, fmt.Errorf("alpha %v out of [0, 1]", alpha)
	}
	return keyframe.Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func (k Key) float() (float64, error) {
	if k.Value == nil {
		return 0, fmt.Errorf("value required")
	}
	return *k.Value, nil
}

func (k Key) vec3() (keyframe.Vec3, error) {
	return vec3("vector", k.Vector)
}

func (r Rotation) quat() (keyframe.Quat, error) {
	if len(r.Quat) > 0 {
		if r.Axis != nil {
			return keyframe.Quat{}, fmt.Errorf("rotate: quat cannot be combined with axis")
		}
		if len(r.Quat) != 4 {
			return keyframe.Quat{}, fmt.Errorf("rotate: quat needs 4 values, got %d", len(r.Quat))
		}
		q := keyframe.Quat{X: r.Quat[0], Y: r.Quat[1], Z: r.Quat[2], W: r.Quat[3]}
		if q.Len() == 0 {
			return keyframe.Quat{}, fmt.Errorf("rotate: zero quat")
		}
		return q.Normalize(), nil
	}
	axis, err := vec3("rotate axis", r.Axis)
	if err != nil {
		return keyframe.Quat{}, err
	}
	if axis.Len() == 0 {
		return keyframe.Quat{}, fmt.Errorf("rotate: zero axis")
	}
	return keyframe.QuatFromAxisAngle(axis, r.Degrees*math.Pi/180), nil
}

func vec3(field string, v []float64) (keyframe.Vec3, error) {
	if len(v) != 3 {
		return keyframe.Vec3{}, fmt.Errorf("%s needs 3 values, got %d", field, len(v))
	}
	return keyframe.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
