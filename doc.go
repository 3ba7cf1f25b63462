// Package keyframe evaluates keyframe timelines for scene graph properties.
//
// A [Timeline] owns a sorted keyframe table and, once per frame, maps the
// current playback time onto it and writes the resulting value into a named
// property of a [PropertyStore] owned by the animated entity.
//
// # Quick start
//
//	tl, err := keyframe.NewMatrixTimeline("transform", 2000,
//		[]uint32{0, 1000, 2000},
//		[]keyframe.Mat4{m0, m1, m2},
//		true, true, true)
//	if err != nil {
//		return err
//	}
//
//	props := keyframe.NewContainer()
//	props.Set("transform", keyframe.Identity)
//
//	anim := keyframe.NewAnimation(props, tl)
//	// each frame:
//	if err := anim.Update(dt); err != nil {
//		return err
//	}
//
// # Evaluation
//
// Playback time loops: it is reduced modulo Duration+1, so a timeline covers
// the closed range [0, Duration]. The active keyframe is the last one whose
// time has elapsed, found by binary search. Times before the first keyframe
// use the first keyframe and times at or after the last keyframe use the last
// one.
//
// When interpolation is enabled, values strictly between the first and last
// keyframe times are blended between the two bracketing keyframes. Nothing
// is extrapolated past the last keyframe and the loop never blends the last
// keyframe into the first.
//
// Transform matrices are blended by decomposition ([Decompose]): translation
// and scale are interpolated linearly and rotation with [Slerp], then the
// parts are recomposed. Matrix entries are never blended directly.
//
// # No-op frames
//
// Update writes nothing and returns nil when the timeline is locked, has zero
// duration, the target is nil, or the target does not hold the property yet.
// An entity whose property is still loading therefore never breaks the frame
// loop. Use [Timeline.Seed] or [Animation.Seed] to create the property from
// the first keyframe.
//
// # Related packages
//
// Package keyframe/clip loads animations from YAML files, and the separate
// keyframe/ecs module drives animations from a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package keyframe
