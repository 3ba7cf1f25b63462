// Package ecs drives keyframe animations from a [Donburi] world.
//
// Entities carry a [Properties] component (the property store timelines
// write) and an [Animator] component holding the [keyframe.Animation]. Call
// [UpdateAnimators] once per tick from a system:
//
//	entity := world.Create(ecs.Properties, ecs.Animator)
//	entry := world.Entry(entity)
//	ecs.Animator.SetValue(entry, ecs.AnimatorData{Animation: anim})
//	ecs.Seed(entry)
//
//	// each tick
//	ecs.UpdateAnimators(world, 1.0/60)
//	ecs.TimelineErrorEvent.ProcessEvents(world)
//
// Track failures do not stop the system; they are published as
// [TimelineErrorEvent] so the rest of the world keeps animating.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
