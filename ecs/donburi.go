package ecs

import (
	"github.com/phanxgames/keyframe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// AnimatorData is the Animator component payload.
type AnimatorData struct {
	Animation *keyframe.Animation
}

// TimelineError reports a failed animation update on one entity.
type TimelineError struct {
	Entity donburi.Entity
	Err    error
}

var (
	// Properties is the per-entity property store animations write into.
	Properties = donburi.NewComponentType[keyframe.Container]()

	// Animator holds the entity's animation.
	Animator = donburi.NewComponentType[AnimatorData]()

	// TimelineErrorEvent is published when an entity's animation fails to
	// update. Subscribe to it and call ProcessEvents to receive them.
	TimelineErrorEvent = events.NewEventType[TimelineError]()
)

// UpdateAnimators advances every entity with both an Animator and Properties
// by dt seconds and returns how many were updated. Entities with a nil or
// disposed animation are skipped.
func UpdateAnimators(world donburi.World, dt float32) int {
	n := 0
	donburi.NewQuery(filter.Contains(Animator, Properties)).Each(world, func(entry *donburi.Entry) {
		anim := Animator.Get(entry).Animation
		if anim == nil || anim.IsDisposed() {
			return
		}
		if err := anim.Advance(dt, Properties.Get(entry)); err != nil {
			TimelineErrorEvent.Publish(world, TimelineError{Entity: entry.Entity(), Err: err})
		}
		n++
	})
	return n
}

// Seed writes each track's first keyframe into the entry's Properties for
// properties it does not have yet.
func Seed(entry *donburi.Entry) {
	anim := Animator.Get(entry).Animation
	if anim == nil {
		return
	}
	props := Properties.Get(entry)
	for _, tr := range anim.Tracks() {
		tr.Seed(props)
	}
}
