package keyframe

import (
	"fmt"
	"log/slog"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is the per-entity animation component: it owns a set of tracks
// for one target store and a playback clock. Call Update(dt) once per frame.
//
// There is no global animation manager; users call Update themselves, or use
// UpdateAll to advance many animations at once.
type Animation struct {
	tracks []Track
	target PropertyStore

	// Speed scales playback. 1 is real time, 0 freezes, negative rewinds
	// (clamped at time 0).
	Speed float64

	clock      float64 // milliseconds
	playing    bool
	speedTween *gween.Tween

	disposed bool
	debug    bool
	logger   *slog.Logger
}

// NewAnimation creates a playing animation at time 0 writing to target.
func NewAnimation(target PropertyStore, tracks ...Track) *Animation {
	return &Animation{
		tracks:  tracks,
		target:  target,
		Speed:   1,
		playing: true,
		logger:  discardLogger,
	}
}

// Update advances playback by dt seconds and writes every unlocked track's
// value into the animation's target.
func (a *Animation) Update(dt float32) error {
	return a.Advance(dt, a.target)
}

// Advance is Update against an explicit target, for drivers (such as an ECS
// system) that own the property store separately from the animation.
func (a *Animation) Advance(dt float32, target PropertyStore) error {
	if a.disposed {
		if a.debug {
			debugCheckDisposed(a, "Advance")
		}
		return nil
	}

	if a.speedTween != nil {
		v, finished := a.speedTween.Update(dt)
		a.Speed = float64(v)
		if finished {
			a.speedTween = nil
		}
	}

	if a.playing {
		a.clock += float64(dt) * 1000 * a.Speed
		if a.clock < 0 {
			a.clock = 0
		}
	}
	return a.apply(target)
}

func (a *Animation) apply(target PropertyStore) error {
	now := a.Time()
	for _, tr := range a.tracks {
		if tr.IsLocked() {
			a.logger.Debug("track locked", slog.String("property", tr.Property()))
			continue
		}
		if err := tr.Update(now, target); err != nil {
			a.logger.Error("track update failed",
				slog.String("property", tr.Property()),
				slog.Uint64("time", uint64(now)),
				slog.Any("error", err))
			return fmt.Errorf("update %q: %w", tr.Property(), err)
		}
	}
	return nil
}

// Time returns the playback position in milliseconds. It wraps at the uint32
// range; each track loops on its own duration.
func (a *Animation) Time() uint32 {
	return uint32(uint64(a.clock))
}

// Seek moves the playback position. The new pose is written on the next
// Update.
func (a *Animation) Seek(ms uint32) {
	a.clock = float64(ms)
}

// Play resumes the clock.
func (a *Animation) Play() { a.playing = true }

// Stop freezes the clock. Updates keep writing the pose at the frozen time.
func (a *Animation) Stop() { a.playing = false }

// IsPlaying reports whether the clock is running.
func (a *Animation) IsPlaying() bool { return a.playing }

// Duration returns the longest track duration.
func (a *Animation) Duration() uint32 {
	var d uint32
	for _, tr := range a.tracks {
		d = max(d, tr.Duration())
	}
	return d
}

// Tracks returns the animation's tracks. The returned slice MUST NOT be mutated.
func (a *Animation) Tracks() []Track {
	return a.tracks
}

// Track returns the first track writing property.
func (a *Animation) Track(property string) (Track, bool) {
	for _, tr := range a.tracks {
		if tr.Property() == property {
			return tr, true
		}
	}
	return nil, false
}

// Lock locks every track writing property and reports whether any matched.
func (a *Animation) Lock(property string) bool {
	found := false
	for _, tr := range a.tracks {
		if tr.Property() == property {
			tr.Lock()
			found = true
		}
	}
	return found
}

// Unlock unlocks every track writing property and reports whether any matched.
func (a *Animation) Unlock(property string) bool {
	found := false
	for _, tr := range a.tracks {
		if tr.Property() == property {
			tr.Unlock()
			found = true
		}
	}
	return found
}

// Seed writes each track's first keyframe into the target for properties the
// target does not have yet.
func (a *Animation) Seed() {
	for _, tr := range a.tracks {
		tr.Seed(a.target)
	}
}

// TweenSpeed ramps Speed to `to` over duration seconds using the easing
// function, replacing any ramp in progress.
func (a *Animation) TweenSpeed(to float64, duration float32, fn ease.TweenFunc) {
	a.speedTween = gween.New(float32(a.Speed), float32(to), duration, fn)
}

// SetLogger routes debug and error records through l. Nil restores the
// default discard logger.
func (a *Animation) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	a.logger = l
}

// SetDebugMode enables misuse checks: updating a disposed animation panics
// instead of being ignored.
func (a *Animation) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Dispose releases the tracks and target. Later updates are no-ops.
func (a *Animation) Dispose() {
	a.disposed = true
	a.tracks = nil
	a.target = nil
	a.speedTween = nil
}

// IsDisposed reports whether Dispose has been called.
func (a *Animation) IsDisposed() bool {
	return a.disposed
}
