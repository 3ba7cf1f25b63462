package keyframe

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"inOutQuad", "in-out-quad", "IN_OUT_QUAD", "inoutquad"} {
		e, ok := EasingByName(name)
		if !ok {
			t.Errorf("EasingByName(%q) not found", name)
			continue
		}
		assertNear(t, name+"(0.5)", e(0.5), 0.5)
		assertNear(t, name+"(0.25)", e(0.25), 0.125)
	}
}

func TestEasingByNameEndpoints(t *testing.T) {
	// Elastic, back and bounce curves overshoot or approach their ends
	// asymptotically, so only the exact polynomial and trig curves are checked.
	for _, name := range []string{"linear", "inQuad", "outQuad", "inOutQuad", "inCubic", "outCubic", "inOutCubic", "inSine", "outSine", "inCirc", "outCirc"} {
		e, ok := EasingByName(name)
		if !ok {
			t.Fatalf("EasingByName(%q) not found", name)
		}
		assertNear(t, name+"(0)", e(0), 0)
		assertNear(t, name+"(1)", e(1), 1)
	}
}

func TestEasingByNameUnknown(t *testing.T) {
	if _, ok := EasingByName("wobble"); ok {
		t.Error("expected unknown easing to be missing")
	}
}

func TestNilEasingIsLinear(t *testing.T) {
	var e Easing
	assertNear(t, "apply", e.apply(0.3), 0.3)
}

func TestTweenEasing(t *testing.T) {
	linear := TweenEasing(ease.Linear)
	assertNear(t, "linear(0.5)", linear(0.5), 0.5)

	cubic := TweenEasing(ease.OutCubic)
	if cubic(0.5) <= 0.5 {
		t.Errorf("OutCubic(0.5) = %v, want > 0.5", cubic(0.5))
	}
}
