package keyframe

import (
	"strings"

	"github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// Easing reshapes segment progress in [0, 1] before it reaches an
// Interpolator. A nil Easing is linear.
type Easing func(t float64) float64

// TweenEasing adapts a gween easing function so the same curves used for
// tweens can shape keyframe segments.
func TweenEasing(fn gease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

func (e Easing) apply(t float64) float64 {
	if e == nil {
		return t
	}
	return e(t)
}

var easingsByName = map[string]Easing{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
}

// EasingByName looks up a named curve. Matching ignores case, dashes and
// underscores, so "inOutQuad", "in-out-quad" and "IN_OUT_QUAD" are the same.
func EasingByName(name string) (Easing, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	e, ok := easingsByName[key]
	return e, ok
}
