package keyframe

import (
	"fmt"
	"log/slog"
)

// discardLogger is the default Animation logger.
var discardLogger = slog.New(slog.DiscardHandler)

// debugCheckDisposed panics with a descriptive message when a disposed
// animation is used. Only called in debug mode.
func debugCheckDisposed(a *Animation, op string) {
	if a.disposed {
		panic(fmt.Sprintf("keyframe debug: %s on disposed animation", op))
	}
}
