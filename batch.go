package keyframe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// UpdateAll advances independent animations by dt seconds, running up to
// workers updates concurrently (workers <= 0 means no limit). It returns once
// every animation has been updated, so the caller can render afterwards.
//
// Animations must not share a target store or tracks. The first error
// cancels the animations that have not started yet and is returned.
func UpdateAll(ctx context.Context, dt float32, workers int, anims ...*Animation) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, a := range anims {
		if a == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.Update(dt)
		})
	}
	return g.Wait()
}
