package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WarmRegion pre-populates the biome and height caches for a rectangular
// region by fanning BiomeAt/HeightAt calls out across goroutines, stepping
// every step world units in each axis. It returns the first error any
// worker goroutine produces; none of the query methods below actually
// return errors today, so in practice WarmRegion only ever fails via ctx
// cancellation.
func (c *Core) WarmRegion(ctx context.Context, minX, maxX, minZ, maxZ float64, step float64, concurrency int) error {
	if step <= 0 {
		step = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for x := minX; x <= maxX; x += step {
		x := x
		g.Go(func() error {
			for z := minZ; z <= maxZ; z += step {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				c.BiomeAt(x, z)
				c.HeightAt(x, z)
			}
			return nil
		})
	}

	return g.Wait()
}
