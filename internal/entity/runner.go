package entity

import "math/rand"

// Coin is a collectible in the runner variant. It scrolls in from the right
// edge and is removed when collected or once it leaves the field.
type Coin struct {
	X, Y      float64
	Size      float64
	collected bool
}

// NewCoinAtEdge creates a coin just past the right edge at a random height.
func NewCoinAtEdge(b Bounds, rng *rand.Rand, size float64) *Coin {
	return &Coin{
		X:    b.Width + size,
		Y:    size + rng.Float64()*(b.Height-2*size),
		Size: size,
	}
}

// Radius returns the collision radius.
func (c *Coin) Radius() float64 { return c.Size / 2 }

// Update scrolls the coin left and culls it past the field.
func (c *Coin) Update(ctx UpdateContext) (bool, error) {
	if c.collected {
		return true, nil
	}
	c.X -= ctx.ScrollSpeed * ctx.DT
	return c.X < -c.Size, nil
}

// MarkDestroyed marks the coin as collected (implements Destructible).
func (c *Coin) MarkDestroyed() { c.collected = true }

// IsDestroyed reports whether the coin has been collected.
func (c *Coin) IsDestroyed() bool { return c.collected }

// Obstacle is a hazard in the runner variant, scrolling in from the right.
type Obstacle struct {
	X, Y      float64
	Size      float64
	destroyed bool
}

// NewObstacleAtEdge creates an obstacle just past the right edge at a random
// height.
func NewObstacleAtEdge(b Bounds, rng *rand.Rand, size float64) *Obstacle {
	return &Obstacle{
		X:    b.Width + size,
		Y:    size + rng.Float64()*(b.Height-2*size),
		Size: size,
	}
}

// Radius returns the collision radius.
func (o *Obstacle) Radius() float64 { return o.Size / 2 }

// Update scrolls the obstacle left and culls it past the field.
func (o *Obstacle) Update(ctx UpdateContext) (bool, error) {
	if o.destroyed {
		return true, nil
	}
	o.X -= ctx.ScrollSpeed * ctx.DT
	return o.X < -o.Size, nil
}

// MarkDestroyed marks the obstacle for removal (implements Destructible).
func (o *Obstacle) MarkDestroyed() { o.destroyed = true }

// IsDestroyed reports whether the obstacle is marked for removal.
func (o *Obstacle) IsDestroyed() bool { return o.destroyed }
