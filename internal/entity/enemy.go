package entity

import (
	"math"
	"math/rand"
)

// Enemy chases the player in a straight line at its own speed.
type Enemy struct {
	X, Y      float64 // center
	Size      float64 // diameter
	Speed     float64 // units per baseline frame
	destroyed bool
}

// NewEnemyAtEdge creates an enemy just outside the play field on a random
// edge, with a speed drawn uniformly from [minSpeed, maxSpeed).
func NewEnemyAtEdge(b Bounds, rng *rand.Rand, minSpeed, maxSpeed, size float64) *Enemy {
	var x, y float64
	switch rng.Intn(4) {
	case 0: // top
		x = rng.Float64() * b.Width
		y = -size
	case 1: // bottom
		x = rng.Float64() * b.Width
		y = b.Height + size
	case 2: // left
		x = -size
		y = rng.Float64() * b.Height
	case 3: // right
		x = b.Width + size
		y = rng.Float64() * b.Height
	}

	return &Enemy{
		X:     x,
		Y:     y,
		Size:  size,
		Speed: minSpeed + rng.Float64()*(maxSpeed-minSpeed),
	}
}

// Radius returns the collision radius.
func (e *Enemy) Radius() float64 {
	return e.Size / 2
}

// Update moves the enemy along the straight-line angle toward the player's
// pre-update center.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	if e.destroyed {
		return true, nil
	}

	angle := math.Atan2(ctx.PlayerY-e.Y, ctx.PlayerX-e.X)
	e.X += math.Cos(angle) * e.Speed * ctx.DT
	e.Y += math.Sin(angle) * e.Speed * ctx.DT

	return false, nil
}

// MarkDestroyed marks the enemy for removal (implements Destructible).
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed reports whether the enemy is marked for removal.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}
