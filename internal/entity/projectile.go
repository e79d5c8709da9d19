package entity

import "math"

// projectileCullMargin is how far beyond the field edge a projectile may
// travel before it is removed.
const projectileCullMargin = 10.0

// Projectile travels in a straight line at a constant angle until it hits an
// enemy or leaves the visible bounds.
type Projectile struct {
	X, Y      float64
	Angle     float64 // radians
	Speed     float64 // units per baseline frame
	Size      float64 // diameter
	destroyed bool
}

// NewProjectile creates a projectile at (x,y) traveling along angle.
func NewProjectile(x, y, angle, speed, size float64) *Projectile {
	return &Projectile{X: x, Y: y, Angle: angle, Speed: speed, Size: size}
}

// Radius returns the collision radius.
func (p *Projectile) Radius() float64 {
	return p.Size / 2
}

// Update applies constant-angle linear motion and culls off-screen.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	if p.destroyed {
		return true, nil
	}

	p.X += math.Cos(p.Angle) * p.Speed * ctx.DT
	p.Y += math.Sin(p.Angle) * p.Speed * ctx.DT

	if !ctx.Bounds.Contains(p.X, p.Y, projectileCullMargin) {
		return true, nil
	}
	return false, nil
}

// MarkDestroyed marks the projectile as consumed (implements Destructible).
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed reports whether the projectile has been consumed.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
