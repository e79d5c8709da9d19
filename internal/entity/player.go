package entity

import (
	"math"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/geom"
)

// Player is the single player-controlled entity. Exactly one exists per
// session; it is never removed, only reset on restart.
type Player struct {
	X, Y float64 // center
	W, H float64

	Lives int
	Speed float64

	// Invincible is the timed post-hit immunity flag, set by the collision
	// resolver and cleared by its expiry timer. The roll grants immunity
	// separately through rollRemaining.
	Invincible bool

	// Upgradable stats.
	ProjectileCount int     // projectiles per shot
	FireCooldown    float64 // seconds between shots

	projSpeed float64
	projSize  float64

	fireTimer float64

	rollDistance float64
	rollSpeed    float64
	rollCooldown float64 // seconds between rolls

	rollRemaining  float64 // distance left in the active roll
	rollTimer      float64 // cooldown remaining
	rollDX, rollDY float64

	trailFade float64
	spread    float64

	// Last movement direction, used as the roll direction fallback.
	faceDX, faceDY float64
}

// NewPlayer creates the player at the center of the field.
func NewPlayer(cfg config.Tuning) *Player {
	return &Player{
		X:               cfg.Width / 2,
		Y:               cfg.Height / 2,
		W:               cfg.PlayerSize,
		H:               cfg.PlayerSize,
		Lives:           cfg.InitialLives,
		Speed:           cfg.PlayerSpeed,
		ProjectileCount: 1,
		FireCooldown:    cfg.FireCooldownSeconds,
		projSpeed:       cfg.ProjectileSpeed,
		projSize:        cfg.ProjectileSize,
		rollDistance:    cfg.RollDistance,
		rollSpeed:       cfg.RollSpeed,
		rollCooldown:    cfg.RollCooldownSeconds,
		trailFade:       cfg.TrailFade,
		spread:          cfg.ProjectileSpread,
		faceDX:          1,
	}
}

// Radius returns the approximate collision radius, treating the square
// sprite as a circle.
func (p *Player) Radius() float64 {
	return (p.W + p.H) / 4
}

// Center returns the player's center position.
func (p *Player) Center() (float64, float64) {
	return p.X, p.Y
}

// Rolling reports whether the roll ability is currently overriding movement.
func (p *Player) Rolling() bool {
	return p.rollRemaining > 0
}

// RollReady reports whether the roll ability is off cooldown.
func (p *Player) RollReady() bool {
	return p.rollTimer <= 0
}

// Immune reports whether collisions with the player are currently ignored.
func (p *Player) Immune() bool {
	return p.Invincible || p.Rolling()
}

// Update applies held keys to movement, handles the roll override, clamps to
// the field, and fires projectiles toward the pointer.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.DT
	seconds := ctx.Delta.Seconds()

	p.fireTimer -= seconds
	p.rollTimer -= seconds

	if p.rollRemaining > 0 {
		p.stepRoll(ctx, dt)
	} else {
		p.stepMove(ctx, dt)
	}

	ctx.Bounds.Clamp(&p.X, &p.Y, p.Radius())

	if ctx.Input.Fire && ctx.Input.PointerValid && p.fireTimer <= 0 && ctx.Spawner != nil {
		p.fire(ctx)
		p.fireTimer = p.FireCooldown
	}

	return false, nil
}

// stepMove applies key-held state to produce velocity, and starts a roll on
// request.
func (p *Player) stepMove(ctx UpdateContext, dt float64) {
	var dx, dy float64
	if ctx.Input.Left {
		dx -= 1
	}
	if ctx.Input.Right {
		dx += 1
	}
	if ctx.Input.Up {
		dy -= 1
	}
	if ctx.Input.Down {
		dy += 1
	}

	if dx != 0 || dy != 0 {
		p.faceDX, p.faceDY = dx, dy
	}

	if ctx.Input.Roll && p.rollTimer <= 0 {
		mag := math.Hypot(p.faceDX, p.faceDY)
		p.rollDX = p.faceDX / mag
		p.rollDY = p.faceDY / mag
		p.rollRemaining = p.rollDistance
		p.rollTimer = p.rollCooldown
		return
	}

	p.X += dx * p.Speed * dt
	p.Y += dy * p.Speed * dt
}

// stepRoll overrides normal movement for the fixed roll distance, leaving a
// fading trail segment each frame.
func (p *Player) stepRoll(ctx UpdateContext, dt float64) {
	step := p.rollSpeed * dt
	if step > p.rollRemaining {
		step = p.rollRemaining
	}
	p.X += p.rollDX * step
	p.Y += p.rollDY * step
	p.rollRemaining -= step

	if ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewTrailSegment(p.X, p.Y, p.Radius(), p.trailFade))
	}
}

// fire spawns the configured number of projectiles aimed at the pointer,
// fanned out by the spread angle.
func (p *Player) fire(ctx UpdateContext) {
	count := p.ProjectileCount
	if count < 1 {
		count = 1
	}
	aim := geom.Angle(p.X, p.Y, ctx.Input.PointerX, ctx.Input.PointerY)

	for i := 0; i < count; i++ {
		offset := (float64(i) - float64(count-1)/2) * p.spread
		ctx.Spawner.Spawn(NewProjectile(p.X, p.Y, aim+offset, p.projSpeed, p.projSize))
	}
}
