// Package entity defines the simulation objects: the player, pursuing
// enemies, projectiles, the roll trail, and the runner variant's coins and
// obstacles.
package entity

import (
	"time"

	"github.com/luxa-club/luxa/internal/input"
)

// Spawner allows entities to queue new entities during an update. Queued
// entities join the simulation after the current update pass.
type Spawner interface {
	Spawn(e Entity)
}

// UpdateContext provides everything an entity needs during one step.
type UpdateContext struct {
	Delta time.Duration
	// DT is the wall-clock delta normalized to the 60fps baseline: 1.0 for a
	// 16.67ms frame. All speeds are in units per baseline frame.
	DT      float64
	Input   input.State
	Bounds  Bounds
	Spawner Spawner

	// PlayerX, PlayerY is the player's center captured before any entity
	// moved this frame. Pursuit always targets this pre-update position.
	PlayerX, PlayerY float64

	// ScrollSpeed moves runner entities toward the player, units per frame.
	ScrollSpeed float64
}

// Entity is an updatable simulation object.
type Entity interface {
	// Update advances the entity one step. Returns true if the entity should
	// be removed from the simulation.
	Update(ctx UpdateContext) (remove bool, err error)
}

// Destructible is implemented by entities removable through collisions.
type Destructible interface {
	// MarkDestroyed marks the entity for removal at the end of the frame.
	MarkDestroyed()
	// IsDestroyed reports whether the entity is marked for removal. A marked
	// entity must not take part in any further collision checks.
	IsDestroyed() bool
}

// Bounds is the rectangular play field in logical units, origin top-left.
type Bounds struct {
	Width  float64
	Height float64
}

// Clamp limits a center position so a circle of radius r stays inside.
func (b Bounds) Clamp(x, y *float64, r float64) {
	if *x < r {
		*x = r
	}
	if *x > b.Width-r {
		*x = b.Width - r
	}
	if *y < r {
		*y = r
	}
	if *y > b.Height-r {
		*y = b.Height - r
	}
}

// Contains reports whether (x,y) lies inside the field expanded by margin.
func (b Bounds) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= b.Width+margin && y >= -margin && y <= b.Height+margin
}
