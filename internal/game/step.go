package game

import (
	"time"

	"github.com/luxa-club/luxa/internal/entity"
	"github.com/luxa-club/luxa/internal/input"
)

// Step advances the simulation by one frame. delta is the wall-clock time
// since the previous step; movement is normalized to the 60fps baseline so
// pursuit and projectile speed are frame-rate independent. Game actions
// while paused are no-ops apart from the pause-specific ones: choosing an
// upgrade while PhaseUpgrade, restarting while PhaseGameOver.
func (s *State) Step(delta time.Duration, in input.State) error {
	s.Delta = delta
	dt := delta.Seconds() * TargetFPS

	switch s.Phase {
	case PhaseCountdown:
		s.timers.Advance(delta.Seconds())
		s.Countdown -= delta.Seconds()
		if s.Countdown < 0 {
			s.Countdown = 0
		}
		return nil

	case PhaseUpgrade:
		if in.Choice >= 1 && in.Choice <= len(s.Choices) {
			s.ChooseUpgrade(in.Choice - 1)
		}
		return nil

	case PhaseGameOver:
		if in.Enter {
			s.Restart()
		}
		return nil
	}

	s.timers.Advance(delta.Seconds())
	if s.Phase != PhaseRunning {
		// A timer expiry never changes phase, but guard all the same.
		return nil
	}

	s.Frame++

	// Capture the player's center before anything moves: every pursuit
	// update this frame targets this pre-update position.
	px, py := s.Player.Center()

	ctx := entity.UpdateContext{
		Delta:       delta,
		DT:          dt,
		Input:       s.aimFallback(in),
		Bounds:      s.Bounds(),
		Spawner:     s,
		PlayerX:     px,
		PlayerY:     py,
		ScrollSpeed: s.Cfg.ScrollSpeed,
	}

	if _, err := s.Player.Update(ctx); err != nil {
		return err
	}
	if err := updateAll(&s.Enemies, ctx); err != nil {
		return err
	}
	if err := updateAll(&s.Projectiles, ctx); err != nil {
		return err
	}
	if err := updateAll(&s.Trail, ctx); err != nil {
		return err
	}
	if err := updateAll(&s.Coins, ctx); err != nil {
		return err
	}
	if err := updateAll(&s.Obstacles, ctx); err != nil {
		return err
	}
	s.flushPending()

	s.stepSpawners(dt)
	s.resolveCollisions()

	if s.Phase == PhaseRunning && s.Cfg.ScrollSpeed > 0 {
		s.Distance += s.Cfg.ScrollSpeed * dt
	}
	if s.Phase == PhaseRunning && s.Cfg.FatalBoundary {
		if s.Player.Y+s.Player.Radius() >= s.Cfg.Height {
			s.finishGame()
		}
	}

	return nil
}

// updateAll updates one entity collection, compacting out removed entries in
// place so they are never touched again.
func updateAll[E entity.Entity](entities *[]E, ctx entity.UpdateContext) error {
	kept := (*entities)[:0]
	for _, e := range *entities {
		remove, err := e.Update(ctx)
		if err != nil {
			return err
		}
		if !remove {
			kept = append(kept, e)
		}
	}
	*entities = kept
	return nil
}
