package game

import "github.com/luxa-club/luxa/internal/geom"

// resolveCollisions runs the frame's collision checks. Sprites are treated
// as circles; every projectile is tested against every enemy. When several
// entities qualify in the same frame, the first match in iteration order
// wins.
func (s *State) resolveCollisions() {
	// Projectile-enemy: a hit consumes the projectile and removes the enemy.
	for _, p := range s.Projectiles {
		if p.IsDestroyed() {
			continue
		}
		for _, e := range s.Enemies {
			if e.IsDestroyed() {
				continue
			}
			if geom.CirclesOverlap(p.X, p.Y, p.Radius(), e.X, e.Y, e.Radius()) {
				p.MarkDestroyed()
				e.MarkDestroyed()
				s.Defeated++
				s.Score += s.Cfg.ScorePerKill
				break
			}
		}
	}

	if s.Phase == PhaseRunning && s.UpgradeThreshold > 0 && s.Defeated >= s.UpgradeThreshold {
		s.enterUpgrade()
	}

	px, py := s.Player.Center()
	pr := s.Player.Radius()

	// Player-enemy: skipped entirely while immune. A hit may end the game,
	// in which case remaining checks stop.
	for _, e := range s.Enemies {
		if s.Phase != PhaseRunning || s.Player.Immune() {
			break
		}
		if e.IsDestroyed() {
			continue
		}
		if geom.CirclesOverlap(px, py, pr, e.X, e.Y, e.Radius()) {
			e.MarkDestroyed()
			s.hitPlayer()
		}
	}

	// Runner variant: coins collect, obstacles damage.
	for _, c := range s.Coins {
		if c.IsDestroyed() {
			continue
		}
		if geom.CirclesOverlap(px, py, pr, c.X, c.Y, c.Radius()) {
			c.MarkDestroyed()
			s.Score += s.Cfg.CoinScore
		}
	}
	for _, o := range s.Obstacles {
		if s.Phase != PhaseRunning || s.Player.Immune() {
			break
		}
		if o.IsDestroyed() {
			continue
		}
		if geom.CirclesOverlap(px, py, pr, o.X, o.Y, o.Radius()) {
			o.MarkDestroyed()
			s.hitPlayer()
		}
	}

	s.compactDestroyed()
}

// hitPlayer applies one collision against the player: a life is lost, and
// either the game ends or a timed invincibility window opens. The expiry
// timers only clear the flags set here.
func (s *State) hitPlayer() {
	s.Player.Lives--
	if s.Player.Lives <= 0 {
		s.Player.Lives = 0
		s.finishGame()
		return
	}

	s.Player.Invincible = true
	s.timers.After(s.Cfg.InvincibilitySeconds, func() {
		s.Player.Invincible = false
	})

	s.Shake = true
	s.timers.After(s.Cfg.ShakeSeconds, func() {
		s.Shake = false
	})
}

// finishGame transitions to game over exactly once, finalizing the score
// with the remaining-lives bonus. Safe to call for multiple qualifying hits
// in the same frame.
func (s *State) finishGame() {
	if s.Phase == PhaseGameOver {
		return
	}
	s.Score += s.Player.Lives * s.Cfg.LifeBonus
	s.Shake = false
	s.Phase = PhaseGameOver
}

// compactDestroyed removes entities marked during collision resolution so
// nothing references them in this or any later frame.
func (s *State) compactDestroyed() {
	keptE := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.IsDestroyed() {
			keptE = append(keptE, e)
		}
	}
	s.Enemies = keptE

	keptP := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.IsDestroyed() {
			keptP = append(keptP, p)
		}
	}
	s.Projectiles = keptP

	keptC := s.Coins[:0]
	for _, c := range s.Coins {
		if !c.IsDestroyed() {
			keptC = append(keptC, c)
		}
	}
	s.Coins = keptC

	keptO := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if !o.IsDestroyed() {
			keptO = append(keptO, o)
		}
	}
	s.Obstacles = keptO
}
