// Package game implements the shared frame-stepped simulation behind the
// club's arcade games: entity state, the per-frame step, spawning with a
// decaying interval, collision resolution, and the upgrade progression.
package game

import (
	"math/rand"
	"time"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/entity"
	"github.com/luxa-club/luxa/internal/geom"
	"github.com/luxa-club/luxa/internal/input"
)

// TargetFPS is the baseline frame rate all speeds are normalized to.
const TargetFPS = 60

// TargetFrameTime is the frame budget at TargetFPS.
const TargetFrameTime = time.Second / TargetFPS

// Phase is the simulation's progression state.
type Phase int

const (
	PhaseCountdown Phase = iota // pre-start countdown running
	PhaseRunning                // active gameplay
	PhaseUpgrade                // paused for an upgrade choice
	PhaseGameOver               // paused after a fatal outcome
)

// State holds all mutable simulation state for one session. The step owns
// every collection; the render path only ever sees Snapshot copies. A single
// goroutine must drive Step.
type State struct {
	Cfg config.Tuning

	Phase     Phase
	Frame     uint64
	Delta     time.Duration
	Countdown float64 // seconds remaining before start, display only

	Player      *entity.Player
	Enemies     []*entity.Enemy
	Projectiles []*entity.Projectile
	Trail       []*entity.TrailSegment
	Coins       []*entity.Coin
	Obstacles   []*entity.Obstacle

	Score            int
	Defeated         int
	UpgradeThreshold int
	Choices          []Upgrade // offered while PhaseUpgrade
	Distance         float64   // runner scroll distance
	Shake            bool      // feedback animation flag

	// Spawner state: current interval in frames and frames accumulated
	// since the last trigger.
	SpawnInterval    float64
	sinceSpawn       float64
	CoinInterval     float64
	sinceCoin        float64
	ObstacleInterval float64
	sinceObstacle    float64

	pending []entity.Entity // spawns queued during the current update pass

	timers *timerSet
	rng    *rand.Rand
}

// New creates a session state in the countdown phase. The seed fixes the
// random stream for spawn positions and upgrade offers.
func New(cfg config.Tuning, seed int64) *State {
	s := &State{
		Cfg:    cfg,
		timers: newTimerSet(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s
}

// Bounds returns the play field.
func (s *State) Bounds() entity.Bounds {
	return entity.Bounds{Width: s.Cfg.Width, Height: s.Cfg.Height}
}

// Spawn queues an entity to join the simulation after the current update
// pass. Implements entity.Spawner.
func (s *State) Spawn(e entity.Entity) {
	s.pending = append(s.pending, e)
}

// flushPending moves queued spawns into their collections.
func (s *State) flushPending() {
	for _, e := range s.pending {
		switch v := e.(type) {
		case *entity.Enemy:
			s.Enemies = append(s.Enemies, v)
		case *entity.Projectile:
			s.Projectiles = append(s.Projectiles, v)
		case *entity.TrailSegment:
			s.Trail = append(s.Trail, v)
		case *entity.Coin:
			s.Coins = append(s.Coins, v)
		case *entity.Obstacle:
			s.Obstacles = append(s.Obstacles, v)
		}
	}
	s.pending = s.pending[:0]
}

// Restart resets the session to its initial values regardless of prior
// state: fresh player, empty collections, zeroed score and counters, initial
// spawn intervals, and a new countdown. All pending timers are cancelled so
// a stale expiry cannot touch the new run.
func (s *State) Restart() {
	s.timers.CancelAll()
	s.reset()
}

// Close cancels all pending timers. Call when the session is torn down.
func (s *State) Close() {
	s.timers.CancelAll()
}

func (s *State) reset() {
	s.Player = entity.NewPlayer(s.Cfg)
	s.Enemies = s.Enemies[:0]
	s.Projectiles = s.Projectiles[:0]
	s.Trail = s.Trail[:0]
	s.Coins = s.Coins[:0]
	s.Obstacles = s.Obstacles[:0]
	s.pending = s.pending[:0]

	s.Score = 0
	s.Defeated = 0
	s.UpgradeThreshold = s.Cfg.UpgradeThreshold
	s.Choices = nil
	s.Distance = 0
	s.Shake = false
	s.Frame = 0

	s.SpawnInterval = s.Cfg.SpawnInterval
	s.CoinInterval = s.Cfg.CoinInterval
	s.ObstacleInterval = s.Cfg.ObstacleInterval
	s.sinceSpawn = 0
	s.sinceCoin = 0
	s.sinceObstacle = 0

	s.beginCountdown()
}

// beginCountdown enters the countdown phase and schedules the transition to
// running.
func (s *State) beginCountdown() {
	s.Phase = PhaseCountdown
	s.Countdown = s.Cfg.CountdownSeconds
	s.timers.After(s.Cfg.CountdownSeconds, func() {
		if s.Phase == PhaseCountdown {
			s.Phase = PhaseRunning
		}
	})
}

// aimFallback substitutes the nearest enemy for the pointer when no pointer
// has been seen (terminal play has no mouse).
func (s *State) aimFallback(in input.State) input.State {
	if in.PointerValid || len(s.Enemies) == 0 {
		return in
	}
	px, py := s.Player.Center()
	best := -1.0
	for _, e := range s.Enemies {
		d := geom.DistanceSquared(px, py, e.X, e.Y)
		if best < 0 || d < best {
			best = d
			in.PointerX = e.X
			in.PointerY = e.Y
		}
	}
	in.PointerValid = true
	return in
}
