package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/entity"
	"github.com/luxa-club/luxa/internal/input"
)

// frame is one baseline frame of wall-clock time.
const frame = time.Second / TargetFPS

// quietCfg is the shooter tuning with all spawners disabled so tests place
// entities by hand.
func quietCfg() config.Tuning {
	cfg := config.Shooter()
	cfg.SpawnInterval = 0
	cfg.CountdownSeconds = 1
	return cfg
}

// runningState steps a fresh state through its countdown.
func runningState(t *testing.T, cfg config.Tuning) *State {
	t.Helper()
	s := New(cfg, 1)
	require.Equal(t, PhaseCountdown, s.Phase)
	require.NoError(t, s.Step(time.Duration(cfg.CountdownSeconds*float64(time.Second)), input.State{}))
	require.Equal(t, PhaseRunning, s.Phase)
	return s
}

func TestCountdownTransitions(t *testing.T) {
	s := runningState(t, quietCfg())
	assert.Zero(t, s.Countdown)
}

func TestCountdownHoldsSimulation(t *testing.T) {
	s := New(quietCfg(), 1)
	in := input.State{Right: true, Fire: true, PointerValid: true, PointerX: 150}

	startX := s.Player.X
	require.NoError(t, s.Step(frame, in))

	assert.Equal(t, PhaseCountdown, s.Phase)
	assert.Equal(t, startX, s.Player.X)
	assert.Empty(t, s.Projectiles)
	assert.Zero(t, s.Frame)
}

func TestIntervalDecay(t *testing.T) {
	interval := 300.0
	for i := 0; i < 10; i++ {
		interval = decayInterval(interval, 0.95, 20)
	}
	assert.InDelta(t, 300*math.Pow(0.95, 10), interval, 1e-9)
}

func TestIntervalDecayClampsToFloor(t *testing.T) {
	assert.Equal(t, 20.0, decayInterval(20.5, 0.95, 20))
	// No floor configured means no clamp.
	assert.InDelta(t, 0.475, decayInterval(0.5, 0.95, 0), 1e-9)
}

func TestSpawnerTriggersAndShrinks(t *testing.T) {
	cfg := quietCfg()
	cfg.SpawnInterval = 2
	cfg.SpawnDecay = 0.5
	cfg.SpawnFloor = 1
	s := runningState(t, cfg)

	s.stepSpawners(2)
	assert.Len(t, s.Enemies, 1)
	assert.Equal(t, 1.0, s.SpawnInterval)

	// Two frames now cover two spawns at the floored interval.
	s.stepSpawners(2)
	assert.Len(t, s.Enemies, 3)
	assert.Equal(t, 1.0, s.SpawnInterval)
}

func TestSpawnIntervalOnlyResetsOnRestart(t *testing.T) {
	cfg := quietCfg()
	cfg.SpawnInterval = 10
	cfg.SpawnDecay = 0.5
	cfg.SpawnFloor = 1
	s := runningState(t, cfg)

	s.stepSpawners(10)
	require.Equal(t, 5.0, s.SpawnInterval)

	s.Restart()
	assert.Equal(t, 10.0, s.SpawnInterval)
	assert.Empty(t, s.Enemies)
}

func TestProjectileTravelPerFrame(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(100, 50, 0, 10, 2))

	require.NoError(t, s.Step(frame, input.State{}))

	require.Len(t, s.Projectiles, 1)
	assert.InDelta(t, 110.0, s.Projectiles[0].X, 1e-4)
	assert.InDelta(t, 50.0, s.Projectiles[0].Y, 1e-4)
}

func TestHitWithinCombinedRadius(t *testing.T) {
	s := runningState(t, quietCfg())

	// Radii 10.5 and 10, centers 20 apart: a hit.
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(10, 10, 0, 0, 21))
	s.Enemies = append(s.Enemies, &entity.Enemy{X: 30, Y: 10, Size: 20})

	s.resolveCollisions()

	assert.Equal(t, 1, s.Defeated)
	assert.Equal(t, s.Cfg.ScorePerKill, s.Score)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Projectiles)
}

func TestMissOutsideCombinedRadius(t *testing.T) {
	s := runningState(t, quietCfg())

	// Same radii, centers 21 apart: no hit.
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(10, 10, 0, 0, 21))
	s.Enemies = append(s.Enemies, &entity.Enemy{X: 31, Y: 10, Size: 20})

	s.resolveCollisions()

	assert.Zero(t, s.Defeated)
	assert.Zero(t, s.Score)
	assert.Len(t, s.Enemies, 1)
	assert.Len(t, s.Projectiles, 1)
}

func TestProjectileConsumedBySingleEnemy(t *testing.T) {
	s := runningState(t, quietCfg())

	// Two enemies overlap the projectile; only the first in order is hit.
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(10, 10, 0, 0, 4))
	s.Enemies = append(s.Enemies,
		&entity.Enemy{X: 11, Y: 10, Size: 4},
		&entity.Enemy{X: 12, Y: 10, Size: 4},
	)

	s.resolveCollisions()

	assert.Equal(t, 1, s.Defeated)
	assert.Len(t, s.Enemies, 1)
	assert.Empty(t, s.Projectiles)
}

func TestDefeatedEnemiesNeverReturn(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(10, 10, 0, 0, 4))
	s.Enemies = append(s.Enemies, &entity.Enemy{X: 11, Y: 10, Size: 4})

	s.resolveCollisions()
	require.Empty(t, s.Enemies)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Step(frame, input.State{}))
	}
	assert.Empty(t, s.Enemies)
	assert.Equal(t, 1, s.Defeated)
}

func TestUpgradeThresholdDoubles(t *testing.T) {
	s := runningState(t, quietCfg())
	require.Equal(t, 10, s.UpgradeThreshold)

	s.Defeated = 10
	s.resolveCollisions()
	require.Equal(t, PhaseUpgrade, s.Phase)
	require.Len(t, s.Choices, upgradeChoiceCount)

	s.ChooseUpgrade(0)
	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Equal(t, 20, s.UpgradeThreshold)
	assert.Empty(t, s.Choices)

	s.Defeated = 20
	s.resolveCollisions()
	require.Equal(t, PhaseUpgrade, s.Phase)
	s.ChooseUpgrade(1)
	assert.Equal(t, 40, s.UpgradeThreshold)
}

func TestUpgradePauseIgnoresGameActions(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Defeated = s.UpgradeThreshold
	s.resolveCollisions()
	require.Equal(t, PhaseUpgrade, s.Phase)

	startX := s.Player.X
	startFrame := s.Frame
	require.NoError(t, s.Step(frame, input.State{Right: true}))

	assert.Equal(t, PhaseUpgrade, s.Phase)
	assert.Equal(t, startX, s.Player.X)
	assert.Equal(t, startFrame, s.Frame)

	// An out-of-range choice keeps the pause.
	require.NoError(t, s.Step(frame, input.State{Choice: 9}))
	assert.Equal(t, PhaseUpgrade, s.Phase)

	// A valid choice resumes.
	require.NoError(t, s.Step(frame, input.State{Choice: 1}))
	assert.Equal(t, PhaseRunning, s.Phase)
}

func TestUpgradeEffects(t *testing.T) {
	s := runningState(t, quietCfg())

	baseSpeed := s.Player.Speed
	baseCooldown := s.Player.FireCooldown

	s.Player.Lives = 3
	s.applyUpgrade(UpgradeExtraLife)
	assert.Equal(t, 4, s.Player.Lives)

	s.applyUpgrade(UpgradeExtraProjectile)
	assert.Equal(t, 2, s.Player.ProjectileCount)

	s.applyUpgrade(UpgradeFasterFire)
	assert.InDelta(t, baseCooldown*0.8, s.Player.FireCooldown, 1e-9)

	s.applyUpgrade(UpgradeMoveSpeed)
	assert.InDelta(t, baseSpeed*1.2, s.Player.Speed, 1e-9)
}

func TestGameOverAddsLifeBonusOnce(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Player.Lives = 3
	s.Score = 40

	s.finishGame()
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 40+3*s.Cfg.LifeBonus, s.Score)

	// A second qualifying hit in the same frame changes nothing.
	s.finishGame()
	assert.Equal(t, 40+3*s.Cfg.LifeBonus, s.Score)
	assert.Equal(t, PhaseGameOver, s.Phase)
}

func TestDoubleHitSameFrameEndsGameOnce(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Player.Lives = 1
	px, py := s.Player.Center()

	s.Enemies = append(s.Enemies,
		&entity.Enemy{X: px, Y: py, Size: 4},
		&entity.Enemy{X: px, Y: py, Size: 4},
	)

	s.resolveCollisions()

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Zero(t, s.Player.Lives)
	// Only the first enemy was consumed; the check loop stopped at game over.
	assert.Len(t, s.Enemies, 1)
}

func TestHitGrantsTimedInvincibility(t *testing.T) {
	cfg := quietCfg()
	s := runningState(t, cfg)
	s.Player.Lives = 3

	s.hitPlayer()
	assert.Equal(t, 2, s.Player.Lives)
	assert.True(t, s.Player.Invincible)
	assert.True(t, s.Shake)

	require.NoError(t, s.Step(time.Duration(cfg.ShakeSeconds*float64(time.Second)), input.State{}))
	assert.False(t, s.Shake)
	assert.True(t, s.Player.Invincible)

	require.NoError(t, s.Step(time.Duration(cfg.InvincibilitySeconds*float64(time.Second)), input.State{}))
	assert.False(t, s.Player.Invincible)
}

func TestImmunePlayerIgnoresEnemies(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Player.Lives = 3
	s.Player.Invincible = true
	px, py := s.Player.Center()
	s.Enemies = append(s.Enemies, &entity.Enemy{X: px, Y: py, Size: 4})

	s.resolveCollisions()

	assert.Equal(t, 3, s.Player.Lives)
	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Len(t, s.Enemies, 1)
}

func TestRestartResetsEverything(t *testing.T) {
	cfg := quietCfg()
	cfg.SpawnInterval = 100
	s := runningState(t, cfg)

	s.Score = 500
	s.Defeated = 15
	s.UpgradeThreshold = 40
	s.SpawnInterval = 30
	s.Enemies = append(s.Enemies, &entity.Enemy{X: 10, Y: 10, Size: 4})
	s.Player.Lives = 2
	s.hitPlayer()
	s.finishGame()
	require.Equal(t, PhaseGameOver, s.Phase)

	require.NoError(t, s.Step(frame, input.State{Enter: true}))

	assert.Equal(t, PhaseCountdown, s.Phase)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Defeated)
	assert.Equal(t, cfg.UpgradeThreshold, s.UpgradeThreshold)
	assert.Equal(t, cfg.SpawnInterval, s.SpawnInterval)
	assert.Equal(t, cfg.InitialLives, s.Player.Lives)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Projectiles)
	assert.False(t, s.Player.Invincible)
	// Only the fresh countdown timer remains; stale expiries were cancelled.
	assert.Equal(t, 1, s.timers.Pending())

	// Restarting again from any state yields the same fresh values.
	s.Restart()
	assert.Equal(t, PhaseCountdown, s.Phase)
	assert.Zero(t, s.Score)
	assert.Equal(t, 1, s.timers.Pending())
}

func TestStaleInvincibilityTimerCannotTouchNewRun(t *testing.T) {
	cfg := quietCfg()
	s := runningState(t, cfg)
	s.Player.Lives = 3
	s.hitPlayer()
	require.True(t, s.Player.Invincible)

	s.Restart()
	require.NoError(t, s.Step(time.Duration(cfg.CountdownSeconds*float64(time.Second)), input.State{}))
	require.Equal(t, PhaseRunning, s.Phase)

	// The old expiry would have cleared Invincible; prove it is gone by
	// setting the flag and advancing past the old deadline.
	s.Player.Invincible = true
	require.NoError(t, s.Step(time.Duration(cfg.InvincibilitySeconds*float64(time.Second)), input.State{}))
	assert.True(t, s.Player.Invincible)
}

func TestAimFallsBackToNearestEnemy(t *testing.T) {
	s := runningState(t, quietCfg())
	s.Enemies = append(s.Enemies,
		&entity.Enemy{X: 150, Y: 50, Size: 4},
		&entity.Enemy{X: s.Player.X + 20, Y: s.Player.Y, Size: 4},
	)

	require.NoError(t, s.Step(frame, input.State{Fire: true}))

	require.Len(t, s.Projectiles, 1)
	assert.InDelta(t, 0.0, s.Projectiles[0].Angle, 1e-6)
}

func TestRunnerFatalBoundary(t *testing.T) {
	cfg := config.Runner()
	cfg.CoinInterval = 0
	cfg.ObstacleInterval = 0
	cfg.CountdownSeconds = 1
	s := runningState(t, cfg)

	s.Player.Y = cfg.Height
	require.NoError(t, s.Step(frame, input.State{}))

	assert.Equal(t, PhaseGameOver, s.Phase)
}

func TestRunnerDistanceAccrues(t *testing.T) {
	cfg := config.Runner()
	cfg.CoinInterval = 0
	cfg.ObstacleInterval = 0
	cfg.CountdownSeconds = 1
	cfg.FatalBoundary = false
	s := runningState(t, cfg)

	require.NoError(t, s.Step(frame, input.State{}))
	assert.InDelta(t, cfg.ScrollSpeed, s.Distance, 1e-4)
}

func TestCoinCollection(t *testing.T) {
	cfg := config.Runner()
	cfg.CoinInterval = 0
	cfg.ObstacleInterval = 0
	cfg.CountdownSeconds = 1
	s := runningState(t, cfg)

	px, py := s.Player.Center()
	s.Coins = append(s.Coins, &entity.Coin{X: px, Y: py, Size: 3})

	s.resolveCollisions()

	assert.Equal(t, cfg.CoinScore, s.Score)
	assert.Empty(t, s.Coins)
	assert.Equal(t, cfg.InitialLives, s.Player.Lives)
}

func TestObstacleDamages(t *testing.T) {
	cfg := config.Runner()
	cfg.CoinInterval = 0
	cfg.ObstacleInterval = 0
	cfg.CountdownSeconds = 1
	cfg.InitialLives = 2
	s := runningState(t, cfg)

	px, py := s.Player.Center()
	s.Obstacles = append(s.Obstacles, &entity.Obstacle{X: px, Y: py, Size: 6})

	s.resolveCollisions()

	assert.Equal(t, 1, s.Player.Lives)
	assert.True(t, s.Player.Invincible)
	assert.Empty(t, s.Obstacles)
}
