package config

// Tuning centralizes all tunable simulation parameters. The shooter and
// runner game variants are presets over the same parameter set; a spawner
// with a non-positive interval is disabled.
//
// All speeds are in logical units per frame at the 60fps baseline. Durations
// are in seconds, spawn intervals in frames.
type Tuning struct {
	// Play field (logical units; rendering scales to the output surface).
	Width  float64
	Height float64

	CountdownSeconds float64

	// Player
	InitialLives         int
	PlayerSpeed          float64
	PlayerSize           float64 // diameter of the approximate collision circle
	InvincibilitySeconds float64
	ShakeSeconds         float64

	// Roll/dash ability. RollDistance is consumed at RollSpeed per frame;
	// the player is immune while any distance remains.
	RollDistance        float64
	RollSpeed           float64
	RollCooldownSeconds float64
	TrailFade           float64 // opacity decrement per frame

	// Shooting
	ProjectileSpeed     float64
	ProjectileSize      float64
	ProjectileSpread    float64 // radians between projectiles when firing several
	FireCooldownSeconds float64

	// Enemy spawner. The interval shrinks by SpawnDecay each trigger, never
	// below SpawnFloor, and only resets on restart.
	SpawnInterval float64
	SpawnDecay    float64
	SpawnFloor    float64
	EnemyMinSpeed float64
	EnemyMaxSpeed float64
	EnemySize     float64

	// Progression
	UpgradeThreshold int // defeated enemies before the first upgrade pause
	ScorePerKill     int
	LifeBonus        int // score bonus per remaining life at game over

	// Runner variant
	CoinInterval     float64
	CoinDecay        float64
	CoinFloor        float64
	CoinSize         float64
	CoinScore        int
	ObstacleInterval float64
	ObstacleDecay    float64
	ObstacleFloor    float64
	ObstacleSize     float64
	ScrollSpeed      float64
	FatalBoundary    bool // touching the bottom edge ends the run
}

// Shooter returns the tuning for the top-down survival shooter.
func Shooter() Tuning {
	return Tuning{
		Width:  160,
		Height: 100,

		CountdownSeconds: 3,

		InitialLives:         3,
		PlayerSpeed:          1.6,
		PlayerSize:           5,
		InvincibilitySeconds: 2,
		ShakeSeconds:         0.3,

		RollDistance:        25,
		RollSpeed:           4,
		RollCooldownSeconds: 3,
		TrailFade:           0.08,

		ProjectileSpeed:     3,
		ProjectileSize:      2,
		ProjectileSpread:    0.18,
		FireCooldownSeconds: 0.25,

		SpawnInterval: 120,
		SpawnDecay:    0.95,
		SpawnFloor:    20,
		EnemyMinSpeed: 0.4,
		EnemyMaxSpeed: 1.1,
		EnemySize:     5,

		UpgradeThreshold: 10,
		ScorePerKill:     10,
		LifeBonus:        50,
	}
}

// Runner returns the tuning for the side-scrolling runner variant. Enemies
// are disabled; coins and obstacles scroll in from the right instead.
func Runner() Tuning {
	return Tuning{
		Width:  160,
		Height: 100,

		CountdownSeconds: 3,

		InitialLives:         1,
		PlayerSpeed:          1.8,
		PlayerSize:           5,
		InvincibilitySeconds: 1.5,
		ShakeSeconds:         0.3,

		CoinInterval: 90,
		CoinDecay:    0.97,
		CoinFloor:    30,
		CoinSize:     3,
		CoinScore:    5,

		ObstacleInterval: 150,
		ObstacleDecay:    0.95,
		ObstacleFloor:    40,
		ObstacleSize:     6,

		ScrollSpeed:   1.2,
		FatalBoundary: true,
	}
}
