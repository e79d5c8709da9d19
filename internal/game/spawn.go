package game

import "github.com/luxa-club/luxa/internal/entity"

// stepSpawners advances every configured spawner by dt frames. Each trigger
// shrinks that spawner's interval geometrically toward its floor; intervals
// only ever shrink and reset only on restart. A spawner with a non-positive
// interval is disabled.
func (s *State) stepSpawners(dt float64) {
	if s.Cfg.SpawnInterval > 0 {
		s.sinceSpawn += dt
		for s.sinceSpawn >= s.SpawnInterval {
			s.sinceSpawn -= s.SpawnInterval
			s.Spawn(entity.NewEnemyAtEdge(s.Bounds(), s.rng,
				s.Cfg.EnemyMinSpeed, s.Cfg.EnemyMaxSpeed, s.Cfg.EnemySize))
			s.SpawnInterval = decayInterval(s.SpawnInterval, s.Cfg.SpawnDecay, s.Cfg.SpawnFloor)
		}
	}

	if s.Cfg.CoinInterval > 0 {
		s.sinceCoin += dt
		for s.sinceCoin >= s.CoinInterval {
			s.sinceCoin -= s.CoinInterval
			s.Spawn(entity.NewCoinAtEdge(s.Bounds(), s.rng, s.Cfg.CoinSize))
			s.CoinInterval = decayInterval(s.CoinInterval, s.Cfg.CoinDecay, s.Cfg.CoinFloor)
		}
	}

	if s.Cfg.ObstacleInterval > 0 {
		s.sinceObstacle += dt
		for s.sinceObstacle >= s.ObstacleInterval {
			s.sinceObstacle -= s.ObstacleInterval
			s.Spawn(entity.NewObstacleAtEdge(s.Bounds(), s.rng, s.Cfg.ObstacleSize))
			s.ObstacleInterval = decayInterval(s.ObstacleInterval, s.Cfg.ObstacleDecay, s.Cfg.ObstacleFloor)
		}
	}

	s.flushPending()
}

// decayInterval multiplies the interval by the decay factor, clamped to the
// floor when one is configured.
func decayInterval(interval, decay, floor float64) float64 {
	next := interval * decay
	if floor > 0 && next < floor {
		next = floor
	}
	return next
}
