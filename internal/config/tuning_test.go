package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxa-club/luxa/internal/config"
)

func TestShooterPreset(t *testing.T) {
	cfg := config.Shooter()

	assert.Positive(t, cfg.SpawnInterval)
	assert.Equal(t, 0.95, cfg.SpawnDecay)
	assert.Positive(t, cfg.SpawnFloor)
	assert.Equal(t, 10, cfg.UpgradeThreshold)

	// Runner-only spawners stay off in the shooter.
	assert.Zero(t, cfg.CoinInterval)
	assert.Zero(t, cfg.ObstacleInterval)
	assert.False(t, cfg.FatalBoundary)
}

func TestRunnerPreset(t *testing.T) {
	cfg := config.Runner()

	// The enemy spawner is disabled; coins and obstacles take over.
	assert.Zero(t, cfg.SpawnInterval)
	assert.Positive(t, cfg.CoinInterval)
	assert.Positive(t, cfg.ObstacleInterval)
	assert.Positive(t, cfg.ScrollSpeed)
	assert.True(t, cfg.FatalBoundary)
}
