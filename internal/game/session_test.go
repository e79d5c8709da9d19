package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxa-club/luxa/internal/config"
)

func TestNewSessionStartsInCountdown(t *testing.T) {
	sess := NewSession(config.Shooter())

	assert.NotEqual(t, uuid.Nil, sess.ID)
	snap := sess.Latest()
	require.NotNil(t, snap)
	assert.Equal(t, PhaseCountdown, snap.Phase)
	assert.Equal(t, config.Shooter().CountdownSeconds, snap.Countdown)
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	sess := NewSession(config.Shooter())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sess.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session did not stop after cancel")
	}

	// The event channel closes with the loop.
	_, open := <-sess.Events()
	assert.False(t, open)
}

func TestSessionPublishesSnapshots(t *testing.T) {
	sess := NewSession(config.Shooter())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if sess.Latest().Frame > 0 || sess.Latest().Countdown < config.Shooter().CountdownSeconds {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no fresh snapshot published")
}
