package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luxa-club/luxa/internal/input"
)

func TestPressReadsHeldWithinWindow(t *testing.T) {
	tr := input.NewTracker()
	tr.Press(input.KeyLeft)

	now := time.Now()
	assert.True(t, tr.Snapshot(now).Left)

	// Well past the hold window the key reads as released.
	assert.False(t, tr.Snapshot(now.Add(time.Second)).Left)
}

func TestSetHeldPersists(t *testing.T) {
	tr := input.NewTracker()
	tr.SetHeld(input.KeyFire, true)

	later := time.Now().Add(time.Minute)
	assert.True(t, tr.Snapshot(later).Fire)

	tr.SetHeld(input.KeyFire, false)
	assert.False(t, tr.Snapshot(later).Fire)
}

func TestChoiceExpires(t *testing.T) {
	tr := input.NewTracker()
	assert.Equal(t, -1, tr.Snapshot(time.Now()).Choice)

	tr.PressChoice(2)
	now := time.Now()
	assert.Equal(t, 2, tr.Snapshot(now).Choice)
	assert.Equal(t, -1, tr.Snapshot(now.Add(time.Second)).Choice)
}

func TestPointerScaling(t *testing.T) {
	tr := input.NewTracker()
	tr.SetViewport(800, 500, 160, 100)
	tr.SetPointer(400, 250)

	s := tr.Snapshot(time.Now())
	assert.True(t, s.PointerValid)
	assert.Equal(t, 80.0, s.PointerX)
	assert.Equal(t, 50.0, s.PointerY)
}

func TestPointerInvalidUntilSeen(t *testing.T) {
	tr := input.NewTracker()
	assert.False(t, tr.Snapshot(time.Now()).PointerValid)
}

func TestReset(t *testing.T) {
	tr := input.NewTracker()
	tr.SetHeld(input.KeyUp, true)
	tr.SetPointer(10, 10)
	tr.PressChoice(1)

	tr.Reset()

	s := tr.Snapshot(time.Now())
	assert.False(t, s.Up)
	assert.False(t, s.PointerValid)
	assert.Equal(t, -1, s.Choice)
}
