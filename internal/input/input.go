// Package input tracks held keys and the pointer position for the simulation.
package input

import (
	"sync"
	"time"
)

// Key identifies a discrete game input.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyRoll
	KeyEnter
	KeyEscape
	KeyQuit
	keyCount
)

// keyHoldDuration is how long a key is considered held after its last press.
// Terminal streams only deliver presses, so key repeat keeps held keys alive.
const keyHoldDuration = 120 * time.Millisecond

// State is an immutable per-frame view of the tracker.
type State struct {
	Up, Down, Left, Right bool
	Fire, Roll            bool
	Enter, Escape, Quit   bool

	// Choice is the last pressed digit, or -1.
	Choice int

	// Pointer position in simulation coordinates. Valid is false until the
	// pointer has been seen at least once.
	PointerX, PointerY float64
	PointerValid       bool
}

// Tracker records currently-held keys and the latest pointer position.
// Presses may arrive from a reader goroutine while the simulation loop takes
// snapshots, so internal state is guarded by a mutex. Unrecognized input is
// ignored.
type Tracker struct {
	mu sync.Mutex

	lastPress [keyCount]time.Time // stream mode: press timestamps
	held      [keyCount]bool      // network mode: explicit hold state

	choice     int
	choiceTime time.Time

	pointerX, pointerY float64
	pointerValid       bool

	// Display-to-simulation scaling for pointer translation.
	scaleX, scaleY float64
}

// NewTracker creates a tracker with 1:1 pointer scaling.
func NewTracker() *Tracker {
	return &Tracker{choice: -1, scaleX: 1, scaleY: 1}
}

// Press records a momentary key press (stream mode). The key reads as held
// for keyHoldDuration afterwards.
func (t *Tracker) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	t.mu.Lock()
	t.lastPress[k] = time.Now()
	t.mu.Unlock()
}

// SetHeld records an explicit key-down/key-up transition (network mode).
func (t *Tracker) SetHeld(k Key, held bool) {
	if k < 0 || k >= keyCount {
		return
	}
	t.mu.Lock()
	t.held[k] = held
	t.mu.Unlock()
}

// PressChoice records a digit press used for menu selection.
func (t *Tracker) PressChoice(n int) {
	if n < 0 || n > 9 {
		return
	}
	t.mu.Lock()
	t.choice = n
	t.choiceTime = time.Now()
	t.mu.Unlock()
}

// SetViewport configures the display-to-simulation pointer mapping: a pointer
// event at (displayW, displayH) maps to the far corner of a simW x simH field.
func (t *Tracker) SetViewport(displayW, displayH, simW, simH float64) {
	if displayW <= 0 || displayH <= 0 {
		return
	}
	t.mu.Lock()
	t.scaleX = simW / displayW
	t.scaleY = simH / displayH
	t.mu.Unlock()
}

// SetPointer records a pointer position in display coordinates, translating
// it into simulation space.
func (t *Tracker) SetPointer(displayX, displayY float64) {
	t.mu.Lock()
	t.pointerX = displayX * t.scaleX
	t.pointerY = displayY * t.scaleY
	t.pointerValid = true
	t.mu.Unlock()
}

// Reset clears all key and pointer state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.lastPress = [keyCount]time.Time{}
	t.held = [keyCount]bool{}
	t.choice = -1
	t.pointerValid = false
	t.mu.Unlock()
}

// Snapshot returns the input state as of now.
func (t *Tracker) Snapshot(now time.Time) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	isHeld := func(k Key) bool {
		return t.held[k] || now.Sub(t.lastPress[k]) < keyHoldDuration
	}

	s := State{
		Up:           isHeld(KeyUp),
		Down:         isHeld(KeyDown),
		Left:         isHeld(KeyLeft),
		Right:        isHeld(KeyRight),
		Fire:         isHeld(KeyFire),
		Roll:         isHeld(KeyRoll),
		Enter:        isHeld(KeyEnter),
		Escape:       isHeld(KeyEscape),
		Quit:         isHeld(KeyQuit),
		Choice:       -1,
		PointerX:     t.pointerX,
		PointerY:     t.pointerY,
		PointerValid: t.pointerValid,
	}
	if now.Sub(t.choiceTime) < keyHoldDuration {
		s.Choice = t.choice
	}
	return s
}
