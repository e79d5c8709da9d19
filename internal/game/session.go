package game

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/input"
)

// EventType identifies a session event.
type EventType int

const (
	// EventGameOver is emitted once each time a run ends, carrying the
	// final score.
	EventGameOver EventType = iota
)

// Event is delivered to the session's consumer.
type Event struct {
	Type  EventType
	Score int
}

// Session drives one simulation for one remote consumer (a websocket
// client). Input arrives through the tracker from the network reader
// goroutine; the loop goroutine owns all simulation state and publishes
// read-only snapshots atomically after every frame.
type Session struct {
	ID uuid.UUID

	state    *State
	tracker  *input.Tracker
	snapshot atomic.Pointer[Snapshot]
	events   chan Event
}

// NewSession creates a session in the countdown phase.
func NewSession(cfg config.Tuning) *Session {
	s := &Session{
		ID:      uuid.New(),
		state:   New(cfg, time.Now().UnixNano()),
		tracker: input.NewTracker(),
		events:  make(chan Event, 4),
	}
	s.tracker.SetViewport(cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	s.snapshot.Store(s.state.Snapshot())
	return s
}

// Tracker returns the input tracker. Safe for use from a reader goroutine.
func (s *Session) Tracker() *input.Tracker {
	return s.tracker
}

// Latest returns the most recently published snapshot.
func (s *Session) Latest() *Snapshot {
	return s.snapshot.Load()
}

// Events returns the session event stream. Closed when Run returns.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Run steps the simulation at the target frame rate until the context is
// cancelled. All timers are torn down on exit so nothing can mutate a closed
// session.
func (s *Session) Run(ctx context.Context) {
	defer func() {
		s.state.Close()
		close(s.events)
	}()

	lastTime := time.Now()
	wasOver := false

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		in := s.tracker.Snapshot(frameStart)
		if err := s.state.Step(delta, in); err != nil {
			return
		}

		isOver := s.state.Phase == PhaseGameOver
		if isOver && !wasOver {
			select {
			case s.events <- Event{Type: EventGameOver, Score: s.state.Score}:
			default:
			}
		}
		wasOver = isOver

		s.snapshot.Store(s.state.Snapshot())

		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}
}

// Choose applies an upgrade selection from the network consumer. Delivered
// through the tracker so the loop goroutine applies it on its own frame.
func (s *Session) Choose(index int) {
	s.tracker.PressChoice(index + 1)
}

// Restart requests a restart after game over.
func (s *Session) Restart() {
	s.tracker.Press(input.KeyEnter)
}
