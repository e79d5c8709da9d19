package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/game"
	"github.com/luxa-club/luxa/internal/input"
	"github.com/luxa-club/luxa/internal/leaderboard"
)

const (
	wsReadLimit     = 1 << 16
	wsReadTimeout   = 60 * time.Second
	wsWriteTimeout  = 10 * time.Second
	wsPingInterval  = 25 * time.Second
	snapshotsPerSec = 30
)

var upgrader = websocket.Upgrader{
	// Same-origin pages only; the site serves its own game clients.
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// clientMessage is one input event from the browser.
type clientMessage struct {
	Type  string  `json:"type"` // "key", "pointer", "choose", "restart"
	Key   string  `json:"key,omitempty"`
	Held  bool    `json:"held,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Index int     `json:"index,omitempty"`

	// Viewport size, sent once and on resize, for pointer scaling.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// serverMessage wraps a frame snapshot or a game-over notice.
type serverMessage struct {
	Type     string         `json:"type"` // "state", "gameOver"
	State    *game.Snapshot `json:"state,omitempty"`
	Score    int            `json:"score,omitempty"`
	Recorded bool           `json:"recorded,omitempty"`
}

var keyNames = map[string]input.Key{
	"up":     input.KeyUp,
	"down":   input.KeyDown,
	"left":   input.KeyLeft,
	"right":  input.KeyRight,
	"fire":   input.KeyFire,
	"roll":   input.KeyRoll,
	"enter":  input.KeyEnter,
	"escape": input.KeyEscape,
}

// handleWS upgrades the connection and drives one game session over it. The
// simulation runs in its own goroutine; this handler owns the writer, a
// reader goroutine feeds the tracker, and the session's game-over events
// trigger a leaderboard upsert under the signed-in user.
func (s *Server) handleWS(cfg config.Tuning) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, token := requestUser(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Warn("websocket upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(wsReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
			return nil
		})

		sess := game.NewSession(cfg)
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go sess.Run(ctx)

		s.log.Info("play session opened", "session", sess.ID, "user", user.Username)
		defer s.log.Info("play session closed", "session", sess.ID)

		// Reader: browser input events into the tracker.
		go func() {
			defer cancel()
			tracker := sess.Tracker()
			for {
				var msg clientMessage
				if err := conn.ReadJSON(&msg); err != nil {
					return
				}
				switch msg.Type {
				case "key":
					if k, ok := keyNames[msg.Key]; ok {
						tracker.SetHeld(k, msg.Held)
					}
				case "pointer":
					if msg.Width > 0 && msg.Height > 0 {
						tracker.SetViewport(msg.Width, msg.Height, cfg.Width, cfg.Height)
					}
					tracker.SetPointer(msg.X, msg.Y)
				case "choose":
					sess.Choose(msg.Index)
				case "restart":
					sess.Restart()
				}
			}
		}()

		ticker := time.NewTicker(time.Second / snapshotsPerSec)
		defer ticker.Stop()
		pings := time.NewTicker(wsPingInterval)
		defer pings.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sess.Events():
				if !ok {
					return
				}
				if ev.Type != game.EventGameOver {
					continue
				}
				recorded := s.submitScore(r, token, user.ID, user.Username, ev.Score)
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteJSON(serverMessage{Type: "gameOver", Score: ev.Score, Recorded: recorded}); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteJSON(serverMessage{Type: "state", State: sess.Latest()}); err != nil {
					return
				}
			case <-pings.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}

// submitScore pushes a finished run to the hosted leaderboard. Failures are
// logged and reported as unrecorded; they never tear down the session.
func (s *Server) submitScore(r *http.Request, token, userID, username string, score int) bool {
	ctx, cancel := context.WithTimeout(r.Context(), boardTimeout)
	defer cancel()

	_, err := s.board.UpsertScore(ctx, token, leaderboard.Entry{
		UserID:     userID,
		Username:   username,
		TotalScore: score,
	})
	if err != nil {
		s.log.Warn("score upsert failed", "user", username, "err", err)
		return false
	}
	return true
}
