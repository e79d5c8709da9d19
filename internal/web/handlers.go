package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luxa-club/luxa/internal/account"
	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/leaderboard"
)

type pageData struct {
	User   *account.User
	Best   int
	Notice string
	Error  string

	// Sign-in / sign-up form echo.
	Email    string
	Username string

	Entries []leaderboard.Entry
	Game    string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	user, _ := requestUser(r)
	s.render(w, "home.html", pageData{
		User: user,
		Best: bestScore(r),
	})
}

func (s *Server) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "sign_in.html", pageData{})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	creds := account.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	sess, err := s.auth.SignIn(r.Context(), creds)
	if err != nil {
		s.render(w, "sign_in.html", pageData{
			Email: creds.Email,
			Error: signInError(err),
		})
		return
	}

	setSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "sign_up.html", pageData{})
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	creds := account.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Username: r.FormValue("username"),
	}

	sess, err := s.auth.SignUp(r.Context(), creds)
	if err != nil {
		s.render(w, "sign_up.html", pageData{
			Email:    creds.Email,
			Username: creds.Username,
			Error:    signUpError(err),
		})
		return
	}

	setSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if err := s.auth.SignOut(r.Context(), c.Value); err != nil {
			// The local cookie is cleared regardless; the token just
			// expires on its own.
			s.log.Warn("sign-out failed", "err", err)
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, _ := requestUser(r)
	data := pageData{
		User: user,
		Best: bestScore(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), boardTimeout)
	defer cancel()

	entries, err := s.board.Top(ctx)
	if err != nil {
		s.log.Warn("leaderboard fetch failed", "err", err)
		data.Notice = "The leaderboard is taking a break. Your local best is still shown."
	} else {
		data.Entries = entries
	}
	s.render(w, "leaderboard.html", data)
}

// handlePlay serves the game page for a variant. The page connects back to
// the matching websocket endpoint.
func (s *Server) handlePlay(cfg config.Tuning) http.HandlerFunc {
	game := "survival"
	if cfg.ScrollSpeed > 0 {
		game = "runner"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := requestUser(r)
		s.render(w, "play.html", pageData{
			User: user,
			Best: bestScore(r),
			Game: game,
		})
	}
}

type scoreRequest struct {
	Score int `json:"score"`
}

type scoreResponse struct {
	Saved bool `json:"saved"`
	Best  int  `json:"best"`
}

// handleScore records a finished run. The score always updates the local
// best cookie; pushing it to the hosted leaderboard may fail, and that
// failure only downgrades the response, never errors it.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	user, token := requestUser(r)

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score < 0 {
		http.Error(w, "bad score payload", http.StatusBadRequest)
		return
	}

	best := bestScore(r)
	if req.Score > best {
		best = req.Score
		setBestScore(w, best)
	}

	resp := scoreResponse{Best: best}

	ctx, cancel := context.WithTimeout(r.Context(), boardTimeout)
	defer cancel()

	_, err := s.board.UpsertScore(ctx, token, leaderboard.Entry{
		UserID:     user.ID,
		Username:   user.Username,
		TotalScore: req.Score,
	})
	if err != nil {
		s.log.Warn("score upsert failed", "user", user.Username, "err", err)
	} else {
		resp.Saved = true
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func signInError(err error) string {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		return "Email or password is incorrect."
	case errors.Is(err, account.ErrInvalidEmail):
		return "That email address doesn't look right."
	case errors.Is(err, account.ErrPasswordTooWeak):
		return "Passwords are at least 8 characters."
	default:
		return "Sign-in is unavailable right now. Please try again."
	}
}

func signUpError(err error) string {
	switch {
	case errors.Is(err, account.ErrInvalidEmail):
		return "That email address doesn't look right."
	case errors.Is(err, account.ErrPasswordTooWeak):
		return "Passwords are at least 8 characters."
	case errors.Is(err, account.ErrInvalidUsername):
		return "Usernames are 3-16 letters, digits or underscores."
	default:
		return "Sign-up is unavailable right now. Please try again."
	}
}
