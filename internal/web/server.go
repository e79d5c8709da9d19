// Package web serves the club site: landing page, account pages, the
// leaderboard, and the websocket play endpoints that drive browser sessions.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/luxa-club/luxa/internal/account"
	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/leaderboard"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	sessionCookie   = "luxa_session"
	bestScoreCookie = "luxa_best"

	// Cookies last as long as the provider's refresh window.
	cookieMaxAge = 7 * 24 * 60 * 60
)

// Authenticator is the auth collaborator surface the server needs.
type Authenticator interface {
	SignUp(ctx context.Context, creds account.Credentials) (*account.Session, error)
	SignIn(ctx context.Context, creds account.Credentials) (*account.Session, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (*account.User, error)
}

// Board is the leaderboard collaborator surface the server needs.
type Board interface {
	UpsertScore(ctx context.Context, token string, entry leaderboard.Entry) (*leaderboard.Entry, error)
	Top(ctx context.Context) ([]leaderboard.Entry, error)
}

// Server holds the site's handlers and collaborators.
type Server struct {
	log   *log.Logger
	auth  Authenticator
	board Board
	tmpl  *template.Template
	mux   *http.ServeMux
}

// NewServer wires routes and parses templates.
func NewServer(logger *log.Logger, auth Authenticator, board Board) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		log:   logger,
		auth:  auth,
		board: board,
		tmpl:  tmpl,
		mux:   http.NewServeMux(),
	}

	// Account pages are the only routes reachable signed out; everything
	// else sits behind the session guard.
	s.mux.HandleFunc("GET /account/sign-in", s.handleSignInPage)
	s.mux.HandleFunc("POST /account/sign-in", s.handleSignIn)
	s.mux.HandleFunc("GET /account/sign-up", s.handleSignUpPage)
	s.mux.HandleFunc("POST /account/sign-up", s.handleSignUp)
	s.mux.HandleFunc("POST /account/sign-out", s.handleSignOut)

	s.mux.HandleFunc("GET /{$}", s.requireSession(s.handleHome))
	s.mux.HandleFunc("GET /leaderboard", s.requireSession(s.handleLeaderboard))
	s.mux.HandleFunc("GET /play/survival", s.requireSession(s.handlePlay(config.Shooter())))
	s.mux.HandleFunc("GET /play/runner", s.requireSession(s.handlePlay(config.Runner())))
	s.mux.HandleFunc("GET /ws/survival", s.requireSession(s.handleWS(config.Shooter())))
	s.mux.HandleFunc("GET /ws/runner", s.requireSession(s.handleWS(config.Runner())))
	s.mux.HandleFunc("POST /score", s.requireSession(s.handleScore))

	return s, nil
}

// ServeHTTP dispatches to the route table.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// sessionUser resolves the request's session cookie to a user, or nil when
// the visitor is signed out or the provider can't confirm the token.
func (s *Server) sessionUser(r *http.Request) (*account.User, string) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil, ""
	}
	user, err := s.auth.GetSession(r.Context(), c.Value)
	if err != nil {
		if !errors.Is(err, account.ErrNoSession) {
			s.log.Warn("session lookup failed", "err", err)
		}
		return nil, ""
	}
	return user, c.Value
}

// requireSession redirects visitors without a confirmed session to sign-in.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, token := s.sessionUser(r)
		if user == nil {
			http.Redirect(w, r, "/account/sign-in", http.StatusSeeOther)
			return
		}
		next(w, r.WithContext(withUser(r.Context(), user, token)))
	}
}

type ctxKey int

const userKey ctxKey = iota

type sessionInfo struct {
	user  *account.User
	token string
}

func withUser(ctx context.Context, user *account.User, token string) context.Context {
	return context.WithValue(ctx, userKey, sessionInfo{user: user, token: token})
}

func requestUser(r *http.Request) (*account.User, string) {
	info, ok := r.Context().Value(userKey).(sessionInfo)
	if !ok {
		return nil, ""
	}
	return info.user, info.token
}

// bestScore reads the locally remembered best score from its cookie.
func bestScore(r *http.Request) int {
	c, err := r.Cookie(bestScoreCookie)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(c.Value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func setBestScore(w http.ResponseWriter, score int) {
	http.SetCookie(w, &http.Cookie{
		Name:     bestScoreCookie,
		Value:    strconv.Itoa(score),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render failed", "template", name, "err", err)
	}
}

// boardTimeout bounds leaderboard calls so a slow provider can't stall a
// page load; on timeout the page renders in degraded mode.
const boardTimeout = 5 * time.Second
