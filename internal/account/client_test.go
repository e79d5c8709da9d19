package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxa-club/luxa/internal/account"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, account.ValidateEmail("player@luxa.club"))
	assert.ErrorIs(t, account.ValidateEmail("not-an-email"), account.ErrInvalidEmail)
	assert.ErrorIs(t, account.ValidateEmail("@luxa.club"), account.ErrInvalidEmail)
	assert.ErrorIs(t, account.ValidateEmail("player@"), account.ErrInvalidEmail)
	assert.ErrorIs(t, account.ValidateEmail("player@club"), account.ErrInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, account.ValidatePassword("longenough"))
	assert.ErrorIs(t, account.ValidatePassword("short"), account.ErrPasswordTooWeak)
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, account.ValidateUsername("neon_rat_9"))
	assert.ErrorIs(t, account.ValidateUsername("ab"), account.ErrInvalidUsername)
	assert.ErrorIs(t, account.ValidateUsername("this_name_is_far_too_long"), account.ErrInvalidUsername)
	assert.ErrorIs(t, account.ValidateUsername("bad name"), account.ErrInvalidUsername)
}

func TestSignInSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "test-key", r.Header.Get("apikey"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "player@luxa.club", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-123",
			"user": map[string]any{
				"id":            "user-1",
				"email":         "player@luxa.club",
				"user_metadata": map[string]any{"username": "neon_rat"},
			},
		})
	}))
	defer srv.Close()

	client := account.NewClient(srv.URL, "test-key")
	sess, err := client.SignIn(context.Background(), account.Credentials{
		Email:    "player@luxa.club",
		Password: "longenough",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-123", sess.Token)
	assert.Equal(t, "user-1", sess.User.ID)
	assert.Equal(t, "neon_rat", sess.User.Username)
}

func TestSignInRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))
	defer srv.Close()

	client := account.NewClient(srv.URL, "test-key")
	_, err := client.SignIn(context.Background(), account.Credentials{
		Email:    "player@luxa.club",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestSignInValidatesBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := account.NewClient(srv.URL, "test-key")
	_, err := client.SignIn(context.Background(), account.Credentials{
		Email:    "nope",
		Password: "longenough",
	})

	assert.ErrorIs(t, err, account.ErrInvalidEmail)
	assert.False(t, called)
}

func TestSignUpSendsUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/signup", r.URL.Path)

		var body struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "neon_rat", body.Data["username"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-456",
			"user": map[string]any{
				"id":            "user-2",
				"email":         "player@luxa.club",
				"user_metadata": map[string]any{"username": "neon_rat"},
			},
		})
	}))
	defer srv.Close()

	client := account.NewClient(srv.URL, "test-key")
	sess, err := client.SignUp(context.Background(), account.Credentials{
		Email:    "player@luxa.club",
		Password: "longenough",
		Username: "neon_rat",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-456", sess.Token)
}

func TestGetSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "user-1",
			"email":         "player@luxa.club",
			"user_metadata": map[string]any{"username": "neon_rat"},
		})
	}))
	defer srv.Close()

	client := account.NewClient(srv.URL, "test-key")

	user, err := client.GetSession(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "neon_rat", user.Username)

	_, err = client.GetSession(context.Background(), "expired-token")
	assert.ErrorIs(t, err, account.ErrNoSession)

	_, err = client.GetSession(context.Background(), "")
	assert.ErrorIs(t, err, account.ErrNoSession)
}

func TestSignOutToleratesExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := account.NewClient(srv.URL, "test-key")
	assert.NoError(t, client.SignOut(context.Background(), "expired-token"))
}
