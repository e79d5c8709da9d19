package leaderboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxa-club/luxa/internal/leaderboard"
)

func TestUpsertScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/scores", r.URL.Path)
		require.Equal(t, "resolution=merge-duplicates,return=representation", r.Header.Get("Prefer"))
		require.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		var entry leaderboard.Entry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
		require.Equal(t, 320, entry.TotalScore)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]leaderboard.Entry{entry})
	}))
	defer srv.Close()

	client := leaderboard.NewClient(srv.URL, "anon-key")
	row, err := client.UpsertScore(context.Background(), "user-token", leaderboard.Entry{
		UserID:     "user-1",
		Username:   "neon_rat",
		TotalScore: 320,
	})
	require.NoError(t, err)
	assert.Equal(t, 320, row.TotalScore)
}

func TestUpsertScoreFailureReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := leaderboard.NewClient(srv.URL, "anon-key")
	_, err := client.UpsertScore(context.Background(), "user-token", leaderboard.Entry{
		Username:   "neon_rat",
		TotalScore: 100,
	})
	assert.ErrorIs(t, err, leaderboard.ErrUnavailable)
}

func TestUpsertScoreUnreachableHost(t *testing.T) {
	// A closed server yields a transport error, not a panic.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := leaderboard.NewClient(srv.URL, "anon-key")
	_, err := client.UpsertScore(context.Background(), "", leaderboard.Entry{Username: "x", TotalScore: 1})
	assert.ErrorIs(t, err, leaderboard.ErrUnavailable)
}

func TestTop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/scores", r.URL.Path)
		require.Equal(t, "username,total_score", r.URL.Query().Get("select"))
		require.Equal(t, "total_score.desc", r.URL.Query().Get("order"))
		require.Equal(t, "50", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode([]leaderboard.Entry{
			{Username: "neon_rat", TotalScore: 900},
			{Username: "cool_cat", TotalScore: 450},
		})
	}))
	defer srv.Close()

	client := leaderboard.NewClient(srv.URL, "anon-key")
	entries, err := client.Top(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "neon_rat", entries[0].Username)
	assert.Equal(t, 900, entries[0].TotalScore)
}

func TestTopFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := leaderboard.NewClient(srv.URL, "anon-key")
	_, err := client.Top(context.Background())
	assert.ErrorIs(t, err, leaderboard.ErrUnavailable)
}
