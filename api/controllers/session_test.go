package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/simantaparida/featurevote/api/controllers/testing"
	"github.com/simantaparida/featurevote/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	t.Run("Happy path - session is created with features", func(t *testing.T) {
		env := setupVotingRouter(t)

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session", models.CreateSessionRequest{
			Title: "Q3 roadmap",
			Features: []models.FeatureEntry{
				{Title: "Dark mode", Description: "Theme switcher"},
				{Title: "SSO"},
			},
		}, nil)

		assert.Equal(t, http.StatusOK, res.Code, "Expected 200 from session creation")
		var session models.SessionResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &session), "Should unmarshal created session")
		assert.NotEmpty(t, session.ID, "Session should carry a shareable id")
		assert.Equal(t, string(models.StatusOpen), session.Status, "New sessions start open")
		require.Len(t, session.Features, 2, "All features should be created")
		assert.NotEmpty(t, session.Features[0].ID, "Features should carry generated ids")
		assert.Equal(t, "Dark mode", session.Features[0].Title)
	})

	t.Run("Unhappy path - missing title", func(t *testing.T) {
		env := setupVotingRouter(t)

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session", models.CreateSessionRequest{
			Features: []models.FeatureEntry{{Title: "Dark mode"}},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 for missing title")
		assert.Equal(t, "Session title is required", errorMessage(t, res))
	})

	t.Run("Unhappy path - no features", func(t *testing.T) {
		env := setupVotingRouter(t)

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session", models.CreateSessionRequest{
			Title: "Q3 roadmap",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 for empty feature list")
		assert.Equal(t, "At least one feature is required", errorMessage(t, res))
	})
}

func TestGetSession(t *testing.T) {
	t.Run("Happy path - state includes players and features", func(t *testing.T) {
		env := setupVotingRouter(t)
		sid, players, _ := playingSession(t, env, []string{"Ana", "Ben"}, []string{"Dark mode"})

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/session/"+sid, nil, nil)

		assert.Equal(t, http.StatusOK, res.Code, "Expected 200 from session state")
		var session models.SessionResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &session), "Should unmarshal session state")
		assert.Equal(t, string(models.StatusPlaying), session.Status)
		assert.Len(t, session.Players, 2, "Both joined players should appear")
		assert.Len(t, session.Features, 1)
		assert.Equal(t, players[0], session.Players[0].ID, "Players should be listed in join order")
	})

	t.Run("Unhappy path - unknown session", func(t *testing.T) {
		env := setupVotingRouter(t)

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/session/NOTEXIST", nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code, "Expected 404 for unknown session")
		assert.Equal(t, "Session not found", errorMessage(t, res))
	})
}

func TestJoinSession(t *testing.T) {
	t.Run("Happy path - player gets an id", func(t *testing.T) {
		env := setupVotingRouter(t)
		sid, _, _ := playingSession(t, env, nil, []string{"Dark mode"})

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/"+sid+"/join", models.JoinSessionRequest{Name: "Ana"}, nil)

		assert.Equal(t, http.StatusOK, res.Code, "Join should succeed while playing")
		var player models.PlayerResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &player), "Should unmarshal joined player")
		assert.NotEmpty(t, player.ID, "Player should carry a generated id")
		assert.Equal(t, "Ana", player.Name)
	})

	t.Run("Unhappy path - missing name", func(t *testing.T) {
		env := setupVotingRouter(t)
		sid, _, _ := playingSession(t, env, nil, []string{"Dark mode"})

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/"+sid+"/join", models.JoinSessionRequest{}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 for missing name")
		assert.Equal(t, "Player name is required", errorMessage(t, res))
	})

	t.Run("Unhappy path - session already at results", func(t *testing.T) {
		env := setupVotingRouter(t)
		sid, _, _ := playingSession(t, env, nil, []string{"Dark mode"})
		require.NoError(t, env.sessions.UpdateStatus(context.TODO(), sid, string(models.StatusResults)))

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/"+sid+"/join", models.JoinSessionRequest{Name: "Ana"}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 after the session closed")
		assert.Equal(t, "Session is no longer accepting players", errorMessage(t, res))
	})

	t.Run("Unhappy path - unknown session", func(t *testing.T) {
		env := setupVotingRouter(t)

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/NOTEXIST/join", models.JoinSessionRequest{Name: "Ana"}, nil)

		assert.Equal(t, http.StatusNotFound, res.Code, "Expected 404 for unknown session")
	})
}

func TestStartSession(t *testing.T) {
	t.Run("Happy path - open session starts", func(t *testing.T) {
		env := setupVotingRouter(t)

		createRes := testutils.PerformRequest(env.router, http.MethodPost, "/api/session", models.CreateSessionRequest{
			Title:    "Q3 roadmap",
			Features: []models.FeatureEntry{{Title: "Dark mode"}},
		}, nil)
		require.Equal(t, http.StatusOK, createRes.Code)
		var session models.SessionResponse
		require.NoError(t, json.Unmarshal(createRes.Body.Bytes(), &session))

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/"+session.ID+"/start", nil, nil)

		assert.Equal(t, http.StatusOK, res.Code, "Start should succeed from open")
		var started models.SessionResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &started), "Should unmarshal started session")
		assert.Equal(t, string(models.StatusPlaying), started.Status, "Status should move to playing")
	})

	t.Run("Unhappy path - starting twice", func(t *testing.T) {
		env := setupVotingRouter(t)
		sid, _, _ := playingSession(t, env, nil, []string{"Dark mode"})

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/"+sid+"/start", nil, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 when the session is already playing")
		assert.Equal(t, "Session has already started", errorMessage(t, res))
	})

	t.Run("Unhappy path - unknown session", func(t *testing.T) {
		env := setupVotingRouter(t)

		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/session/NOTEXIST/start", nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code, "Expected 404 for unknown session")
	})
}
