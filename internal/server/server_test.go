package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MuForge_Go/internal/combat"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/game"
	"github.com/osse101/MuForge_Go/internal/gamedata"
	"github.com/osse101/MuForge_Go/internal/handler"
	"github.com/osse101/MuForge_Go/internal/loot"
	"github.com/osse101/MuForge_Go/internal/session"
)

type discardPublisher struct{}

func (discardPublisher) PublishWithRetry(context.Context, event.Event) {}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	handler.InitValidator()

	tables := gamedata.Default()
	econ := economy.NewService(tables)
	lootSvc := loot.NewService(tables, econ, loot.Options{})
	combatSvc := combat.NewService(tables, econ, lootSvc, combat.Options{})
	gameSvc := game.NewService(session.NewMemoryStore(), econ, lootSvc, combatSvc, discardPublisher{}, game.Options{Seed: 42})

	return NewServer(Options{
		Port:               0,
		Version:            "test",
		RateLimitPerWindow: 1000,
		MaxRequestBytes:    1 << 20,
	}, gameSvc)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_SessionFlow(t *testing.T) {
	// ARRANGE
	srv := newTestServer(t)
	h := srv.Handler()

	// ACT
	rec := do(t, h, http.MethodPost, "/start", "")

	// ASSERT
	require.Equal(t, http.StatusCreated, rec.Code)
	var started handler.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))
	require.NotEmpty(t, started.SessionID)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))

	rec = do(t, h, http.MethodGet, "/state?session_id="+started.SessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var state game.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, started.SessionID, state.SessionID)
	assert.Equal(t, 0, state.Player.Credits)

	rec = do(t, h, http.MethodPost, "/shop/buy",
		`{"session_id":"`+started.SessionID+`","item_name":"Medpack"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not enough credits.")

	rec = do(t, h, http.MethodGet, "/shop/prices", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownSession(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/state?session_id=missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodAndPathMismatch(t *testing.T) {
	h := newTestServer(t).Handler()

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/start", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/nope", "").Code)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	h := newTestServer(t).Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/ping", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/metrics", "").Code)

	rec := do(t, h, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test")
}

func TestServer_StopMarksNotReady(t *testing.T) {
	// ARRANGE
	srv := newTestServer(t)
	require.NoError(t, srv.CheckHealth(context.Background()))

	// ACT
	require.NoError(t, srv.Stop(context.Background()))

	// ASSERT
	assert.Error(t, srv.CheckHealth(context.Background()))
	assert.Equal(t, http.StatusServiceUnavailable, do(t, srv.Handler(), http.MethodGet, "/readyz", "").Code)
}
