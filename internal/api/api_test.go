package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ClubRoster/internal/api"
	"ClubRoster/internal/service"
	"ClubRoster/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	log := testutil.NewLogger()
	r := gin.New()
	r.Use(api.RequestLogger(log))
	api.RegisterRoutes(r, service.NewServices(db, nil, log), db, log)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func playerBody(jersey int) map[string]interface{} {
	return map[string]interface{}{
		"full_name":     "Juan Rodriguez",
		"jersey_number": jersey,
		"birth_date":    "1998-07-22",
		"nationality":   "Colombia",
		"height_cm":     178,
		"weight_kg":     72.5,
		"dominant_foot": "LEFT",
		"position":      "WINGER",
		"market_value":  1200000,
		"join_year":     2021,
	}
}

func matchBody(goalsFor, goalsAgainst int) map[string]interface{} {
	return map[string]interface{}{
		"opponent":      "Millonarios",
		"match_date":    "2024-03-02",
		"goals_for":     goalsFor,
		"goals_against": goalsAgainst,
		"is_home":       false,
	}
}

func TestGreetingsAndHealth(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ClubRoster data"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, r, http.MethodGet, "/hello/Ana", nil)
	assert.JSONEq(t, `{"message":"Welcome to ClubRoster Ana"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestPlayerEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/players", playerBody(7))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]interface{}
	decode(t, w, &created)
	assert.Equal(t, "ACTIVE", created["status"])
	assert.EqualValues(t, 1, created["id"])

	w = do(t, r, http.MethodPost, "/api/players", playerBody(7))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "jersey number 7 is already in use")

	bad := playerBody(8)
	bad["height_cm"] = 300
	w = do(t, r, http.MethodPost, "/api/players", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/api/players", `{"full_name":`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodGet, "/api/players/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/players/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"player not found"}`, w.Body.String())
	w = do(t, r, http.MethodGet, "/api/players/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPatch, "/api/players/1", map[string]interface{}{"status": "INJURED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated map[string]interface{}
	decode(t, w, &updated)
	assert.Equal(t, "INJURED", updated["status"])
	assert.Equal(t, "Juan Rodriguez", updated["full_name"])

	w = do(t, r, http.MethodGet, "/api/players?status=INJURED", nil)
	var injured []map[string]interface{}
	decode(t, w, &injured)
	assert.Len(t, injured, 1)
	w = do(t, r, http.MethodGet, "/api/players?status=RETIRED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"unknown player status \"RETIRED\""}`, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/players/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/players/1", nil)
	var deleted map[string]interface{}
	decode(t, w, &deleted)
	assert.Equal(t, "INACTIVE", deleted["status"])
}

func TestMatchEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/matches", matchBody(3, 1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var m map[string]interface{}
	decode(t, w, &m)
	assert.Equal(t, "WIN", m["result"])
	assert.Equal(t, false, m["is_home"])

	w = do(t, r, http.MethodPost, "/api/matches", matchBody(2, 2))
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/matches?result=ABANDONED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/matches?result=DRAW", nil)
	var draws []map[string]interface{}
	decode(t, w, &draws)
	assert.Len(t, draws, 1)

	w = do(t, r, http.MethodGet, "/api/matches/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary map[string]interface{}
	decode(t, w, &summary)
	assert.EqualValues(t, 2, summary["played"])
	assert.EqualValues(t, 1, summary["wins"])
	assert.EqualValues(t, 2, summary["goal_difference"])

	w = do(t, r, http.MethodGet, "/api/matches/1/statistics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/api/matches/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/matches/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, r, http.MethodDelete, "/api/matches/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatisticEndpoints(t *testing.T) {
	r := newRouter(t)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/players", playerBody(4)).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/matches", matchBody(0, 1)).Code)

	line := map[string]interface{}{"player_id": 1, "match_id": 1, "minutes_played": 90, "red_cards": 1}
	w := do(t, r, http.MethodPost, "/api/statistics", line)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/players/1", nil)
	var p map[string]interface{}
	decode(t, w, &p)
	assert.Equal(t, "SUSPENDED", p["status"])

	w = do(t, r, http.MethodPost, "/api/statistics", line)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	w = do(t, r, http.MethodPost, "/api/statistics", map[string]interface{}{"player_id": 1, "match_id": 9})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/statistics?player_id=1&match_id=1", nil)
	var list []map[string]interface{}
	decode(t, w, &list)
	assert.Len(t, list, 1)
	w = do(t, r, http.MethodGet, "/api/statistics?player_id=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/players/1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Statistics []map[string]interface{} `json:"statistics"`
		Totals     map[string]interface{}   `json:"totals"`
	}
	decode(t, w, &history)
	assert.Len(t, history.Statistics, 1)
	assert.EqualValues(t, 1, history.Totals["red_cards"])

	w = do(t, r, http.MethodGet, "/api/players/1/totals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"minutes":90`)

	w = do(t, r, http.MethodGet, "/api/statistics/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodDelete, "/api/statistics/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/api/statistics/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
