package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/rota-backend/config"
	"github.com/c14220110/rota-backend/internal/rota/services"
	"github.com/c14220110/rota-backend/pkg/utils"
	"github.com/c14220110/rota-backend/ws"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	e     *echo.Echo
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	hash, err := utils.HashPassword("rahasia")
	require.NoError(t, err)

	cfg := &config.Config{
		RotaDays:            31,
		JWTSecret:           "routes-secret",
		JWTTTL:              time.Hour,
		ManagerUsername:     "manager",
		ManagerPasswordHash: hash,
	}
	hub := ws.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	svc := services.NewRotaService(cfg.RotaDays, cfg.AllowDoubleBooking, hub)
	require.NoError(t, services.SeedDemo(svc))
	auth := services.NewAuthService(cfg.ManagerUsername, cfg.ManagerPasswordHash, []byte(cfg.JWTSecret), cfg.JWTTTL)

	e := echo.New()
	Init(e, cfg, svc, auth, hub)
	ts := &testServer{e: e}

	rec := ts.do(t, http.MethodPost, "/api/rota/login", `{"username":"manager","password":"rahasia"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.NotEmpty(t, data.Token)
	ts.token = data.Token
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_LoginRejectsBadPassword(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/rota/login", `{"username":"manager","password":"x"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_RotaReport(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/rota?format=text", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Day 0 // A: 小林, B: リチャード, DayOff: 前井\n", rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/rota", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var data struct {
		Report string              `json:"report"`
		Days   []services.DaySlots `json:"days"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.Len(t, data.Days, 1)
	assert.Equal(t, "小林", data.Days[0].Slots["A"])
	assert.Equal(t, "Day 0 // A: 小林, B: リチャード, DayOff: 前井\n", data.Report)
}

func TestRoutes_Assign(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":1,"shift":"C","employee":"前川"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":1,"shift":"C","employee":"前川"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":0,"shift":"A","employee":"前井"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "already assigned to 小林")

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":1,"shift":"Z","employee":"前川"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":1,"shift":"A","employee":"ghost"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"shift":"A","employee":"前川"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":40,"shift":"A","employee":"前川"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/rota?format=text", "", false)
	assert.Equal(t, "Day 0 // A: 小林, B: リチャード, DayOff: 前井\nDay 1 // C: 前川\n", rec.Body.String())
}

func TestRoutes_Employees(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/rota/employees", `{"name":"Newbie","grade":"Part Time"}`, true)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/employees", `{"name":"Newbie","grade":"Part Time"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/employees", `{"name":"x","grade":"Boss"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/rota/employees/Newbie/requests", `{"day":2,"shift":"DayOff"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/rota/assign", `{"day":3,"shift":"G","employee":"Newbie"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/rota/employees/Newbie", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var emp struct {
		Summary string `json:"summary"`
		Grade   string `json:"grade"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &emp))
	assert.Equal(t, "Newbie: None, None, None, G", emp.Summary)
	assert.Equal(t, "Part Time", emp.Grade)

	rec = ts.do(t, http.MethodGet, "/api/rota/employees/ghost", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/rota/employees", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Len(t, list, 7)
}
