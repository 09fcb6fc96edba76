package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
	"github.com/hoopgrid/hoopgrid-server/internal/broadcast"
	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
	"github.com/hoopgrid/hoopgrid-server/internal/store"
)

// wireOracle matches every criterion except for the player id "airball".
type wireOracle struct{ gen int }

func (o *wireOracle) GenerateGrid(_ oracle.Difficulty, size int, _ []string) (oracle.GridCriteria, error) {
	o.gen++
	var gc oracle.GridCriteria
	for i := 0; i < size; i++ {
		gc.Rows = append(gc.Rows, oracle.Criteria{Type: oracle.CriteriaTeam, Value: fmt.Sprintf("r%d-%d", i, o.gen), Label: "Row"})
		gc.Cols = append(gc.Cols, oracle.Criteria{Type: oracle.CriteriaTeam, Value: fmt.Sprintf("c%d-%d", i, o.gen), Label: "Col"})
	}
	return gc, nil
}

func (o *wireOracle) ResolvePlayer(id, _ string) (*oracle.Player, bool) {
	switch id {
	case "swish":
		return &oracle.Player{ID: "swish", Name: "Swish"}, true
	case "airball":
		return &oracle.Player{ID: "airball", Name: "Airball"}, true
	}
	return nil, false
}

func (o *wireOracle) MatchesCriteria(p *oracle.Player, _ oracle.Criteria) bool {
	return p.ID != "airball"
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	mgr := battle.NewManager(store.NewMemory(), &wireOracle{}, broadcast.NewNop(), battle.DefaultRules(), logger)
	return New(mgr, broadcast.NewHub(logger), logger).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, stateResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp stateResponse
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	}
	return rec, resp
}

func createBattle(t *testing.T, h http.Handler) string {
	t.Helper()
	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/create", createRequest{HostName: "Alice", Difficulty: "medium"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.State)
	return resp.State.Code
}

func joinBattle(t *testing.T, h http.Handler, code string) {
	t.Helper()
	rec, _ := doJSON(t, h, http.MethodPost, "/api/battle/join", joinRequest{Code: code, Name: "Bob"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func moveBody(code, role, playerID string, row, col int) moveRequest {
	var req moveRequest
	req.Code = code
	req.Role = role
	req.Move.Row = row
	req.Move.Col = col
	req.Move.PlayerID = playerID
	return req
}

func TestCreateEndpoint(t *testing.T) {
	h := newTestRouter(t)
	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/create", createRequest{HostName: "Alice", Difficulty: "hard"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.State)
	assert.Regexp(t, `^NBA-[A-Z2-9]{4}$`, resp.State.Code)
	assert.Equal(t, "hard", resp.State.Difficulty)
	assert.Equal(t, battle.RoleHost, resp.State.CurrentTurn)
}

func TestJoinEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/join", joinRequest{Code: code, Name: "Bob"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "guest", resp.Role)
	require.NotNil(t, resp.State.Players.Guest)
	assert.Equal(t, "Bob", resp.State.Players.Guest.Name)
}

func TestJoinEndpoint_Errors(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/battle/join", joinRequest{Code: code, Name: "Mallory"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = doJSON(t, h, http.MethodPost, "/api/battle/join", joinRequest{Code: "NBA-ZZZZ", Name: "Bob"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, h, http.MethodPost, "/api/battle/join", joinRequest{Code: code})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)

	req := httptest.NewRequest(http.MethodGet, "/api/battle/"+code, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap battle.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, code, snap.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/battle/NBA-ZZZZ", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)

	req := httptest.NewRequest(http.MethodGet, "/api/battle/list", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Battles []battle.WaitingBattle `json:"battles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Battles, 1)
	assert.Equal(t, code, body.Battles[0].Code)
	assert.Equal(t, "Alice", body.Battles[0].HostName)
}

func TestMoveEndpoint_Accepted(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "host", "swish", 0, 0))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, battle.RoleGuest, resp.State.CurrentTurn)
}

func TestMoveEndpoint_CriteriaMiss(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "host", "airball", 1, 1))
	// The miss is a scored outcome, not a transport error.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Airball matches neither criteria", resp.Reason)
	require.NotNil(t, resp.State)
	assert.Equal(t, battle.RoleGuest, resp.State.CurrentTurn)
}

func TestMoveEndpoint_WrongTurn(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "guest", "swish", 0, 0))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.State, "state rides along for resync")
	assert.Equal(t, battle.RoleHost, resp.State.CurrentTurn)
}

func TestMoveEndpoint_OccupiedCell(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)
	doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "host", "swish", 0, 0))

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "guest", "swish", 0, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.State)
}

func TestMoveEndpoint_UnknownPlayer(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "host", "benchwarmer", 0, 0))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMoveEndpoint_InvalidRole(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/battle/move", moveBody(code, "referee", "swish", 0, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteSkipEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/vote-skip", roleRequest{Code: code, Role: "host"})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Skipped)
	assert.False(t, *resp.Skipped)

	rec, resp = doJSON(t, h, http.MethodPost, "/api/battle/vote-skip", roleRequest{Code: code, Role: "guest"})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Skipped)
	assert.True(t, *resp.Skipped)
}

func TestNextRoundEndpoint_Forfeit(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/next-round", nextRoundRequest{Code: code, Role: "guest", Action: "forfeit"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, battle.StatusFinished, resp.State.RoundStatus)
	assert.Equal(t, "host", resp.State.Winner)
}

func TestRematchEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)
	doJSON(t, h, http.MethodPost, "/api/battle/next-round", nextRoundRequest{Code: code, Role: "guest", Action: "forfeit"})

	doJSON(t, h, http.MethodPost, "/api/battle/rematch", roleRequest{Code: code, Role: "host"})
	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/rematch", roleRequest{Code: code, Role: "guest"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, battle.StatusPlaying, resp.State.RoundStatus)
	assert.Equal(t, 1, resp.State.RoundNumber)
}

func TestTimeoutEndpoint_Premature(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/battle/timeout", timeoutRequest{Code: code, CurrentTurn: "host"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHeartbeatEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)
	joinBattle(t, h, code)

	rec, resp := doJSON(t, h, http.MethodPost, "/api/battle/heartbeat", roleRequest{Code: code, Role: "host"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Action)
}

func TestChatEndpoint(t *testing.T) {
	h := newTestRouter(t)
	code := createBattle(t, h)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/battle/chat", map[string]any{
		"code":    code,
		"message": map[string]string{"from": "Alice", "text": "gl hf"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, h, http.MethodPost, "/api/battle/chat", map[string]any{"code": code})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/battle/create", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
