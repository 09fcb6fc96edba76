package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
)

type createRequest struct {
	HostName   string `json:"hostName"`
	Difficulty string `json:"difficulty"`
}

type joinRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type moveRequest struct {
	Code string `json:"code"`
	Role string `json:"role"`
	Move struct {
		Row        int    `json:"row"`
		Col        int    `json:"col"`
		PlayerID   string `json:"playerId"`
		PlayerName string `json:"playerName"`
	} `json:"move"`
}

type roleRequest struct {
	Code string `json:"code"`
	Role string `json:"role"`
}

type nextRoundRequest struct {
	Code   string `json:"code"`
	Role   string `json:"role"`
	Action string `json:"action"`
}

type timeoutRequest struct {
	Code        string `json:"code"`
	CurrentTurn string `json:"currentTurn"`
}

type chatRequest struct {
	Code    string          `json:"code"`
	Message json.RawMessage `json:"message"`
}

type stateResponse struct {
	Success bool             `json:"success"`
	State   *battle.Snapshot `json:"state,omitempty"`
	Reason  string           `json:"reason,omitempty"`
	Skipped *bool            `json:"skipped,omitempty"`
	Role    string           `json:"role,omitempty"`
	Action  string           `json:"action,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !s.decode(w, r, &req) {
		return
	}
	snap, err := s.mgr.Create(r.Context(), req.HostName, req.Difficulty)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Code == "" || req.Name == "" {
		s.writeBadRequest(w, "missing code or name")
		return
	}
	snap, err := s.mgr.Join(r.Context(), req.Code, req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap, Role: string(battle.RoleGuest)})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	snap, err := s.mgr.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	battles, err := s.mgr.List(r.Context(), 10)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"battles": battles})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !s.decode(w, r, &req) {
		return
	}
	role, ok := parseRole(req.Role)
	if !ok {
		s.writeBadRequest(w, "invalid role")
		return
	}

	snap, err := s.mgr.SubmitMove(r.Context(), req.Code, req.Move.Row, req.Move.Col, role, req.Move.PlayerID, req.Move.PlayerName)
	if err != nil {
		// A criteria miss is an expected, scored outcome: the penalty state
		// was applied and broadcast, and rides back with the rejection.
		if ime, isInvalid := battle.AsInvalidMove(err); isInvalid {
			s.writeJSON(w, http.StatusOK, stateResponse{State: ime.State, Reason: ime.Reason})
			return
		}
		// Turn and cell rejections mutate nothing; the current state rides
		// along so the caller can resync.
		if errors.Is(err, battle.ErrWrongTurn) || errors.Is(err, battle.ErrCellTaken) {
			s.writeJSON(w, statusFor(err), stateResponse{State: snap, Reason: err.Error()})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap})
}

func (s *Server) handleVoteSkip(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if !s.decode(w, r, &req) {
		return
	}
	role, ok := parseRole(req.Role)
	if !ok {
		s.writeBadRequest(w, "invalid role")
		return
	}
	skipped, snap, err := s.mgr.VoteSkip(r.Context(), req.Code, role)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap, Skipped: &skipped})
}

func (s *Server) handleNextRound(w http.ResponseWriter, r *http.Request) {
	var req nextRoundRequest
	if !s.decode(w, r, &req) {
		return
	}
	role, ok := parseRole(req.Role)
	if !ok {
		s.writeBadRequest(w, "invalid role")
		return
	}
	snap, err := s.mgr.NextRound(r.Context(), req.Code, role, battle.NextRoundAction(req.Action))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap})
}

func (s *Server) handleRematch(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if !s.decode(w, r, &req) {
		return
	}
	role, ok := parseRole(req.Role)
	if !ok {
		s.writeBadRequest(w, "invalid role")
		return
	}
	snap, err := s.mgr.VoteRematch(r.Context(), req.Code, role)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap})
}

func (s *Server) handleTimeout(w http.ResponseWriter, r *http.Request) {
	var req timeoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	reported, _ := parseRole(req.CurrentTurn)

	snap, err := s.mgr.CheckTimeout(r.Context(), req.Code, reported)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// A nil snapshot means the turn already changed by another path; the
	// report is acknowledged without a second penalty.
	s.writeJSON(w, http.StatusOK, stateResponse{Success: true, State: snap})
}

func (s *Server) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if !s.decode(w, r, &req) {
		return
	}
	role, ok := parseRole(req.Role)
	if !ok {
		s.writeBadRequest(w, "invalid role")
		return
	}
	snap, forfeited, err := s.mgr.Heartbeat(r.Context(), req.Code, role)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := stateResponse{Success: true, State: snap}
	if forfeited {
		resp.Action = "forfeit"
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleChat relays a chat message to the battle channel. Chat is stateless:
// nothing is validated against or written into the session.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Code == "" || len(req.Message) == 0 {
		s.writeBadRequest(w, "missing code or message")
		return
	}
	s.hub.Publish(battle.ChannelKey(req.Code), "chat-message", req.Message)
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "timestamp": time.Now().UnixMilli()})
}

func parseRole(raw string) (battle.Role, bool) {
	role := battle.Role(raw)
	return role, role.Valid()
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, battle.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, battle.ErrBattleFull):
		return http.StatusConflict
	case errors.Is(err, battle.ErrWrongTurn):
		return http.StatusForbidden
	case errors.Is(err, battle.ErrCellTaken),
		errors.Is(err, battle.ErrOutOfBounds),
		errors.Is(err, battle.ErrNotExpired),
		errors.Is(err, battle.ErrBattleFinished):
		return http.StatusBadRequest
	case errors.Is(err, battle.ErrPlayerNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
