package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
	"github.com/hoopgrid/hoopgrid-server/internal/broadcast"
)

// Server is the HTTP and websocket edge over the battle manager. It owns no
// game state; every request is a thin translation onto a manager operation.
type Server struct {
	mgr    *battle.Manager
	hub    *broadcast.Hub
	logger *zap.Logger
}

// New wires the routes and returns the server.
func New(mgr *battle.Manager, hub *broadcast.Hub, logger *zap.Logger) *Server {
	return &Server{mgr: mgr, hub: hub, logger: logger}
}

// Router builds the chi handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api/battle", func(r chi.Router) {
		r.Post("/create", s.handleCreate)
		r.Post("/join", s.handleJoin)
		r.Post("/move", s.handleMove)
		r.Post("/vote-skip", s.handleVoteSkip)
		r.Post("/next-round", s.handleNextRound)
		r.Post("/rematch", s.handleRematch)
		r.Post("/timeout", s.handleTimeout)
		r.Post("/heartbeat", s.handleHeartbeat)
		r.Post("/chat", s.handleChat)
		r.Get("/list", s.handleList)
		r.Get("/{code}", s.handleGet)
	})
	r.Get("/ws/battle/{code}", s.handleWS)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.Error(w, "missing battle code", http.StatusBadRequest)
		return
	}
	s.hub.ServeWS(w, r, battle.ChannelKey(code))
}
