package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
)

// Memory is an in-process battle store. It backs the local variant and
// tests, and serves as the fallback when no database is configured.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*battle.Session
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*battle.Session)}
}

// Get returns a copy of the stored session.
func (m *Memory) Get(_ context.Context, code string) (*battle.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[code]
	if !ok {
		return nil, battle.ErrNotFound
	}
	return session.Clone(), nil
}

// Put overwrites the stored session.
func (m *Memory) Put(_ context.Context, session *battle.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Code] = session.Clone()
	return nil
}

// Create stores a new session, failing on code collision.
func (m *Memory) Create(_ context.Context, session *battle.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[session.Code]; exists {
		return battle.ErrCodeTaken
	}
	m.sessions[session.Code] = session.Clone()
	return nil
}

// DeleteOlderThan removes sessions created more than age ago and returns the
// number removed.
func (m *Memory) DeleteOlderThan(_ context.Context, age time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-age)
	var removed int64
	for code, session := range m.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(m.sessions, code)
			removed++
		}
	}
	return removed, nil
}

// ListWaiting returns recent battles still waiting for a guest, newest first.
func (m *Memory) ListWaiting(_ context.Context, limit int) ([]battle.WaitingBattle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cutoff := time.Now().Add(-24 * time.Hour)
	waiting := make([]battle.WaitingBattle, 0)
	for _, session := range m.sessions {
		if session.Guest != nil || session.RoundStatus == battle.StatusFinished {
			continue
		}
		if session.CreatedAt.Before(cutoff) {
			continue
		}
		waiting = append(waiting, battle.WaitingBattle{
			Code:       session.Code,
			HostName:   session.Host.Name,
			Difficulty: string(session.Difficulty),
			CreatedAt:  session.CreatedAt,
		})
	}
	sort.Slice(waiting, func(i, j int) bool {
		return waiting[i].CreatedAt.After(waiting[j].CreatedAt)
	})
	if limit > 0 && len(waiting) > limit {
		waiting = waiting[:limit]
	}
	return waiting, nil
}
