// Package local runs a battle entirely inside one process for same-device
// play. It is the same state machine as the networked battle, parameterized
// with an in-memory store and a discarding broadcaster: both roles are driven
// by the same caller, and the turn, win, round, and timeout rules are
// identical.
package local

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
	"github.com/hoopgrid/hoopgrid-server/internal/broadcast"
	"github.com/hoopgrid/hoopgrid-server/internal/store"
)

// Battle is one offline match with both seats taken at construction.
type Battle struct {
	mgr  *battle.Manager
	code string
}

// New creates a local battle with both players seated and the host on the
// clock.
func New(o battle.Oracle, rules battle.Rules, logger *zap.Logger, hostName, guestName, difficulty string) (*Battle, error) {
	mgr := battle.NewManager(store.NewMemory(), o, broadcast.NewNop(), rules, logger)

	snap, err := mgr.Create(context.Background(), hostName, difficulty)
	if err != nil {
		return nil, fmt.Errorf("create local battle: %w", err)
	}
	if _, err := mgr.Join(context.Background(), snap.Code, guestName); err != nil {
		return nil, fmt.Errorf("seat local guest: %w", err)
	}
	return &Battle{mgr: mgr, code: snap.Code}, nil
}

// State returns the current snapshot.
func (b *Battle) State() (*battle.Snapshot, error) {
	return b.mgr.Get(context.Background(), b.code)
}

// SubmitMove plays a move for the given side. An invalid guess still costs
// the turn, exactly as in the networked battle; the rejection reason rides on
// the returned InvalidMoveError.
func (b *Battle) SubmitMove(row, col int, role battle.Role, playerID, playerName string) (*battle.Snapshot, error) {
	return b.mgr.SubmitMove(context.Background(), b.code, row, col, role, playerID, playerName)
}

// VoteSkip records a skip vote for one side.
func (b *Battle) VoteSkip(role battle.Role) (bool, *battle.Snapshot, error) {
	return b.mgr.VoteSkip(context.Background(), b.code, role)
}

// NextRound applies the end-of-round decision for one side.
func (b *Battle) NextRound(role battle.Role, action battle.NextRoundAction) (*battle.Snapshot, error) {
	return b.mgr.NextRound(context.Background(), b.code, role, action)
}

// VoteRematch records a rematch vote for one side.
func (b *Battle) VoteRematch(role battle.Role) (*battle.Snapshot, error) {
	return b.mgr.VoteRematch(context.Background(), b.code, role)
}

// CheckTimeout forces the turn swap once the clock has run out. The caller
// polls this from its own ticker, the same way connected clients do.
func (b *Battle) CheckTimeout(reportedTurn battle.Role) (*battle.Snapshot, error) {
	return b.mgr.CheckTimeout(context.Background(), b.code, reportedTurn)
}
