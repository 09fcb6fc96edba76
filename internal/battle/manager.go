package battle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
	"go.uber.org/zap"
)

// ErrCodeTaken is returned by Store.Create when the generated code already
// exists; the manager retries with a fresh code.
var ErrCodeTaken = errors.New("battle code already taken")

const createRetries = 5

// Store is the keyed battle persistence the manager reads and writes.
// Implementations return ErrNotFound for unknown codes and ErrCodeTaken for
// Create collisions.
type Store interface {
	Get(ctx context.Context, code string) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Create(ctx context.Context, session *Session) error
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
	ListWaiting(ctx context.Context, limit int) ([]WaitingBattle, error)
}

// WaitingBattle is a row of the open-battle listing.
type WaitingBattle struct {
	Code       string    `json:"code"`
	HostName   string    `json:"hostName"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Broadcaster publishes events to all subscribers of a battle channel.
// Fire-and-forget, at-most-once: delivery is the transport's concern, and
// clients that miss an event resynchronize through Get.
type Broadcaster interface {
	Publish(channel, event string, payload any)
}

// Oracle is the external player-data and grid-generation authority.
type Oracle interface {
	GenerateGrid(difficulty oracle.Difficulty, size int, excludeValues []string) (oracle.GridCriteria, error)
	ResolvePlayer(id, fallbackName string) (*oracle.Player, bool)
	MatchesCriteria(p *oracle.Player, c oracle.Criteria) bool
}

// Broadcast event names, one per transition kind. Every event payload is a
// complete Snapshot except playerJoinedEvent and heartbeatEvent.
const (
	eventPlayerJoined = "player-joined"
	eventMoveMade     = "move-made"
	eventGameSync     = "game-sync"
	eventTimeout      = "timeout"
	eventHeartbeat    = "heartbeat"
)

// ChannelKey returns the broadcast channel for a battle code.
func ChannelKey(code string) string { return "battle-" + code }

// Manager owns every battle session and applies all transitions. Operations
// on one code are serialized through a per-code lock; operations on
// different codes run in parallel. Every mutating operation follows the same
// pipeline: fetch, apply transition, persist, publish.
type Manager struct {
	store       Store
	oracle      Oracle
	broadcaster Broadcaster
	rules       Rules
	logger      *zap.Logger
	now         func() time.Time

	mu    sync.Mutex
	locks map[string]*codeLock
}

type codeLock struct {
	mu   sync.Mutex
	refs int
}

// NewManager creates a battle manager.
func NewManager(store Store, o Oracle, b Broadcaster, rules Rules, logger *zap.Logger) *Manager {
	return &Manager{
		store:       store,
		oracle:      o,
		broadcaster: b,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
		locks:       make(map[string]*codeLock),
	}
}

// lockCode acquires the per-code mutex and returns its release func.
func (m *Manager) lockCode(code string) func() {
	m.mu.Lock()
	cl, ok := m.locks[code]
	if !ok {
		cl = &codeLock{}
		m.locks[code] = cl
	}
	cl.refs++
	m.mu.Unlock()

	cl.mu.Lock()
	return func() {
		cl.mu.Unlock()
		m.mu.Lock()
		cl.refs--
		if cl.refs == 0 {
			delete(m.locks, code)
		}
		m.mu.Unlock()
	}
}

// Create starts a new battle with the host seated and returns its snapshot.
func (m *Manager) Create(ctx context.Context, hostName string, difficulty string) (*Snapshot, error) {
	if hostName == "" {
		hostName = "Host"
	}
	diff := oracle.ParseDifficulty(difficulty)

	gc, err := m.oracle.GenerateGrid(diff, GridSize, nil)
	if err != nil {
		return nil, fmt.Errorf("generate grid: %w", err)
	}

	now := m.now()
	for attempt := 0; attempt < createRetries; attempt++ {
		session := NewSession(newCode(), diff, hostName, gc, now, m.rules)
		if err := m.store.Create(ctx, session); err != nil {
			if errors.Is(err, ErrCodeTaken) {
				continue
			}
			return nil, fmt.Errorf("create battle: %w", err)
		}
		m.logger.Info("battle created",
			zap.String("code", session.Code),
			zap.String("host", hostName),
			zap.String("difficulty", string(diff)),
		)
		return session.Snapshot(), nil
	}
	return nil, fmt.Errorf("create battle: %w", ErrCodeTaken)
}

// Join seats the guest. First writer wins; a second join fails with
// ErrBattleFull and never overwrites the first guest. Both sides then
// converge on the persisted state through a full sync broadcast.
func (m *Manager) Join(ctx context.Context, code, guestName string) (*Snapshot, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := session.SeatGuest(guestName, m.now(), m.rules); err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("persist join: %w", err)
	}

	snap := session.Snapshot()
	m.broadcaster.Publish(ChannelKey(code), eventPlayerJoined, map[string]any{
		"id":   session.Guest.ID,
		"name": session.Guest.Name,
		"role": RoleGuest,
	})
	m.broadcaster.Publish(ChannelKey(code), eventGameSync, snap)

	m.logger.Info("guest joined battle",
		zap.String("code", code),
		zap.String("guest", guestName),
	)
	return snap, nil
}

// Get returns the current snapshot, the pull path for clients that missed a
// broadcast.
func (m *Manager) Get(ctx context.Context, code string) (*Snapshot, error) {
	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// List returns open battles still waiting for a guest.
func (m *Manager) List(ctx context.Context, limit int) ([]WaitingBattle, error) {
	return m.store.ListWaiting(ctx, limit)
}

// SubmitMove processes a move for the given side. The claimed player is only
// used to resolve identity against the oracle; all scoring runs on the
// authoritative record. A move that fails criteria validation still costs the
// turn: the penalized state is persisted, broadcast, and attached to the
// returned InvalidMoveError.
func (m *Manager) SubmitMove(ctx context.Context, code string, row, col int, role Role, playerID, playerName string) (*Snapshot, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := session.CheckMove(row, col, role); err != nil {
		// Precondition failures mutate nothing; the current state rides
		// along so the client can resync.
		return session.Snapshot(), err
	}

	player, ok := m.oracle.ResolvePlayer(playerID, playerName)
	if !ok {
		return nil, ErrPlayerNotFound
	}

	now := m.now()
	validation := ValidateMove(m.oracle.MatchesCriteria, player, session.Criteria.Rows[row], session.Criteria.Cols[col])
	if !validation.Valid {
		session.PenalizeTurn(now, m.rules)
		if err := m.store.Put(ctx, session); err != nil {
			return nil, fmt.Errorf("persist penalty: %w", err)
		}
		snap := session.Snapshot()
		m.broadcaster.Publish(ChannelKey(code), eventMoveMade, snap)
		m.logger.Info("move rejected, turn forfeited",
			zap.String("code", code),
			zap.String("role", string(role)),
			zap.String("reason", validation.Reason),
		)
		return nil, &InvalidMoveError{Reason: validation.Reason, State: snap}
	}

	ref := &PlayerRef{ID: player.ID, Name: player.Name}
	session.ApplyCorrectMove(row, col, ref, role, now, m.rules)
	if err := m.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("persist move: %w", err)
	}

	snap := session.Snapshot()
	m.broadcaster.Publish(ChannelKey(code), eventMoveMade, snap)
	m.logger.Info("move accepted",
		zap.String("code", code),
		zap.String("role", string(role)),
		zap.String("player", player.Name),
		zap.Int("round", session.RoundNumber),
		zap.String("round_status", string(session.RoundStatus)),
	)
	return snap, nil
}

// VoteSkip records a skip vote; when both sides agree the grid and criteria
// are regenerated at the session's own difficulty, excluding the prompts
// being skipped. Repeat votes from the same side are no-op successes.
func (m *Manager) VoteSkip(ctx context.Context, code string, role Role) (bool, *Snapshot, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return false, nil, err
	}

	skipped, err := session.VoteSkip(role, func() (oracle.GridCriteria, error) {
		return m.oracle.GenerateGrid(session.Difficulty, GridSize, session.Criteria.Values())
	}, m.now(), m.rules)
	if err != nil {
		return false, nil, fmt.Errorf("regenerate grid: %w", err)
	}

	if err := m.store.Put(ctx, session); err != nil {
		return false, nil, fmt.Errorf("persist skip vote: %w", err)
	}

	snap := session.Snapshot()
	m.broadcaster.Publish(ChannelKey(code), eventGameSync, snap)
	if skipped {
		m.logger.Info("grid skipped by consensus", zap.String("code", code))
	}
	return skipped, snap, nil
}

// NextRoundAction is the continue-or-quit decision after a round ends.
type NextRoundAction string

const (
	ActionContinue NextRoundAction = "continue"
	ActionForfeit  NextRoundAction = "forfeit"
)

// NextRound handles the end-of-round decision. Forfeit ends the whole match
// with the quitter's opponent as winner. Continue marks readiness and, once
// both sides are ready, advances the round with fresh criteria that exclude
// the previous round's prompts; the previous winner moves first. Duplicate
// continue requests against an already-running round are no-ops, and both
// actions are no-ops once the match is finished.
func (m *Manager) NextRound(ctx context.Context, code string, role Role, action NextRoundAction) (*Snapshot, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionForfeit:
		// A straggling forfeit after the match ended must not rewrite the
		// recorded result.
		if session.RoundStatus == StatusFinished {
			return session.Snapshot(), nil
		}
		session.ApplyForfeit(role)
		m.logger.Info("battle forfeited",
			zap.String("code", code),
			zap.String("loser", string(role)),
		)
	case ActionContinue:
		// Racing continue requests: once the round has already advanced (or
		// the match is over) there is nothing to do.
		if session.RoundStatus == StatusPlaying && session.Outcome.Pending() {
			return session.Snapshot(), nil
		}
		if session.RoundStatus == StatusFinished {
			return session.Snapshot(), nil
		}
		session.NextRoundReady = session.NextRoundReady.Set(role, true)
		session.LastActivity = m.now()
		if session.NextRoundReady.Both() {
			gc, err := m.oracle.GenerateGrid(session.Difficulty, GridSize, session.Criteria.Values())
			if err != nil {
				return nil, fmt.Errorf("generate next round: %w", err)
			}
			session.StartNextRound(gc, m.now(), m.rules)
			m.logger.Info("round advanced",
				zap.String("code", code),
				zap.Int("round", session.RoundNumber),
				zap.String("starter", string(session.CurrentTurn)),
			)
		}
	default:
		return nil, fmt.Errorf("unknown next-round action %q", action)
	}

	if err := m.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("persist next round: %w", err)
	}

	snap := session.Snapshot()
	m.broadcaster.Publish(ChannelKey(code), eventGameSync, snap)
	return snap, nil
}

// VoteRematch records a rematch vote; on consensus the battle resets to a
// fresh first round with zeroed scores and the host moving first.
func (m *Manager) VoteRematch(ctx context.Context, code string, role Role) (*Snapshot, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	session.RematchVotes = session.RematchVotes.Set(role, true)
	session.LastActivity = m.now()
	if session.RematchVotes.Both() {
		gc, err := m.oracle.GenerateGrid(session.Difficulty, GridSize, nil)
		if err != nil {
			return nil, fmt.Errorf("generate rematch grid: %w", err)
		}
		session.ResetForRematch(gc, m.now(), m.rules)
		m.logger.Info("rematch started", zap.String("code", code))
	}

	if err := m.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("persist rematch vote: %w", err)
	}

	snap := session.Snapshot()
	m.broadcaster.Publish(ChannelKey(code), eventGameSync, snap)
	return snap, nil
}

// CheckTimeout applies the forced turn swap after the turn clock ran out.
// Timeout reports are client-driven, so both sides may report the same expiry:
// when the reported turn no longer matches the session the turn was already
// swapped by another path, and the call is a no-op success with a nil
// snapshot so the reporter doesn't double-penalize.
func (m *Manager) CheckTimeout(ctx context.Context, code string, reportedTurn Role) (*Snapshot, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	now := m.now()
	if !session.TurnExpired(now, m.rules) {
		return nil, ErrNotExpired
	}
	if reportedTurn.Valid() && reportedTurn != session.CurrentTurn {
		return nil, nil
	}

	expired := session.CurrentTurn
	session.PenalizeTurn(now, m.rules)
	if err := m.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("persist timeout: %w", err)
	}

	snap := session.Snapshot()
	m.broadcaster.Publish(ChannelKey(code), eventTimeout, snap)
	m.logger.Info("turn expired",
		zap.String("code", code),
		zap.String("expired_turn", string(expired)),
	)
	return snap, nil
}

// Heartbeat records liveness from one side. When the session has been silent
// past the inactivity threshold the match ends by forfeit, with the
// reporting side's opponent declared match winner; otherwise the activity
// clock is refreshed. Returns the snapshot and whether a forfeit fired.
func (m *Manager) Heartbeat(ctx context.Context, code string, role Role) (*Snapshot, bool, error) {
	unlock := m.lockCode(code)
	defer unlock()

	session, err := m.store.Get(ctx, code)
	if err != nil {
		return nil, false, err
	}

	now := m.now()
	if session.RoundStatus != StatusFinished && session.Inactive(now, m.rules) {
		session.ApplyForfeit(role)
		if err := m.store.Put(ctx, session); err != nil {
			return nil, false, fmt.Errorf("persist inactivity forfeit: %w", err)
		}
		snap := session.Snapshot()
		m.broadcaster.Publish(ChannelKey(code), eventGameSync, snap)
		m.logger.Info("battle forfeited for inactivity",
			zap.String("code", code),
			zap.String("reporter", string(role)),
		)
		return snap, true, nil
	}

	session.LastActivity = now
	if err := m.store.Put(ctx, session); err != nil {
		return nil, false, fmt.Errorf("persist heartbeat: %w", err)
	}

	m.broadcaster.Publish(ChannelKey(code), eventHeartbeat, map[string]any{
		"timestamp": now.UnixMilli(),
		"role":      role,
	})
	return session.Snapshot(), false, nil
}
