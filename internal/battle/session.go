package battle

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
)

// Rules holds the timing and round parameters of a battle. Both the
// networked and the local variant run the same rules.
type Rules struct {
	// TurnClock is the window the active side has to move.
	TurnClock time.Duration
	// GraceWindow tolerates concurrent timeout reports from both clients:
	// a timeout claim is accepted up to this long before the deadline.
	GraceWindow time.Duration
	// InactivityTimeout is the heartbeat silence after which the absent side
	// forfeits the match. Independent of and longer than the turn clock.
	InactivityTimeout time.Duration
	// MaxRounds is the number of rounds always played unless a forfeit
	// intervenes. There is no early stop on an insurmountable lead.
	MaxRounds int
}

// DefaultRules matches the original game's constants.
func DefaultRules() Rules {
	return Rules{
		TurnClock:         60 * time.Second,
		GraceWindow:       2 * time.Second,
		InactivityTimeout: 120 * time.Second,
		MaxRounds:         5,
	}
}

// NewSession creates a battle with the host seated, an empty grid, fresh
// criteria, and the host on the clock.
func NewSession(code string, difficulty oracle.Difficulty, hostName string, gc oracle.GridCriteria, now time.Time, rules Rules) *Session {
	s := &Session{
		Code:       code,
		Difficulty: difficulty,
		Criteria:   gc,
		Host: &PlayerSlot{
			ID:   uuid.NewString(),
			Name: hostName,
			Role: RoleHost,
		},
		CurrentTurn:  RoleHost,
		Outcome:      Outcome{Kind: OutcomePending},
		RoundNumber:  1,
		RoundStatus:  StatusPlaying,
		CreatedAt:    now,
		LastActivity: now,
	}
	s.resetGrid()
	s.resetClock(now, rules)
	return s
}

// SeatGuest fills the guest slot exactly once; a second join fails without
// overwriting the first guest. The turn clock restarts so the guest isn't
// immediately punished for join latency.
func (s *Session) SeatGuest(name string, now time.Time, rules Rules) error {
	if s.Guest != nil {
		return ErrBattleFull
	}
	s.Guest = &PlayerSlot{
		ID:   uuid.NewString(),
		Name: name,
		Role: RoleGuest,
	}
	s.resetClock(now, rules)
	s.LastActivity = now
	return nil
}

// CheckMove validates the preconditions of a move submission without
// mutating anything.
func (s *Session) CheckMove(row, col int, role Role) error {
	if s.RoundStatus != StatusPlaying {
		return ErrBattleFinished
	}
	if role != s.CurrentTurn {
		return ErrWrongTurn
	}
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return ErrOutOfBounds
	}
	if s.Grid[row][col].Status == CellCorrect {
		return ErrCellTaken
	}
	return nil
}

// ApplyCorrectMove writes a validated answer into the grid and resolves the
// round: a win scores and freezes the clock, a draw freezes without scoring,
// otherwise the turn swaps. The final round transitions straight to finished
// instead of round_over.
func (s *Session) ApplyCorrectMove(row, col int, ref *PlayerRef, role Role, now time.Time, rules Rules) {
	s.Grid[row][col] = Cell{
		Player: ref,
		Status: CellCorrect,
		Owner:  role,
	}

	outcome := DetectWinner(&s.Grid)
	switch outcome.Kind {
	case OutcomeRoundWin:
		s.Scores.Add(outcome.Side)
		fallthrough
	case OutcomeDraw:
		s.Outcome = outcome
		s.TurnExpiry = nil
		if s.RoundNumber >= rules.MaxRounds {
			s.RoundStatus = StatusFinished
		} else {
			s.RoundStatus = StatusRoundOver
		}
	default:
		s.swapTurn(now, rules)
	}
	s.LastActivity = now
}

// PenalizeTurn applies the invalid-guess penalty: the grid is untouched but
// the turn passes to the opponent with a fresh clock. Also the forced-timeout
// transition, which is the same swap triggered by elapsed time.
func (s *Session) PenalizeTurn(now time.Time, rules Rules) {
	s.swapTurn(now, rules)
	s.LastActivity = now
}

// VoteSkip records a skip vote. A repeat vote from the same side is a no-op.
// Returns true when consensus fired and the grid was regenerated; the caller
// supplies the replacement criteria only on consensus via regen.
func (s *Session) VoteSkip(role Role, regen func() (oracle.GridCriteria, error), now time.Time, rules Rules) (bool, error) {
	if s.SkipVotes.Get(role) {
		return false, nil
	}
	s.SkipVotes = s.SkipVotes.Set(role, true)
	s.LastActivity = now
	if !s.SkipVotes.Both() {
		return false, nil
	}

	gc, err := regen()
	if err != nil {
		// Roll the vote back so consensus can retry.
		s.SkipVotes = s.SkipVotes.Set(role, false)
		return false, err
	}

	s.Criteria = gc
	s.resetGrid()
	s.SkipVotes = VotePair{}
	s.Outcome = Outcome{Kind: OutcomePending}
	// Skip always hands the turn to the other side, whoever held it.
	s.swapTurn(now, rules)
	return true, nil
}

// StartNextRound advances to the next round: fresh grid and criteria, votes
// cleared, and the previous round's winner on the clock first (host after a
// draw).
func (s *Session) StartNextRound(gc oracle.GridCriteria, now time.Time, rules Rules) {
	starter := RoleHost
	if s.Outcome.Kind == OutcomeRoundWin {
		starter = s.Outcome.Side
	}

	s.RoundNumber++
	s.Criteria = gc
	s.resetGrid()
	s.Outcome = Outcome{Kind: OutcomePending}
	s.RoundStatus = StatusPlaying
	s.SkipVotes = VotePair{}
	s.NextRoundReady = VotePair{}
	s.CurrentTurn = starter
	s.resetClock(now, rules)
	s.LastActivity = now
}

// ApplyForfeit ends the whole match with the quitting side's opponent as
// winner.
func (s *Session) ApplyForfeit(loser Role) {
	s.Outcome = Outcome{Kind: OutcomeForfeit, Side: loser.Opponent()}
	s.RoundStatus = StatusFinished
	s.TurnExpiry = nil
}

// ResetForRematch restores the session to a fresh first round. The host
// always starts a rematch.
func (s *Session) ResetForRematch(gc oracle.GridCriteria, now time.Time, rules Rules) {
	s.RoundNumber = 1
	s.Criteria = gc
	s.resetGrid()
	s.Outcome = Outcome{Kind: OutcomePending}
	s.RoundStatus = StatusPlaying
	s.Scores = Scores{}
	s.SkipVotes = VotePair{}
	s.NextRoundReady = VotePair{}
	s.RematchVotes = VotePair{}
	s.CurrentTurn = RoleHost
	s.resetClock(now, rules)
	s.LastActivity = now
}

// TurnExpired reports whether a timeout claim is acceptable: the clock must
// be running and within the grace window of its deadline or past it.
func (s *Session) TurnExpired(now time.Time, rules Rules) bool {
	if s.TurnExpiry == nil {
		return false
	}
	return !now.Before(s.TurnExpiry.Add(-rules.GraceWindow))
}

// Inactive reports whether the session has gone silent past the liveness
// threshold.
func (s *Session) Inactive(now time.Time, rules Rules) bool {
	return now.Sub(s.LastActivity) > rules.InactivityTimeout
}

func (s *Session) swapTurn(now time.Time, rules Rules) {
	s.CurrentTurn = s.CurrentTurn.Opponent()
	s.resetClock(now, rules)
}

func (s *Session) resetClock(now time.Time, rules Rules) {
	expiry := now.Add(rules.TurnClock)
	s.TurnExpiry = &expiry
}

func (s *Session) resetGrid() {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			s.Grid[r][c] = Cell{Status: CellEmpty}
		}
	}
}
