package battle

import "errors"

// Integrity errors are terminal for the request: surfaced as-is, no state
// mutation, no retry.
var (
	// ErrNotFound means the battle code is unknown.
	ErrNotFound = errors.New("battle not found")
	// ErrBattleFull means a join was attempted after the guest seat was taken.
	ErrBattleFull = errors.New("battle is full")
	// ErrPlayerNotFound means the submitted player identity does not resolve
	// against the oracle. This is a system-integrity failure, not a wrong
	// guess; wrong guesses resolve and then fail validation.
	ErrPlayerNotFound = errors.New("player not found")
)

// Gameplay rejections are business outcomes, safe for clients to resend.
var (
	// ErrWrongTurn means the submitter is not the side whose turn it is.
	// Nothing is mutated.
	ErrWrongTurn = errors.New("not your turn")
	// ErrCellTaken means the target cell already holds a correct answer.
	// Nothing is mutated.
	ErrCellTaken = errors.New("cell already filled")
	// ErrOutOfBounds means the target coordinates fall outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrNotExpired means a timeout was reported before the turn clock ran
	// out (grace window included).
	ErrNotExpired = errors.New("turn not yet expired")
	// ErrBattleFinished means an operation arrived after the match ended.
	ErrBattleFinished = errors.New("battle already finished")
)

// InvalidMoveError is the dual-natured rejection: the move failed validation,
// but the turn-swap penalty was applied and persisted. State carries the
// already-applied penalized snapshot so callers broadcast and render it even
// though the move itself was refused.
type InvalidMoveError struct {
	Reason string
	State  *Snapshot
}

func (e *InvalidMoveError) Error() string { return e.Reason }

// AsInvalidMove unwraps an InvalidMoveError if err carries one.
func AsInvalidMove(err error) (*InvalidMoveError, bool) {
	var ime *InvalidMoveError
	if errors.As(err, &ime) {
		return ime, true
	}
	return nil, false
}
