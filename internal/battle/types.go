package battle

import (
	"time"

	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
)

// GridSize is fixed for battles. The criteria generator supports other sizes
// but the win detector and transition rules assume 3x3.
const GridSize = 3

// Role identifies one of the two sides of a battle.
type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

// Valid reports whether the role is one of the two playable sides.
func (r Role) Valid() bool {
	return r == RoleHost || r == RoleGuest
}

// Opponent returns the other side.
func (r Role) Opponent() Role {
	if r == RoleHost {
		return RoleGuest
	}
	return RoleHost
}

// RoundStatus tracks where a battle is in its round lifecycle.
type RoundStatus string

const (
	// StatusPlaying means the active grid is being filled.
	StatusPlaying RoundStatus = "playing"
	// StatusRoundOver means a round winner or draw has been determined and
	// the battle is waiting for both sides to continue.
	StatusRoundOver RoundStatus = "round_over"
	// StatusFinished means the final round concluded or a forfeit ended the
	// whole match.
	StatusFinished RoundStatus = "finished"
)

// CellStatus is the persisted state of one grid cell. The networked battle
// never persists an incorrect guess; rejected moves leave the cell empty.
type CellStatus string

const (
	CellEmpty   CellStatus = "empty"
	CellCorrect CellStatus = "correct"
)

// PlayerRef points at an authoritative player record. Only the identity is
// stored; attributes are re-resolved through the oracle when needed.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Cell is one position of the battle grid.
// Invariant: Status == CellCorrect iff Player != nil and Owner != "".
type Cell struct {
	Player *PlayerRef `json:"player"`
	Status CellStatus `json:"status"`
	Owner  Role       `json:"owner,omitempty"`
}

// Grid is the 3x3 battle board, row-major.
type Grid [GridSize][GridSize]Cell

// PlayerSlot is one seated participant. Name is an opaque display string;
// presentation layers may encode extra attributes in it but the core never
// parses it.
type PlayerSlot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// VotePair is a two-party consensus tracker.
type VotePair struct {
	Host  bool `json:"host"`
	Guest bool `json:"guest"`
}

// Get returns the vote for a role.
func (v VotePair) Get(r Role) bool {
	if r == RoleHost {
		return v.Host
	}
	return v.Guest
}

// Set marks a role's vote and returns the updated pair.
func (v VotePair) Set(r Role, val bool) VotePair {
	if r == RoleHost {
		v.Host = val
	} else {
		v.Guest = val
	}
	return v
}

// Both reports whether both sides have voted.
func (v VotePair) Both() bool { return v.Host && v.Guest }

// Scores tracks round wins per side.
type Scores struct {
	Host  int `json:"host"`
	Guest int `json:"guest"`
}

// Add credits a round win to one side.
func (s *Scores) Add(r Role) {
	if r == RoleHost {
		s.Host++
	} else {
		s.Guest++
	}
}

// OutcomeKind distinguishes the ways a winner slot can be occupied. A round
// win and a match forfeit are different events even though the original data
// model stored both in one field; the tagged form keeps them apart internally
// and the Snapshot flattens them back at the serialization boundary.
type OutcomeKind string

const (
	OutcomePending  OutcomeKind = "pending"
	OutcomeRoundWin OutcomeKind = "round_win"
	OutcomeDraw     OutcomeKind = "draw"
	OutcomeForfeit  OutcomeKind = "forfeit"
)

// Outcome is the tagged winner variant. Side is set for round wins and
// forfeits, empty otherwise.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Side Role        `json:"side,omitempty"`
}

// Flatten projects the outcome onto the single winner field clients consume:
// "host", "guest", "draw", or "" while the round is undecided.
func (o Outcome) Flatten() string {
	switch o.Kind {
	case OutcomeRoundWin, OutcomeForfeit:
		return string(o.Side)
	case OutcomeDraw:
		return "draw"
	default:
		return ""
	}
}

// Pending reports whether no round result has been determined yet.
func (o Outcome) Pending() bool { return o.Kind == OutcomePending }

// Session is the root aggregate for one battle. It is plain data: all methods
// that mutate it are deterministic transitions, and serialization of access
// is the caller's responsibility (the Manager holds a per-code lock, the
// local variant a single mutex).
type Session struct {
	Code       string              `json:"code"`
	Difficulty oracle.Difficulty   `json:"difficulty"`
	Grid       Grid                `json:"grid"`
	Criteria   oracle.GridCriteria `json:"criteria"`

	Host  *PlayerSlot `json:"host"`
	Guest *PlayerSlot `json:"guest"`

	CurrentTurn Role        `json:"currentTurn"`
	TurnExpiry  *time.Time  `json:"turnExpiry"`
	Outcome     Outcome     `json:"outcome"`
	RoundNumber int         `json:"roundNumber"`
	RoundStatus RoundStatus `json:"roundStatus"`
	Scores      Scores      `json:"scores"`

	SkipVotes      VotePair `json:"skipVotes"`
	NextRoundReady VotePair `json:"nextRoundReady"`
	RematchVotes   VotePair `json:"rematchVotes"`

	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}

// Snapshot is the full materialized view broadcast to clients and returned by
// every operation. Clients may have missed intermediate events, so it is
// always complete, never a delta. Winner carries the flattened outcome for
// compatibility with the wire shape clients already speak.
type Snapshot struct {
	Code        string              `json:"code"`
	Difficulty  string              `json:"difficulty"`
	Grid        Grid                `json:"grid"`
	Criteria    oracle.GridCriteria `json:"criteria"`
	Players     SnapshotPlayers     `json:"players"`
	CurrentTurn Role                `json:"currentTurn"`
	Winner      string              `json:"winner,omitempty"`
	Outcome     Outcome             `json:"outcome"`
	TurnExpiry  *int64              `json:"turnExpiry"` // unix millis, null between rounds
	RoundNumber int                 `json:"roundNumber"`
	RoundStatus RoundStatus         `json:"roundStatus"`
	Scores      Scores              `json:"scores"`

	SkipVotes      VotePair `json:"skipVotes"`
	NextRoundReady VotePair `json:"nextRoundReady"`
	RematchVotes   VotePair `json:"rematchVotes"`
}

// SnapshotPlayers mirrors the players block of the wire shape.
type SnapshotPlayers struct {
	Host  *PlayerSlot `json:"host"`
	Guest *PlayerSlot `json:"guest"`
}

// Snapshot builds an independent copy of the session for broadcast or API
// responses. Mutating the snapshot never affects the session.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		Code:        s.Code,
		Difficulty:  string(s.Difficulty),
		Grid:        s.Grid, // array copy; cells share PlayerRef pointers, which are immutable
		Criteria:    cloneCriteria(s.Criteria),
		CurrentTurn: s.CurrentTurn,
		Winner:      s.Outcome.Flatten(),
		Outcome:     s.Outcome,
		RoundNumber: s.RoundNumber,
		RoundStatus: s.RoundStatus,
		Scores:      s.Scores,

		SkipVotes:      s.SkipVotes,
		NextRoundReady: s.NextRoundReady,
		RematchVotes:   s.RematchVotes,
	}
	if s.TurnExpiry != nil {
		ms := s.TurnExpiry.UnixMilli()
		snap.TurnExpiry = &ms
	}
	if s.Host != nil {
		host := *s.Host
		snap.Players.Host = &host
	}
	if s.Guest != nil {
		guest := *s.Guest
		snap.Players.Guest = &guest
	}
	return snap
}

// Clone returns a deep copy of the session, used by in-memory stores so the
// stored row cannot alias caller state.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Criteria = cloneCriteria(s.Criteria)
	if s.TurnExpiry != nil {
		t := *s.TurnExpiry
		cp.TurnExpiry = &t
	}
	if s.Host != nil {
		host := *s.Host
		cp.Host = &host
	}
	if s.Guest != nil {
		guest := *s.Guest
		cp.Guest = &guest
	}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if p := s.Grid[r][c].Player; p != nil {
				ref := *p
				cp.Grid[r][c].Player = &ref
			}
		}
	}
	return &cp
}

func cloneCriteria(gc oracle.GridCriteria) oracle.GridCriteria {
	out := oracle.GridCriteria{
		Rows: make([]oracle.Criteria, len(gc.Rows)),
		Cols: make([]oracle.Criteria, len(gc.Cols)),
	}
	copy(out.Rows, gc.Rows)
	copy(out.Cols, gc.Cols)
	return out
}
