package oracle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrNoSolvableGrid is returned when the generator cannot assemble a grid
// where every cell has at least one valid answer.
var ErrNoSolvableGrid = errors.New("no solvable grid found")

const generateRetryLimit = 50

// Service answers player lookups and criteria questions against the embedded
// reference dataset, and generates row/column criteria sets for new rounds.
type Service struct {
	players []Player
	byID    map[string]*Player
	byName  map[string]*Player

	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRand injects a deterministic source, used by tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService builds the oracle over the embedded dataset.
func NewService(logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		players: referencePlayers,
		byID:    make(map[string]*Player, len(referencePlayers)),
		byName:  make(map[string]*Player, len(referencePlayers)),
		logger:  logger,
	}
	for i := range s.players {
		p := &s.players[i]
		s.byID[p.ID] = p
		s.byName[strings.ToLower(p.Name)] = p
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolvePlayer finds the authoritative record by id first, falling back to
// an exact (case-insensitive) name match.
func (s *Service) ResolvePlayer(id, fallbackName string) (*Player, bool) {
	if id != "" {
		if p, ok := s.byID[id]; ok {
			return p, true
		}
	}
	name := strings.ToLower(strings.TrimSpace(fallbackName))
	if name == "" {
		return nil, false
	}
	p, ok := s.byName[name]
	return p, ok
}

// MatchesCriteria reports whether the player satisfies the criteria.
func (s *Service) MatchesCriteria(p *Player, c Criteria) bool {
	return Matches(p, c)
}

// GenerateGrid picks size row criteria and size column criteria from the
// difficulty's pools, avoiding excluded values and repeated prompts, and
// retries until every cell intersection has at least one valid player.
func (s *Service) GenerateGrid(difficulty Difficulty, size int, excludeValues []string) (GridCriteria, error) {
	if size <= 0 {
		size = 3
	}
	pool := s.criteriaPool(difficulty, excludeValues)
	if len(pool) < size*2 {
		return GridCriteria{}, fmt.Errorf("criteria pool too small: %d entries for %dx%d grid", len(pool), size, size)
	}

	for attempt := 0; attempt < generateRetryLimit; attempt++ {
		candidate := s.pickCriteria(pool, size*2)
		if len(candidate) < size*2 {
			continue
		}
		grid := GridCriteria{Rows: candidate[:size], Cols: candidate[size:]}
		if s.solvable(grid) {
			return grid, nil
		}
	}
	if s.logger != nil {
		s.logger.Warn("grid generation exhausted retries",
			zap.String("difficulty", string(difficulty)),
			zap.Int("size", size),
		)
	}
	return GridCriteria{}, ErrNoSolvableGrid
}

func (s *Service) criteriaPool(difficulty Difficulty, excludeValues []string) []Criteria {
	excluded := make(map[string]bool, len(excludeValues))
	for _, v := range excludeValues {
		excluded[v] = true
	}

	var pool []Criteria
	add := func(list []Criteria) {
		for _, c := range list {
			if !excluded[c.Value] {
				pool = append(pool, c)
			}
		}
	}

	switch difficulty {
	case DifficultyEasy:
		for _, c := range teamCriteria {
			if popularTeams[c.Value] && !excluded[c.Value] {
				pool = append(pool, c)
			}
		}
		for _, c := range awardCriteria {
			if majorAwardTypes[c.Type] && !excluded[c.Value] {
				pool = append(pool, c)
			}
		}
	case DifficultyHard:
		add(teamCriteria)
		add(awardCriteria)
		add(decadeCriteria)
		add(statAndOriginCriteria)
	default: // medium
		add(teamCriteria)
		add(awardCriteria)
		add(decadeCriteria)
	}
	return pool
}

// pickCriteria draws n criteria with distinct values.
func (s *Service) pickCriteria(pool []Criteria, n int) []Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	picked := make([]Criteria, 0, n)
	used := make(map[string]bool, n)
	perm := s.perm(len(pool))
	for _, idx := range perm {
		c := pool[idx]
		if used[c.Value] {
			continue
		}
		used[c.Value] = true
		picked = append(picked, c)
		if len(picked) == n {
			break
		}
	}
	return picked
}

func (s *Service) perm(n int) []int {
	if s.rng != nil {
		return s.rng.Perm(n)
	}
	return rand.Perm(n)
}

// solvable checks that every row/column intersection has an answer.
func (s *Service) solvable(grid GridCriteria) bool {
	if len(grid.Rows)*len(grid.Cols) == 0 {
		return false
	}
	for _, rc := range grid.Rows {
		for _, cc := range grid.Cols {
			if !s.hasAnswer(rc, cc) {
				return false
			}
		}
	}
	return true
}

func (s *Service) hasAnswer(rowC, colC Criteria) bool {
	for i := range s.players {
		p := &s.players[i]
		if Matches(p, rowC) && Matches(p, colC) {
			return true
		}
	}
	return false
}
