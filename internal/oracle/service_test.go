package oracle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(zap.NewNop(), WithRand(rand.New(rand.NewSource(42))))
}

func TestResolvePlayer_ByID(t *testing.T) {
	s := newTestService(t)

	p, ok := s.ResolvePlayer("michael-jordan", "")
	require.True(t, ok)
	assert.Equal(t, "Michael Jordan", p.Name)
}

func TestResolvePlayer_NameFallback(t *testing.T) {
	s := newTestService(t)

	// Unknown id falls through to the name.
	p, ok := s.ResolvePlayer("not-a-real-id", "nikola jokic")
	require.True(t, ok)
	assert.Equal(t, "nikola-jokic", p.ID)

	// Name matching is case-insensitive and trims whitespace.
	p, ok = s.ResolvePlayer("", "  TIM DUNCAN ")
	require.True(t, ok)
	assert.Equal(t, "tim-duncan", p.ID)
}

func TestResolvePlayer_Unknown(t *testing.T) {
	s := newTestService(t)

	_, ok := s.ResolvePlayer("nobody", "No Such Player")
	assert.False(t, ok)
	_, ok = s.ResolvePlayer("", "")
	assert.False(t, ok)
}

func TestGenerateGrid_ShapeAndDistinctValues(t *testing.T) {
	s := newTestService(t)

	for _, diff := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		gc, err := s.GenerateGrid(diff, 3, nil)
		require.NoError(t, err, "difficulty %s", diff)
		require.Len(t, gc.Rows, 3)
		require.Len(t, gc.Cols, 3)

		seen := make(map[string]bool)
		for _, v := range gc.Values() {
			assert.False(t, seen[v], "duplicate prompt %q at difficulty %s", v, diff)
			seen[v] = true
		}
	}
}

func TestGenerateGrid_Solvable(t *testing.T) {
	s := newTestService(t)

	for i := 0; i < 20; i++ {
		gc, err := s.GenerateGrid(DifficultyHard, 3, nil)
		require.NoError(t, err)
		for _, rc := range gc.Rows {
			for _, cc := range gc.Cols {
				found := false
				for j := range s.players {
					if Matches(&s.players[j], rc) && Matches(&s.players[j], cc) {
						found = true
						break
					}
				}
				assert.True(t, found, "no answer for %s x %s", rc.Label, cc.Label)
			}
		}
	}
}

func TestGenerateGrid_HonorsExclusions(t *testing.T) {
	s := newTestService(t)

	first, err := s.GenerateGrid(DifficultyMedium, 3, nil)
	require.NoError(t, err)

	second, err := s.GenerateGrid(DifficultyMedium, 3, first.Values())
	require.NoError(t, err)

	excluded := make(map[string]bool)
	for _, v := range first.Values() {
		excluded[v] = true
	}
	for _, v := range second.Values() {
		assert.False(t, excluded[v], "prompt %q was supposed to be excluded", v)
	}
}

func TestGenerateGrid_EasyUsesOnlyPopularPrompts(t *testing.T) {
	s := newTestService(t)

	gc, err := s.GenerateGrid(DifficultyEasy, 3, nil)
	require.NoError(t, err)
	for _, c := range append(append([]Criteria{}, gc.Rows...), gc.Cols...) {
		switch c.Type {
		case CriteriaTeam:
			assert.True(t, popularTeams[c.Value], "easy grid used fringe team %q", c.Value)
		default:
			assert.True(t, majorAwardTypes[c.Type], "easy grid used minor prompt %q", c.Value)
		}
	}
}

func TestGenerateGrid_PoolTooSmall(t *testing.T) {
	s := newTestService(t)

	// Excluding every value the medium pool contains leaves nothing to draw.
	var all []string
	for _, c := range teamCriteria {
		all = append(all, c.Value)
	}
	for _, c := range awardCriteria {
		all = append(all, c.Value)
	}
	for _, c := range decadeCriteria {
		all = append(all, c.Value)
	}
	_, err := s.GenerateGrid(DifficultyMedium, 3, all)
	assert.Error(t, err)
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyEasy, ParseDifficulty("easy"))
	assert.Equal(t, DifficultyHard, ParseDifficulty("hard"))
	assert.Equal(t, DifficultyMedium, ParseDifficulty("medium"))
	assert.Equal(t, DifficultyMedium, ParseDifficulty(""))
	assert.Equal(t, DifficultyMedium, ParseDifficulty("impossible"))
}
