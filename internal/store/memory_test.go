package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
)

func testSession(code string, createdAt time.Time) *battle.Session {
	s := battle.NewSession(code, oracle.DifficultyMedium, "Host "+code, oracle.GridCriteria{
		Rows: []oracle.Criteria{{Value: "r0"}, {Value: "r1"}, {Value: "r2"}},
		Cols: []oracle.Criteria{{Value: "c0"}, {Value: "c1"}, {Value: "c2"}},
	}, createdAt, battle.DefaultRules())
	return s
}

func TestMemory_GetPutCreate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "NBA-AAAA")
	assert.ErrorIs(t, err, battle.ErrNotFound)

	sess := testSession("NBA-AAAA", time.Now())
	require.NoError(t, m.Create(ctx, sess))
	assert.ErrorIs(t, m.Create(ctx, sess), battle.ErrCodeTaken)

	got, err := m.Get(ctx, "NBA-AAAA")
	require.NoError(t, err)
	assert.Equal(t, sess.Code, got.Code)
	assert.Equal(t, sess.Host.ID, got.Host.ID)

	got.RoundNumber = 4
	require.NoError(t, m.Put(ctx, got))
	again, err := m.Get(ctx, "NBA-AAAA")
	require.NoError(t, err)
	assert.Equal(t, 4, again.RoundNumber)
}

func TestMemory_GetReturnsIsolatedCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Create(ctx, testSession("NBA-BBBB", time.Now())))

	first, err := m.Get(ctx, "NBA-BBBB")
	require.NoError(t, err)
	first.Scores.Host = 99
	first.Grid[0][0].Status = battle.CellCorrect
	first.Criteria.Rows[0].Value = "tampered"

	second, err := m.Get(ctx, "NBA-BBBB")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Scores.Host, "caller mutations must not leak into the store")
	assert.Equal(t, battle.CellEmpty, second.Grid[0][0].Status)
	assert.Equal(t, "r0", second.Criteria.Rows[0].Value)
}

func TestMemory_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Create(ctx, testSession("NBA-OLD1", time.Now().Add(-80*time.Hour))))
	require.NoError(t, m.Create(ctx, testSession("NBA-OLD2", time.Now().Add(-73*time.Hour))))
	require.NoError(t, m.Create(ctx, testSession("NBA-NEW1", time.Now())))

	removed, err := m.DeleteOlderThan(ctx, 72*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = m.Get(ctx, "NBA-OLD1")
	assert.ErrorIs(t, err, battle.ErrNotFound)
	_, err = m.Get(ctx, "NBA-NEW1")
	assert.NoError(t, err)
}

func TestMemory_ListWaiting(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Now()

	oldest := testSession("NBA-WAT1", now.Add(-2*time.Hour))
	newest := testSession("NBA-WAT2", now.Add(-time.Minute))
	stale := testSession("NBA-STAL", now.Add(-30*time.Hour))
	full := testSession("NBA-FULL", now)
	require.NoError(t, full.SeatGuest("Guest", now, battle.DefaultRules()))
	done := testSession("NBA-DONE", now)
	done.ApplyForfeit(battle.RoleGuest)

	for _, s := range []*battle.Session{oldest, newest, stale, full, done} {
		require.NoError(t, m.Create(ctx, s))
	}

	waiting, err := m.ListWaiting(ctx, 10)
	require.NoError(t, err)
	require.Len(t, waiting, 2, "only open, recent battles are listed")
	assert.Equal(t, "NBA-WAT2", waiting[0].Code, "newest first")
	assert.Equal(t, "NBA-WAT1", waiting[1].Code)
	assert.Equal(t, "Host NBA-WAT2", waiting[0].HostName)

	limited, err := m.ListWaiting(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "NBA-WAT2", limited[0].Code)
}
