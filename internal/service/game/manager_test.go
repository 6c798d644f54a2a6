package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
)

func TestTableManagerLifecycle(t *testing.T) {
	n := &recordingNotifier{}
	m := NewTableManager(n, zaptest.NewLogger(t))

	table, err := m.Create(domain.DefaultGameConfig(), locale.New())
	require.NoError(t, err)
	assert.Len(t, table.ID, 36)
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(table.ID)
	require.True(t, ok)
	assert.Same(t, table, got)

	require.NoError(t, m.Remove(table.ID))
	assert.ErrorIs(t, m.Remove(table.ID), ErrTableNotFound)
	_, ok = m.Get(table.ID)
	assert.False(t, ok)
	assert.Equal(t, []string{table.ID}, n.closed)
}

func TestTableManagerCreateRejectsBadConfig(t *testing.T) {
	m := NewTableManager(nil, nil)
	cfg := domain.DefaultGameConfig()
	cfg.Players[0].Color = "yellow"

	_, err := m.Create(cfg, nil)
	require.Error(t, err)
	assert.Equal(t, 0, m.Count())
}

func TestTableManagerCleanupIdle(t *testing.T) {
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	m := NewTableManager(nil, nil)
	m.now = func() time.Time { return clock }
	next := 0
	m.newID = func() string {
		next++
		return fmt.Sprintf("table-%d", next)
	}

	stale, err := m.Create(domain.DefaultGameConfig(), nil)
	require.NoError(t, err)

	clock = clock.Add(90 * time.Minute)
	fresh, err := m.Create(domain.DefaultGameConfig(), nil)
	require.NoError(t, err)

	clock = clock.Add(45 * time.Minute)
	assert.Equal(t, 1, m.CleanupIdle(time.Hour))

	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)

	// playing keeps a table alive
	_, err = fresh.Play(0)
	require.NoError(t, err)
	clock = clock.Add(50 * time.Minute)
	assert.Equal(t, 0, m.CleanupIdle(time.Hour))
}
