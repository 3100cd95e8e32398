package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/game"
)

func newSession(id string, at time.Time) *game.Session {
	return game.NewSession(id, "yellow", "lowyel", []string{"yell", "owl", "low", "lowly"}, 3, at)
}

func TestMemory_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Create(ctx, newSession("g1", time.Now())))

	err := m.Create(ctx, newSession("g1", time.Now()))
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = m.Get(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrGameNotFound)
	assert.ErrorIs(t, m.Update(ctx, "nope", func(*game.Session) error { return nil }), apperr.ErrGameNotFound)

	require.NoError(t, m.Update(ctx, "g1", func(s *game.Session) error {
		assert.Equal(t, game.ResultCorrect, s.ApplyGuess("owl"))
		return nil
	}))

	snap, err := m.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"owl"}, snap.Guessed())

	// snapshots are detached from the stored session
	snap.ApplyGuess("yell")
	again, err := m.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Remaining())
	assert.Equal(t, 1, m.Len())
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemoryStore()
	assert.ErrorIs(t, m.Create(ctx, newSession("g1", time.Now())), context.Canceled)
}

func TestMemory_ConcurrentGuessesFlipOnce(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Create(ctx, newSession("g1", time.Now())))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		correct int
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Update(ctx, "g1", func(s *game.Session) error {
				if s.ApplyGuess("lowly") != game.ResultIncorrect {
					mu.Lock()
					correct++
					mu.Unlock()
				}
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, correct)
	snap, err := m.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Remaining())
}

func TestMemory_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Create(ctx, newSession("old", now.Add(-2*time.Hour))))
	require.NoError(t, m.Create(ctx, newSession("fresh", now.Add(-time.Minute))))

	assert.Equal(t, 0, m.Sweep(0))
	assert.Equal(t, 1, m.Sweep(time.Hour))
	assert.Equal(t, 1, m.Len())

	_, err := m.Get(ctx, "old")
	assert.ErrorIs(t, err, apperr.ErrGameNotFound)
	_, err = m.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemory_RunSweeperStopsOnCancel(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunSweeper(ctx, time.Hour, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
