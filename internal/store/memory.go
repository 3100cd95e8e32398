// In-memory implementation of the game.Repository interface.
// This is the session registry for jumble games; state lives only as long
// as the process.
//
// Characteristics:
//   - Sessions keyed by ID in a map guarded by an RWMutex.
//   - Each session has its own mutex, so guesses on different sessions do
//     not contend and guesses on one session serialise.
//   - Get hands out clones; callers never share a live *game.Session.
//   - Optional idle expiry through Sweep / RunSweeper.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/game"
)

type entry struct {
	mu      sync.Mutex
	sess    *game.Session
	removed bool // set under mu when evicted
}

// Memory is a map-based session store.
type Memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string]*entry // keyed by Session.ID
	now      func() time.Time
}

var _ game.Repository = (*Memory)(nil)

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *Memory {
	return &Memory{sessions: make(map[string]*entry), now: time.Now}
}

// Create registers a new session. The store takes ownership of s.
func (m *Memory) Create(ctx context.Context, s *game.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; ok {
		return apperr.InvalidArgument("duplicate game id %s", s.ID)
	}
	m.sessions[s.ID] = &entry{sess: s}
	return nil
}

func (m *Memory) lookup(id string) (*entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	return e, ok
}

// Get returns a copy of the session.
func (m *Memory) Get(ctx context.Context, id string) (*game.Session, error) {
	var out *game.Session
	err := m.Update(ctx, id, func(s *game.Session) error {
		out = s.Clone()
		return nil
	})
	return out, err
}

// Update runs fn on the live session while holding its lock.
func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, ok := m.lookup(id)
	if !ok {
		return apperr.GameNotFound(id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return apperr.GameNotFound(id)
	}
	e.sess.LastAccess = m.now()
	return fn(e.sess)
}

// Len is the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than ttl and returns how many went.
// ttl <= 0 evicts nothing.
func (m *Memory) Sweep(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	// Lock order is map then session; Update never takes the map lock
	// while holding a session lock.
	expired := lo.PickBy(m.sessions, func(_ string, e *entry) bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.sess.LastAccess.Before(cutoff) {
			e.removed = true
			return true
		}
		return false
	})
	for id := range expired {
		delete(m.sessions, id)
	}
	return len(expired)
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
// It returns immediately when ttl or interval is not positive.
func (m *Memory) RunSweeper(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(ttl); n > 0 {
				log.Info().Int("evicted", n).Int("live", m.Len()).Msg("expired sessions swept")
			}
		}
	}
}
