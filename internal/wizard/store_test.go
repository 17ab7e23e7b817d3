package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
)

func TestStore_StartCreate_FreshDraft(t *testing.T) {
	s := NewStore()

	w := s.StartCreate("u1")

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "u1", w.OwnerID)
	assert.True(t, w.Draft().IsNew())
	assert.Equal(t, domain.DefaultCurrency, w.Draft().Basics.DefaultCurrency)
	assert.Equal(t, 1, s.Len())
}

func TestStore_StartEdit_KeepsLoadedDraft(t *testing.T) {
	s := NewStore()

	draft := domain.NewDraft()
	draft.EventID = "e1"
	draft.Basics.Name = "Loaded"

	w := s.StartEdit("u1", draft)

	assert.False(t, w.Draft().IsNew())
	assert.Equal(t, "Loaded", w.Draft().Basics.Name)
}

func TestStore_Get_OwnerScoped(t *testing.T) {
	s := NewStore()
	w := s.StartCreate("u1")

	got, err := s.Get(w.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, w, got)

	_, err = s.Get(w.ID, "intruder")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = s.Get("missing", "u1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	w := s.StartCreate("u1")

	s.Delete(w.ID)

	_, err := s.Get(w.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestStore_PruneIdle(t *testing.T) {
	s := NewStore()

	stale := s.StartCreate("u1")
	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	fresh := s.StartCreate("u1")

	pruned := s.PruneIdle(30 * time.Minute)

	require.Len(t, pruned, 1)
	assert.Equal(t, stale.ID, pruned[0])
	assert.Equal(t, 1, s.Len())

	_, err := s.Get(fresh.ID, "u1")
	assert.NoError(t, err)
}

func TestStore_PruneIdle_TouchKeepsSessionAlive(t *testing.T) {
	s := NewStore()

	w := s.StartCreate("u1")
	w.mu.Lock()
	w.lastActive = time.Now().Add(-time.Hour)
	w.mu.Unlock()

	w.Next() // any interaction refreshes the session

	pruned := s.PruneIdle(30 * time.Minute)

	assert.Empty(t, pruned)
	assert.Equal(t, 1, s.Len())
}
