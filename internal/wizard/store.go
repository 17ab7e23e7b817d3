package wizard

import (
	"sync"
	"time"

	"github.com/epgroup-anab/auction-hero-forge/internal/domain"
	"github.com/google/uuid"
)

// Store keeps the live wizard sessions. State is in-memory only: a session
// belongs to one server instance for its whole life, like the browser tab
// it replaces.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Wizard
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Wizard)}
}

// StartCreate opens a create-mode session with a fresh draft.
func (s *Store) StartCreate(ownerID string) *Wizard {
	return s.put(ownerID, domain.NewDraft())
}

// StartEdit opens an edit-mode session over a loaded draft.
func (s *Store) StartEdit(ownerID string, draft *domain.Draft) *Wizard {
	return s.put(ownerID, draft)
}

func (s *Store) put(ownerID string, draft *domain.Draft) *Wizard {
	w := newWizard(uuid.New().String(), ownerID, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[w.ID] = w
	return w
}

// Get returns the session only to its owner.
func (s *Store) Get(id, ownerID string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.sessions[id]
	if !ok || w.OwnerID != ownerID {
		return nil, domain.ErrSessionNotFound
	}
	return w, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// PruneIdle drops sessions untouched for longer than maxIdle and returns
// their ids. Unsaved draft state in a pruned session is gone for good.
func (s *Store) PruneIdle(maxIdle time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pruned []string
	now := time.Now()
	for id, w := range s.sessions {
		w.mu.Lock()
		idle := now.Sub(w.lastActive)
		w.mu.Unlock()
		if idle > maxIdle {
			delete(s.sessions, id)
			pruned = append(pruned, id)
		}
	}

	return pruned
}
