// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/mergington/internal/domain"
)

// InMemoryStore keeps activities in process memory. It implements
// domain.ActivityStore and hands out copies, so callers never observe
// concurrent roster mutations.
type InMemoryStore struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryStore constructs a store populated with the given activities.
func NewInMemoryStore(seed []domain.Activity) *InMemoryStore {
	store := &InMemoryStore{
		activities: make(map[string]domain.Activity, len(seed)),
	}
	for _, act := range seed {
		store.activities[act.Name] = cloneActivity(act)
	}
	return store
}

// List implements domain.ActivityStore.
func (s *InMemoryStore) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, act := range s.activities {
		out[name] = cloneActivity(act)
	}
	return out, nil
}

// Get implements domain.ActivityStore.
func (s *InMemoryStore) Get(ctx context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	clone := cloneActivity(act)
	return &clone, nil
}

// Signup implements domain.ActivityStore. The duplicate check and the
// append happen under one lock so concurrent signups cannot double-add.
// Capacity is advisory and deliberately not checked here.
func (s *InMemoryStore) Signup(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(act.Participants, email) {
		return domain.ErrAlreadySignedUp
	}
	act.Participants = append(act.Participants, email)
	s.activities[name] = act
	return nil
}

// Remove implements domain.ActivityStore.
func (s *InMemoryStore) Remove(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(act.Participants, email)
	if idx < 0 {
		return domain.ErrParticipantNotFound
	}
	act.Participants = slices.Delete(act.Participants, idx, idx+1)
	s.activities[name] = act
	return nil
}

// cloneActivity copies the activity, normalizing a nil roster to an empty
// one so views always serialize participants as a JSON array.
func cloneActivity(act domain.Activity) domain.Activity {
	participants := make([]string, len(act.Participants))
	copy(participants, act.Participants)
	act.Participants = participants
	return act
}
