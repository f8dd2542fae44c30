package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"example.com/mergington/internal/events"
)

type stubStore struct {
	activities map[string]Activity
	signups    []string
	removals   []string
	signupErr  error
	removeErr  error
}

var _ ActivityStore = (*stubStore)(nil)

func (s *stubStore) List(ctx context.Context) (map[string]Activity, error) {
	out := make(map[string]Activity, len(s.activities))
	for name, act := range s.activities {
		out[name] = act
	}
	return out, nil
}

func (s *stubStore) Get(ctx context.Context, name string) (*Activity, error) {
	act, ok := s.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return &act, nil
}

func (s *stubStore) Signup(ctx context.Context, name, email string) error {
	if s.signupErr != nil {
		return s.signupErr
	}
	s.signups = append(s.signups, name+"/"+email)
	act := s.activities[name]
	act.Participants = append(act.Participants, email)
	s.activities[name] = act
	return nil
}

func (s *stubStore) Remove(ctx context.Context, name, email string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removals = append(s.removals, name+"/"+email)
	return nil
}

type recordingPublisher struct {
	published []events.RosterEvent
	err       error
}

var _ events.Publisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(ctx context.Context, event events.RosterEvent) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, event)
	return nil
}

func newTestStore() *stubStore {
	return &stubStore{activities: map[string]Activity{
		"Chess Club": {
			Name:            "Chess Club",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}}
}

func TestSignupEmitsRosterEvent(t *testing.T) {
	store := newTestStore()
	publisher := &recordingPublisher{}
	svc := NewService(store, publisher, zaptest.NewLogger(t))

	err := svc.Signup(context.Background(), "Chess Club", "emma@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"Chess Club/emma@mergington.edu"}, store.signups)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0]
	require.Equal(t, events.TypeSignedUp, event.Type)
	require.Equal(t, "Chess Club", event.Activity)
	require.Equal(t, "emma@mergington.edu", event.Email)
	require.Equal(t, 2, event.RosterSize)
	require.False(t, event.OccurredAt.IsZero())
}

func TestSignupRequiresEmail(t *testing.T) {
	store := newTestStore()
	publisher := &recordingPublisher{}
	svc := NewService(store, publisher, zaptest.NewLogger(t))

	for _, email := range []string{"", "   "} {
		err := svc.Signup(context.Background(), "Chess Club", email)
		require.ErrorIs(t, err, ErrEmailRequired)
	}
	require.Empty(t, store.signups)
	require.Empty(t, publisher.published)
}

func TestSignupStoreErrorSkipsEvent(t *testing.T) {
	store := newTestStore()
	store.signupErr = ErrAlreadySignedUp
	publisher := &recordingPublisher{}
	svc := NewService(store, publisher, zaptest.NewLogger(t))

	err := svc.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadySignedUp)
	require.Empty(t, publisher.published)
}

func TestSignupSurvivesPublishFailure(t *testing.T) {
	store := newTestStore()
	publisher := &recordingPublisher{err: errors.New("broker unreachable")}
	svc := NewService(store, publisher, zaptest.NewLogger(t))

	err := svc.Signup(context.Background(), "Chess Club", "emma@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"Chess Club/emma@mergington.edu"}, store.signups)
}

func TestRemoveEmitsRosterEvent(t *testing.T) {
	store := newTestStore()
	publisher := &recordingPublisher{}
	svc := NewService(store, publisher, zaptest.NewLogger(t))

	err := svc.Remove(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"Chess Club/michael@mergington.edu"}, store.removals)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0]
	require.Equal(t, events.TypeRemoved, event.Type)
	require.Equal(t, "Chess Club", event.Activity)
	require.Equal(t, "michael@mergington.edu", event.Email)
}

func TestRemoveRequiresEmail(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, nil, nil)

	err := svc.Remove(context.Background(), "Chess Club", "")
	require.ErrorIs(t, err, ErrEmailRequired)
	require.Empty(t, store.removals)
}

func TestRemoveStoreErrorSkipsEvent(t *testing.T) {
	store := newTestStore()
	store.removeErr = ErrParticipantNotFound
	publisher := &recordingPublisher{}
	svc := NewService(store, publisher, zaptest.NewLogger(t))

	err := svc.Remove(context.Background(), "Chess Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, ErrParticipantNotFound)
	require.Empty(t, publisher.published)
}

func TestNewServiceDefaultsPublisher(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, nil, nil)

	// With no publisher wired, roster changes still succeed.
	err := svc.Signup(context.Background(), "Chess Club", "emma@mergington.edu")
	require.NoError(t, err)
}

func TestListActivitiesPassesThrough(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, nil, nil)

	activities, err := svc.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Contains(t, activities, "Chess Club")
}
