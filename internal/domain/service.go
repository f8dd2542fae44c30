package domain

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"example.com/mergington/internal/events"
	"example.com/mergington/internal/observability"
)

// Service orchestrates roster changes against the registry and emits
// roster events for downstream consumers.
type Service struct {
	store  ActivityStore
	events events.Publisher
	logger *zap.Logger
}

// NewService constructs a Service.
func NewService(store ActivityStore, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, events: publisher, logger: logger}
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.store.List(ctx)
}

// Signup adds the email to the named activity's roster.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if err := s.store.Signup(ctx, name, email); err != nil {
		return err
	}
	observability.RecordSignup(name)
	s.emit(ctx, events.TypeSignedUp, name, email)
	return nil
}

// Remove deletes the email from the named activity's roster.
func (s *Service) Remove(ctx context.Context, name, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if err := s.store.Remove(ctx, name, email); err != nil {
		return err
	}
	observability.RecordRemoval(name)
	s.emit(ctx, events.TypeRemoved, name, email)
	return nil
}

// emit publishes a roster event. Publish failures are logged and counted;
// the roster change has already been applied and is never rolled back.
func (s *Service) emit(ctx context.Context, eventType, name, email string) {
	size := 0
	if act, err := s.store.Get(ctx, name); err == nil {
		size = len(act.Participants)
	}

	event := events.RosterEvent{
		Type:       eventType,
		Activity:   name,
		Email:      email,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("roster event publish failed",
			zap.String("event_type", eventType),
			zap.String("activity", name),
			zap.Error(err))
	}
}
