package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
)

type EventType string

const (
	EventPostCreated    EventType = "post_created"
	EventLikeCreated    EventType = "like_created"
	EventCommentCreated EventType = "comment_created"
	EventFollowCreated  EventType = "follow_created"
)

// Event describes one committed domain write. ActorID performed the action;
// RecipientID, when set and different from the actor, is whose content or
// relationship was affected.
type Event struct {
	Type        EventType
	ActorID     uuid.UUID
	RecipientID uuid.UUID
	PostID      uuid.UUID
}

func (t EventType) actionPoints() int {
	if t == EventPostCreated {
		return 2
	}
	return 1
}

// Dispatcher is called synchronously by the create paths after their row is
// committed. Dispatch never returns an error: the triggering write already
// succeeded, so every reputation failure is logged and swallowed here.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

type dispatcher struct {
	log        *logger.Logger
	profiles   repos.ProfileRepo
	reputation ReputationService
}

func NewDispatcher(baseLog *logger.Logger, profiles repos.ProfileRepo, reputation ReputationService) Dispatcher {
	return &dispatcher{
		log:        baseLog.With("service", "EventDispatcher"),
		profiles:   profiles,
		reputation: reputation,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, event Event) {
	if event.ActorID == uuid.Nil {
		d.log.Warn("event without actor dropped", "event_type", event.Type)
		return
	}

	if err := d.profiles.Ensure(ctx, nil, event.ActorID); err != nil {
		d.log.Error("ensure actor profile failed", "event_type", event.Type,
			"actor_id", event.ActorID, "error", err)
	} else if err := d.profiles.IncrementActionPoints(ctx, nil, event.ActorID, event.Type.actionPoints()); err != nil {
		d.log.Error("action point increment failed", "event_type", event.Type,
			"actor_id", event.ActorID, "error", err)
	}

	if err := d.reputation.Recalc(ctx, event.ActorID); err != nil {
		d.log.Error("actor recalculation failed", "event_type", event.Type,
			"actor_id", event.ActorID, "error", err)
	}

	// Self-actions recalculate the actor once and nobody else.
	if event.RecipientID == uuid.Nil || event.RecipientID == event.ActorID {
		return
	}
	if err := d.reputation.Recalc(ctx, event.RecipientID); err != nil {
		d.log.Error("recipient recalculation failed", "event_type", event.Type,
			"recipient_id", event.RecipientID, "error", err)
	}
}
