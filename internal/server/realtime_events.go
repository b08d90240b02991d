package server

import (
	"context"
	"encoding/json"
	"log"

	"ripple/internal/notifications"
)

// publishUserEvent fans an event out to one user: directly through the local
// hub and through Redis for any other instance holding their connection.
func (s *Server) publishUserEvent(userID uint, event notifications.Event) {
	if s.notifier != nil {
		if err := s.notifier.PublishEvent(context.Background(), userID, event); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", event.Type, userID, err)
		}
		return
	}
	// No Redis: deliver to local connections only.
	if s.hub != nil {
		eventJSON, err := json.Marshal(event)
		if err != nil {
			log.Printf("failed to marshal %s event: %v", event.Type, err)
			return
		}
		s.hub.Broadcast(userID, string(eventJSON))
	}
}

// notifyIfNotSelf publishes an event to target unless the actor is the target.
func (s *Server) notifyIfNotSelf(actorID, targetID uint, event notifications.Event) {
	if actorID == targetID {
		return
	}
	s.publishUserEvent(targetID, event)
}
