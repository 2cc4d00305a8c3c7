package services

import (
	"context"

	"github.com/blognity/backend/internal/metrics"
	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
)

// NotificationService owns fan-out and the enriched read side
type NotificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
	posts         repositories.PostRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
) *NotificationService {
	return &NotificationService{
		notifications: notifRepo,
		users:         userRepo,
		posts:         postRepo,
	}
}

// EnrichedNotification is a notification with the actor's public profile
// and, for post references, the slug for link construction
type EnrichedNotification struct {
	models.Notification
	Actor    models.UserCompact `json:"actor"`
	PostSlug string             `json:"post_slug,omitempty"`
}

// Notify records a notification for a recipient. Self-targeted events are
// dropped. Each call is a single insert with no delivery guarantee beyond
// the row existing.
func (s *NotificationService) Notify(notifType string, actorID, recipientID uint, entityType string, entityID uint) error {
	if actorID == recipientID {
		return nil
	}
	err := s.notifications.CreateNotification(&models.Notification{
		Type:        notifType,
		ActorID:     actorID,
		RecipientID: recipientID,
		EntityType:  entityType,
		EntityID:    entityID,
	})
	if err != nil {
		return err
	}
	metrics.NotificationsCreated.WithLabelValues(notifType).Inc()
	return nil
}

// List returns the recipient's notifications, newest first, enriched with
// actor profiles and post slugs. A referenced entity that no longer exists
// leaves the reference empty instead of failing the list.
func (s *NotificationService) List(ctx context.Context, userID uint, page, limit int) ([]EnrichedNotification, int64, error) {
	notifications, total, err := s.notifications.GetByRecipientID(userID, page, limit)
	if err != nil {
		return nil, 0, translate(err)
	}

	actorCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedNotification, len(notifications))
	for i, n := range notifications {
		enriched[i] = EnrichedNotification{Notification: n}

		actor, ok := actorCache[n.ActorID]
		if !ok {
			user, err := s.users.GetUserByID(n.ActorID)
			if err == nil {
				actor = user.ToCompact()
				actorCache[n.ActorID] = actor
			}
		}
		enriched[i].Actor = actor

		if n.EntityType == models.EntityTypePost && n.EntityID != 0 {
			if post, err := s.posts.GetPostByID(ctx, n.EntityID); err == nil {
				enriched[i].PostSlug = post.Slug
			}
		}
	}
	return enriched, total, nil
}

// UnreadCount returns the number of unread notifications for a recipient
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	count, err := s.notifications.GetUnreadCount(userID)
	return count, translate(err)
}

// MarkAsRead marks one of the recipient's notifications as read
func (s *NotificationService) MarkAsRead(notificationID, userID uint) error {
	return translate(s.notifications.MarkAsRead(notificationID, userID))
}

// MarkAllAsRead marks all of the recipient's notifications as read
func (s *NotificationService) MarkAllAsRead(userID uint) error {
	return translate(s.notifications.MarkAllAsRead(userID))
}
