package rescue

import (
	"context"
	"strings"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

// EnqueueNotification stores an Unread notification for recipientID and
// waits for the write. Workflow side effects go through the Notifier
// instead.
func (s *Service) EnqueueNotification(ctx context.Context, recipientID, message string) (*model.Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, model.Invalid("message required")
	}

	n := &model.Notification{
		ID:          s.newID(),
		RecipientID: recipientID,
		Message:     message,
		CreatedAt:   s.timestamp(),
		State:       model.NotificationUnread,
	}
	err := s.db.InTx(ctx, func(q db.Conn) error {
		if _, err := store.GetUser(ctx, q, recipientID); err != nil {
			return err
		}
		return store.CreateNotification(ctx, q, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ListNotifications returns a user's notifications, unread first, then
// newest first.
func (s *Service) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	return store.ListNotifications(ctx, s.db, userID)
}

// MarkNotificationRead marks one of recipientID's notifications as read.
// Notifications addressed to someone else are model.ErrNotFound.
func (s *Service) MarkNotificationRead(ctx context.Context, recipientID, id string) error {
	return store.MarkNotificationRead(ctx, s.db, id, recipientID)
}
