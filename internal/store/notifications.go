package store

import (
	"context"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

// CreateNotification appends a notification. Recipients that do not exist
// fail the foreign key check.
func CreateNotification(ctx context.Context, q db.Conn, n *model.Notification) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO notifications (id, recipient_id, message, created_at, state) VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.RecipientID, n.Message, n.CreatedAt, n.State,
	)
	if err != nil {
		return writeErr("creating notification", err)
	}
	return nil
}

// ListNotifications returns a user's notifications, unread first, then newest first.
func ListNotifications(ctx context.Context, q db.Conn, recipientID string) ([]model.Notification, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, recipient_id, message, created_at, state
		 FROM notifications WHERE recipient_id = ?
		 ORDER BY CASE WHEN state = 'Unread' THEN 0 ELSE 1 END, created_at DESC, id`,
		recipientID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Message, &n.CreatedAt, &n.State); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead moves recipientID's notification to Read. Marking an
// already read notification is a no-op. Another user's notification is
// model.ErrNotFound.
func MarkNotificationRead(ctx context.Context, q db.Conn, id, recipientID string) error {
	res, err := q.ExecContext(ctx,
		`UPDATE notifications SET state = 'Read' WHERE id = ? AND recipient_id = ?`, id, recipientID,
	)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return mustAffect("marking notification read", res)
}
