package model

import "time"

// Notification is an append-only message for one user.
type Notification struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipient_id"`
	Message     string            `json:"message"`
	CreatedAt   time.Time         `json:"created_at"`
	State       NotificationState `json:"state"`
}

// NotificationState only ever moves from Unread to Read.
type NotificationState string

// Notification states.
const (
	NotificationUnread NotificationState = "Unread"
	NotificationRead   NotificationState = "Read"
)
