package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

// StoreSink appends delivered jobs to the notifications table as Unread.
type StoreSink struct {
	DB    db.Conn
	Now   func() time.Time
	NewID func() string
}

func (s StoreSink) Deliver(ctx context.Context, job Job) error {
	n := &model.Notification{
		ID:          s.NewID(),
		RecipientID: job.RecipientID,
		Message:     job.Message,
		CreatedAt:   s.Now().UTC(),
		State:       model.NotificationUnread,
	}
	if err := store.CreateNotification(ctx, s.DB, n); err != nil {
		return fmt.Errorf("delivering notification: %w", err)
	}
	return nil
}
