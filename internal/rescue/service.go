// Package rescue implements the shelter's operations: animal intake,
// adoption decisions, report triage, task assignment and notifications.
// It is the only package that opens transactions.
package rescue

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/db"
)

// Notifier queues a message for a user without blocking. It reports
// whether the message was accepted.
type Notifier interface {
	Notify(recipientID, message string) bool
}

type discard struct{}

func (discard) Notify(string, string) bool { return false }

// Service runs rescue operations against a database.
type Service struct {
	db       *db.DB
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// New returns a Service. A nil notifier discards every notification.
func New(database *db.DB, notifier Notifier, opts ...Option) *Service {
	if notifier == nil {
		notifier = discard{}
	}
	s := &Service{
		db:       database,
		notifier: notifier,
		log:      zap.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// notify hands a message to the notifier. Failure to queue is logged and
// never surfaced to the caller.
func (s *Service) notify(recipientID, message string) bool {
	if s.notifier.Notify(recipientID, message) {
		return true
	}
	s.log.Warn("notification not queued", zap.String("recipient", recipientID))
	return false
}
