package rescue

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

type sent struct {
	recipient string
	message   string
}

// recordingNotifier accepts every message and remembers it.
type recordingNotifier struct {
	mu     sync.Mutex
	sent   []sent
	reject bool
}

func (n *recordingNotifier) Notify(recipientID, message string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.reject {
		return false
	}
	n.sent = append(n.sent, sent{recipientID, message})
	return true
}

func (n *recordingNotifier) messages() []sent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sent(nil), n.sent...)
}

type fixture struct {
	svc      *Service
	db       *db.DB
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database := db.NewTestDB(t)
	notifier := &recordingNotifier{}

	var mu sync.Mutex
	clock := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	seq := 0

	svc := New(database, notifier,
		WithLogger(zaptest.NewLogger(t)),
		WithClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			clock = clock.Add(time.Second)
			return clock
		}),
		WithIDs(func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
	)
	return &fixture{svc: svc, db: database, notifier: notifier}
}

func (f *fixture) user(t *testing.T, name string, role model.Role) *model.User {
	t.Helper()
	u := model.User{Name: name, Email: name + "@example.com", Contact: "041 123 456", Role: role}
	switch role {
	case model.RoleVolunteer:
		u.Volunteer = &model.VolunteerDetails{Availability: "evenings"}
	case model.RoleNGO:
		u.NGO = &model.NGODetails{OrgName: name + " d.o.o."}
	}
	created, err := f.svc.CreateUser(context.Background(), u)
	require.NoError(t, err)
	return created
}

func (f *fixture) animal(t *testing.T, status model.AnimalStatus) *model.Animal {
	t.Helper()
	a, err := f.svc.RegisterAnimal(context.Background(), model.Animal{
		Specifications: "black cat, white paws", MedicalReport: "healthy", Status: status,
	})
	require.NoError(t, err)
	return a
}

// snapshot captures every row the adoption workflow could touch.
func (f *fixture) snapshot(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	reqs, err := store.ListAdoptionRequests(ctx, f.db, "")
	require.NoError(t, err)
	animals, err := store.ListAnimals(ctx, f.db, "")
	require.NoError(t, err)
	var notifications int
	require.NoError(t, f.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&notifications))

	var b strings.Builder
	for _, r := range reqs {
		animal := "-"
		if r.AnimalID != nil {
			animal = *r.AnimalID
		}
		fmt.Fprintf(&b, "req %s %s %s;", r.ID, animal, r.Status)
	}
	for _, a := range animals {
		fmt.Fprintf(&b, "animal %s %s;", a.ID, a.Status)
	}
	fmt.Fprintf(&b, "notifications %d", notifications)
	return b.String()
}
