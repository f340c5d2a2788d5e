package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

func TestReportLifecycle(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	r := &model.Report{
		ID: "r1", FiledAt: testTime, Description: "limping dog", Location: "Tivoli",
		Urgency: model.UrgencyHigh, Status: model.ReportOpen,
	}
	if err := CreateReport(ctx, database, r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if err := SetReportStatus(ctx, database, "r1", model.ReportInProgress); err != nil {
		t.Fatalf("SetReportStatus: %v", err)
	}

	got, err := GetReport(ctx, database, "r1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got.Status != model.ReportInProgress || got.ReporterID != nil || got.AnimalID != nil {
		t.Errorf("unexpected report %+v", got)
	}

	if err := SetReportStatus(ctx, database, "nope", model.ReportResolved); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	reports, err := ListReports(ctx, database)
	if err != nil || len(reports) != 1 {
		t.Errorf("ListReports = %v, %v", reports, err)
	}
}

func TestTaskAssignment(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	mustCreateUser(t, database, "v1", "Bor", model.RoleVolunteer)
	for i, id := range []string{"t1", "t2"} {
		if err := CreateTask(ctx, database, &model.Task{
			ID: id, Description: "feed " + id, Status: model.TaskOpen, Date: testTime.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	if err := AssignTask(ctx, database, "t2", strPtr("v1")); err != nil {
		t.Fatalf("AssignTask: %v", err)
	}

	mine, err := ListTasks(ctx, database, "v1")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "t2" {
		t.Errorf("expected [t2], got %+v", mine)
	}

	if err := AssignTask(ctx, database, "t2", nil); err != nil {
		t.Fatalf("unassigning: %v", err)
	}
	got, _ := GetTask(ctx, database, "t2")
	if got.AssigneeID != nil {
		t.Errorf("expected unassigned, got %q", *got.AssigneeID)
	}

	if err := SetTaskStatus(ctx, database, "t1", model.TaskDone); err != nil {
		t.Fatalf("SetTaskStatus: %v", err)
	}
	if err := AssignTask(ctx, database, "nope", nil); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	all, _ := ListTasks(ctx, database, "")
	if len(all) != 2 || all[0].ID != "t1" || all[0].Status != model.TaskDone {
		t.Errorf("unexpected tasks %+v", all)
	}
}

func TestNotificationsOrderAndRead(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	mustCreateUser(t, database, "u1", "Ana", model.RolePerson)
	mustCreateUser(t, database, "u2", "Bor", model.RolePerson)
	for i, id := range []string{"n1", "n2", "n3"} {
		if err := CreateNotification(ctx, database, &model.Notification{
			ID: id, RecipientID: "u1", Message: id, CreatedAt: testTime.Add(time.Duration(i) * time.Minute),
			State: model.NotificationUnread,
		}); err != nil {
			t.Fatalf("CreateNotification: %v", err)
		}
	}

	if err := MarkNotificationRead(ctx, database, "n2", "u2"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound for another user's notification, got %v", err)
	}
	if err := MarkNotificationRead(ctx, database, "n3", "u1"); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	// Marking twice is harmless.
	if err := MarkNotificationRead(ctx, database, "n3", "u1"); err != nil {
		t.Fatalf("MarkNotificationRead again: %v", err)
	}

	list, err := ListNotifications(ctx, database, "u1")
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	var order []string
	for _, n := range list {
		order = append(order, n.ID)
	}
	want := []string{"n2", "n1", "n3"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}

	if err := MarkNotificationRead(ctx, database, "nope", "u1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := CreateNotification(ctx, database, &model.Notification{
		ID: "n4", RecipientID: "ghost", Message: "x", CreatedAt: testTime, State: model.NotificationUnread,
	}); err == nil {
		t.Error("expected foreign key failure for unknown recipient")
	}
}
