package model

import (
	"errors"
	"testing"
)

func TestParseAnimalStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    AnimalStatus
		wantErr bool
	}{
		{"Available", AnimalAvailable, false},
		{"adopted", AnimalAdopted, false},
		{"IN TREATMENT", AnimalInTreatment, false},
		{" injured ", AnimalInjured, false},
		{"Lost", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAnimalStatus(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParseAnimalStatus(%q): expected ErrValidation, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAnimalStatus(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAnimalStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseReportStatusAliases(t *testing.T) {
	for _, in := range []string{"In Progress", "in-progress", "Investigating", "INVESTIGATING"} {
		got, err := ParseReportStatus(in)
		if err != nil {
			t.Fatalf("ParseReportStatus(%q): %v", in, err)
		}
		if got != ReportInProgress {
			t.Errorf("ParseReportStatus(%q) = %q, want %q", in, got, ReportInProgress)
		}
	}
	if _, err := ParseReportStatus("Closed"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown status, got %v", err)
	}
}

func TestIsPendingIgnoresCase(t *testing.T) {
	for _, s := range []string{"Pending", "pending", "PENDING"} {
		r := AdoptionRequest{Status: AdoptionStatus(s)}
		if !r.IsPending() {
			t.Errorf("expected %q to be pending", s)
		}
	}
	r := AdoptionRequest{Status: AdoptionApproved}
	if r.IsPending() {
		t.Error("approved request reported as pending")
	}
}

func TestDecisionStatus(t *testing.T) {
	if DecisionStatus(true) != AdoptionApproved {
		t.Error("approve should map to Approved")
	}
	if DecisionStatus(false) != AdoptionRejected {
		t.Error("reject should map to Rejected")
	}
}

func TestUserValidateRoleDetails(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"person", User{Name: "Ana", Email: "ana@example.com", Role: "person"}, false},
		{"volunteer", User{Name: "Bor", Email: "bor@example.com", Role: RoleVolunteer,
			Volunteer: &VolunteerDetails{Availability: "weekends"}}, false},
		{"volunteer without details", User{Name: "Bor", Email: "bor@example.com", Role: RoleVolunteer}, true},
		{"ngo", User{Name: "Cene", Email: "c@example.com", Role: RoleNGO,
			NGO: &NGODetails{OrgName: "Tačke"}}, false},
		{"ngo without org", User{Name: "Cene", Email: "c@example.com", Role: RoleNGO,
			NGO: &NGODetails{}}, true},
		{"person with details", User{Name: "Ana", Email: "ana@example.com", Role: RolePerson,
			NGO: &NGODetails{OrgName: "x"}}, true},
		{"unknown role", User{Name: "Ana", Email: "ana@example.com", Role: "Vet"}, true},
		{"bad email", User{Name: "Ana", Email: "ana", Role: RolePerson}, true},
		{"no name", User{Email: "ana@example.com", Role: RolePerson}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUserValidateNormalisesRole(t *testing.T) {
	u := User{Name: "Ana", Email: "ana@example.com", Role: "admin"}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Errorf("expected role %q, got %q", RoleAdmin, u.Role)
	}
}

func TestReportValidateDefaultsUrgency(t *testing.T) {
	r := Report{Description: "dog", Location: "park"}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if r.Urgency != UrgencyMedium {
		t.Errorf("expected default urgency Medium, got %q", r.Urgency)
	}

	r = Report{Description: "dog", Location: "park", Urgency: "apocalyptic"}
	if err := r.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestReportSummary(t *testing.T) {
	r := Report{Description: "čžš short"}
	if got := r.Summary(50); got != "čžš short" {
		t.Errorf("Summary = %q", got)
	}
	r.Description = "abcdefghij"
	if got := r.Summary(4); got != "abcd" {
		t.Errorf("Summary = %q, want abcd", got)
	}
}

func TestParseTaskStatus(t *testing.T) {
	got, err := ParseTaskStatus("done")
	if err != nil || got != TaskDone {
		t.Errorf("ParseTaskStatus(done) = %q, %v", got, err)
	}
	if _, err := ParseTaskStatus("Blocked"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
