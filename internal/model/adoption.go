package model

import (
	"strings"
	"time"
)

// AdoptionRequest is a user's claim on a specific animal.
type AdoptionRequest struct {
	ID               string         `json:"id"`
	AnimalID         *string        `json:"animal_id"`
	RequesterID      string         `json:"requester_id"`
	RequesterName    string         `json:"requester_name"`
	RequesterContact string         `json:"requester_contact,omitempty"`
	RequestedAt      time.Time      `json:"requested_at"`
	Status           AdoptionStatus `json:"status"`
}

// AdoptionStatus is the lifecycle state of an adoption request.
type AdoptionStatus string

// Adoption statuses. Approved and Rejected are terminal.
const (
	AdoptionPending  AdoptionStatus = "Pending"
	AdoptionApproved AdoptionStatus = "Approved"
	AdoptionRejected AdoptionStatus = "Rejected"
)

// ParseAdoptionStatus maps s case-insensitively onto a known adoption status.
func ParseAdoptionStatus(s string) (AdoptionStatus, error) {
	for _, st := range []AdoptionStatus{AdoptionPending, AdoptionApproved, AdoptionRejected} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", Invalid("unknown adoption status %q", s)
}

// IsPending reports whether the request can still be decided.
func (r *AdoptionRequest) IsPending() bool {
	return strings.EqualFold(string(r.Status), string(AdoptionPending))
}

// DecisionStatus returns the terminal status for an approve/reject decision.
func DecisionStatus(approve bool) AdoptionStatus {
	if approve {
		return AdoptionApproved
	}
	return AdoptionRejected
}
