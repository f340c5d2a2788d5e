package model

import (
	"strings"
	"time"
)

// Report is a field sighting of a stray.
type Report struct {
	ID          string       `json:"id"`
	AnimalID    *string      `json:"animal_id"`
	ReporterID  *string      `json:"reporter_id"`
	FiledAt     time.Time    `json:"filed_at"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Urgency     Urgency      `json:"urgency"`
	PhotoURL    string       `json:"photo_url,omitempty"`
	Status      ReportStatus `json:"status"`
}

// Urgency ranks how quickly a report needs attention.
type Urgency string

// Urgency levels.
const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// ParseUrgency maps s case-insensitively onto a known urgency.
func ParseUrgency(s string) (Urgency, error) {
	for _, u := range []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical} {
		if strings.EqualFold(strings.TrimSpace(s), string(u)) {
			return u, nil
		}
	}
	return "", Invalid("unknown urgency %q", s)
}

// ReportStatus is the triage state of a report.
type ReportStatus string

// Report statuses.
const (
	ReportOpen       ReportStatus = "Open"
	ReportInProgress ReportStatus = "In Progress"
	ReportResolved   ReportStatus = "Resolved"
	ReportAssigned   ReportStatus = "Assigned"
)

// ParseReportStatus maps s case-insensitively onto a known report status.
// "Investigating" and "In-Progress" are accepted as In Progress.
func ParseReportStatus(s string) (ReportStatus, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(v, "investigating"), strings.EqualFold(v, "in-progress"):
		return ReportInProgress, nil
	}
	for _, st := range []ReportStatus{ReportOpen, ReportInProgress, ReportResolved, ReportAssigned} {
		if strings.EqualFold(v, string(st)) {
			return st, nil
		}
	}
	return "", Invalid("unknown report status %q", s)
}

// Validate checks a report about to be filed.
func (r *Report) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return Invalid("description required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return Invalid("location required")
	}
	if r.Urgency == "" {
		r.Urgency = UrgencyMedium
	}
	u, err := ParseUrgency(string(r.Urgency))
	if err != nil {
		return err
	}
	r.Urgency = u
	return nil
}

// Summary returns the first n runes of the description.
func (r *Report) Summary(n int) string {
	runes := []rune(r.Description)
	if len(runes) <= n {
		return r.Description
	}
	return string(runes[:n])
}
