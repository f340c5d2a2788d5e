package model

import "strings"

// Animal is a stray taken in by the rescue.
type Animal struct {
	ID             string       `json:"id"`
	Specifications string       `json:"specifications"`
	PhotoURL       string       `json:"photo_url,omitempty"`
	MedicalReport  string       `json:"medical_report,omitempty"`
	Status         AnimalStatus `json:"status"`
}

// AnimalStatus is the availability state of an animal.
type AnimalStatus string

// Animal statuses.
const (
	AnimalAvailable   AnimalStatus = "Available"
	AnimalRescued     AnimalStatus = "Rescued"
	AnimalInjured     AnimalStatus = "Injured"
	AnimalAdopted     AnimalStatus = "Adopted"
	AnimalInTreatment AnimalStatus = "In Treatment"
)

var animalStatuses = []AnimalStatus{
	AnimalAvailable, AnimalRescued, AnimalInjured, AnimalAdopted, AnimalInTreatment,
}

// ParseAnimalStatus maps s case-insensitively onto a known animal status.
func ParseAnimalStatus(s string) (AnimalStatus, error) {
	for _, st := range animalStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", Invalid("unknown animal status %q", s)
}

// Validate checks the fields an animal record must carry.
func (a *Animal) Validate() error {
	if strings.TrimSpace(a.Specifications) == "" {
		return Invalid("specifications required")
	}
	st, err := ParseAnimalStatus(string(a.Status))
	if err != nil {
		return err
	}
	a.Status = st
	return nil
}
