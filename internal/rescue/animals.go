package rescue

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/imaging"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

// RegisterAnimal records a new animal. An empty ID is generated and an
// empty status defaults to Available.
func (s *Service) RegisterAnimal(ctx context.Context, a model.Animal) (*model.Animal, error) {
	if a.ID == "" {
		a.ID = s.newID()
	}
	if a.Status == "" {
		a.Status = model.AnimalAvailable
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := store.CreateAnimal(ctx, s.db, &a); err != nil {
		return nil, err
	}
	s.log.Info("animal registered", zap.String("animal", a.ID), zap.String("status", string(a.Status)))
	return &a, nil
}

// UpdateAnimal replaces an animal's specifications, medical report and status.
func (s *Service) UpdateAnimal(ctx context.Context, a model.Animal) (*model.Animal, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := store.UpdateAnimal(ctx, s.db, &a); err != nil {
		return nil, err
	}
	return store.GetAnimal(ctx, s.db, a.ID)
}

// SetAnimalStatus moves an animal to status.
func (s *Service) SetAnimalStatus(ctx context.Context, id, status string) error {
	st, err := model.ParseAnimalStatus(status)
	if err != nil {
		return err
	}
	return store.SetAnimalStatus(ctx, s.db, id, st)
}

// DeleteAnimal removes an animal. Requests and reports that referenced it
// keep existing with the reference cleared.
func (s *Service) DeleteAnimal(ctx context.Context, id string) error {
	if err := store.DeleteAnimal(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("animal deleted", zap.String("animal", id))
	return nil
}

// ListAnimals returns animals, optionally only those in statusFilter.
func (s *Service) ListAnimals(ctx context.Context, statusFilter string) ([]model.Animal, error) {
	var status model.AnimalStatus
	if statusFilter != "" {
		var err error
		if status, err = model.ParseAnimalStatus(statusFilter); err != nil {
			return nil, err
		}
	}
	return store.ListAnimals(ctx, s.db, status)
}

// GetAnimal returns one animal.
func (s *Service) GetAnimal(ctx context.Context, id string) (*model.Animal, error) {
	return store.GetAnimal(ctx, s.db, id)
}

// PhotoURL is where an animal's stored photo is served.
func PhotoURL(animalID string) string {
	return "/api/animals/" + animalID + "/photo"
}

// SetAnimalPhoto normalises an uploaded photo, stores it and points the
// animal's photo URL at it.
func (s *Service) SetAnimalPhoto(ctx context.Context, id string, r io.Reader) (*model.Animal, error) {
	photo, err := imaging.Process(r)
	if err != nil {
		return nil, err
	}

	var a *model.Animal
	err = s.db.InTx(ctx, func(q db.Conn) error {
		if err := store.SetAnimalPhoto(ctx, q, id, photo.Data, photo.MIME, PhotoURL(id)); err != nil {
			return err
		}
		a, err = store.GetAnimal(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetAnimalPhoto returns the stored photo bytes and MIME type.
func (s *Service) GetAnimalPhoto(ctx context.Context, id string) ([]byte, string, error) {
	return store.GetAnimalPhoto(ctx, s.db, id)
}
