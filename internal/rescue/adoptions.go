package rescue

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

// DecisionResult reports what a decision changed.
type DecisionResult struct {
	Request            model.AdoptionRequest `json:"request"`
	AnimalAdopted      bool                  `json:"animal_adopted"`
	NotificationQueued bool                  `json:"notification_queued"`
}

// DecideAdoption approves or rejects a pending adoption request.
//
// The status change and, on approval, the animal's move to Adopted commit
// together. The requester is notified only after the commit. An unknown
// request is model.ErrNotFound and a request that was already decided is
// model.ErrNotPending. Approving a request whose animal is already Adopted
// is model.ErrConflict. None of these write anything.
func (s *Service) DecideAdoption(ctx context.Context, requestID string, approve bool) (DecisionResult, error) {
	var res DecisionResult

	err := s.db.InTx(ctx, func(q db.Conn) error {
		req, err := store.GetAdoptionRequest(ctx, q, requestID)
		if err != nil {
			return err
		}
		if !req.IsPending() {
			return fmt.Errorf("adoption request %s is %s: %w", requestID, req.Status, model.ErrNotPending)
		}

		status := model.DecisionStatus(approve)
		if err := store.DecideAdoptionRequest(ctx, q, requestID, status); err != nil {
			return err
		}
		req.Status = status

		if approve && req.AnimalID != nil {
			err := store.AdoptAnimal(ctx, q, *req.AnimalID)
			switch {
			case err == nil:
				res.AnimalAdopted = true
			case errors.Is(err, model.ErrNotFound):
				s.log.Warn("approved request references a missing animal",
					zap.String("request", requestID),
					zap.String("animal", *req.AnimalID),
				)
			default:
				return err
			}
		}

		res.Request = *req
		return nil
	})
	if err != nil {
		return DecisionResult{}, err
	}

	res.NotificationQueued = s.notify(res.Request.RequesterID, decisionMessage(res.Request))

	s.log.Info("adoption request decided",
		zap.String("request", requestID),
		zap.String("status", string(res.Request.Status)),
		zap.Bool("animal_adopted", res.AnimalAdopted),
	)
	return res, nil
}

func decisionMessage(r model.AdoptionRequest) string {
	animal := "?"
	if r.AnimalID != nil {
		animal = *r.AnimalID
	}
	return fmt.Sprintf("Your adoption request for animal ID %s has been %s.", animal, r.Status)
}

// RequestAdoption files a pending request by requesterID for an available
// animal. The requester's name and contact are copied onto the request.
func (s *Service) RequestAdoption(ctx context.Context, requesterID, animalID string) (*model.AdoptionRequest, error) {
	var req *model.AdoptionRequest

	err := s.db.InTx(ctx, func(q db.Conn) error {
		user, err := store.GetUser(ctx, q, requesterID)
		if err != nil {
			return err
		}
		animal, err := store.GetAnimal(ctx, q, animalID)
		if err != nil {
			return err
		}
		if animal.Status != model.AnimalAvailable {
			return fmt.Errorf("animal %s is %s: %w", animalID, animal.Status, model.ErrConflict)
		}

		req = &model.AdoptionRequest{
			ID:               s.newID(),
			AnimalID:         &animal.ID,
			RequesterID:      user.ID,
			RequesterName:    user.Name,
			RequesterContact: user.Contact,
			RequestedAt:      s.timestamp(),
			Status:           model.AdoptionPending,
		}
		return store.CreateAdoptionRequest(ctx, q, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ListAdoptionRequests returns requests newest first. An empty filter
// returns every request.
func (s *Service) ListAdoptionRequests(ctx context.Context, statusFilter string) ([]model.AdoptionRequest, error) {
	var status model.AdoptionStatus
	if statusFilter != "" {
		var err error
		if status, err = model.ParseAdoptionStatus(statusFilter); err != nil {
			return nil, err
		}
	}
	return store.ListAdoptionRequests(ctx, s.db, status)
}

// GetAdoptionRequest returns one request.
func (s *Service) GetAdoptionRequest(ctx context.Context, id string) (*model.AdoptionRequest, error) {
	return store.GetAdoptionRequest(ctx, s.db, id)
}
