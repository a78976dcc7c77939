package replay

import (
	"context"
	"errors"
	"strings"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 100

type Request struct {
	PetID string
	Limit int
}

type Response struct {
	PetID  string            `json:"pet_id"`
	Events []pet.DomainEvent `json:"events"`
}

// UseCase returns the recorded lifecycle history of one pet, newest
// first, so a client can replay what happened while it was away.
type UseCase struct {
	StateRepo ports.PetStateRepository
	EventRepo ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	// Resolve the pet first so an unknown id is a not-found, not an
	// empty history.
	if _, err := u.StateRepo.GetByPetID(ctx, req.PetID); err != nil {
		return Response{}, err
	}

	events, err := u.EventRepo.ListByPetID(ctx, req.PetID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{PetID: req.PetID, Events: events}, nil
}
