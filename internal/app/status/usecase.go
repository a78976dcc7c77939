package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid status request")

type Request struct {
	PetID string
}

type Response struct {
	State     pet.PetStateAggregate `json:"state"`
	Inventory pet.Inventory         `json:"inventory"`
}

// UseCase is the read side: it renders the current snapshot without
// persisting anything. Age and the sleep recovery curve are recomputed at
// read time so the view is live even between settlement sweeps.
type UseCase struct {
	StateRepo     ports.PetStateRepository
	InventoryRepo ports.InventoryRepository
	Life          pet.LifecycleService
	Now           func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	state, err := u.StateRepo.GetByPetID(ctx, req.PetID)
	if err != nil {
		return Response{}, err
	}
	state = state.Normalized(now)
	state.AgeDays = pet.AgeDays(state.BirthAt, now)
	if state.Sleeping && state.SleepStartedAt != nil && state.SleepStartEnergy != nil {
		state.Vitals.Energy = pet.SleepEnergyAt(*state.SleepStartEnergy, *state.SleepStartedAt, now, u.Life.Tuning.SleepDuration)
	}

	inv, err := u.InventoryRepo.GetByPetID(ctx, req.PetID)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			return Response{}, err
		}
		inv = pet.NewInventory(req.PetID)
	}

	return Response{State: state, Inventory: inv}, nil
}
