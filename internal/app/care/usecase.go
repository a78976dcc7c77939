package care

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid care request")

type UseCase struct {
	TxManager     ports.TxManager
	StateRepo     ports.PetStateRepository
	InventoryRepo ports.InventoryRepository
	EventRepo     ports.EventRepository
	Notifier      ports.Notifier
	Metrics       ports.ActionMetrics
	Life          pet.LifecycleService
	Now           func() time.Time
	Roll          func() float64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" || !isSupportedAction(req.Action) {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rollFn := u.Roll
	if rollFn == nil {
		rollFn = rand.Float64
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPetID(txCtx, req.PetID)
		if err != nil {
			return err
		}
		inv, err := u.InventoryRepo.GetByPetID(txCtx, req.PetID)
		if err != nil {
			if !errors.Is(err, ports.ErrNotFound) {
				return err
			}
			inv = pet.NewInventory(req.PetID)
		}

		outcome, err := u.Life.ApplyCare(state, inv, req.Action, nowFn(), rollFn())
		if err != nil {
			return err
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, outcome.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.InventoryRepo.Save(txCtx, outcome.Inventory); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, outcome.Events); err != nil {
			return err
		}

		out = Response{
			UpdatedState: outcome.UpdatedState,
			Inventory:    outcome.Inventory,
			Events:       outcome.Events,
		}
		return nil
	})
	if err != nil {
		u.recordFailure(err)
		if u.Notifier != nil && isPreconditionErr(err) {
			u.Notifier.Notify(ctx, req.PetID, ports.SeverityWarning, err.Error())
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordSuccess(pet.ResultOK)
	}
	if u.Notifier != nil {
		u.Notifier.Notify(ctx, req.PetID, ports.SeveritySuccess, successMessage(req.Action, out.UpdatedState))
	}
	return out, nil
}

func (u UseCase) recordFailure(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	u.Metrics.RecordFailure()
}

func isSupportedAction(a pet.CareAction) bool {
	switch a {
	case pet.CareFeed, pet.CareClean, pet.CareMedicine, pet.CareTreat, pet.CarePlay:
		return true
	default:
		return false
	}
}

func isPreconditionErr(err error) bool {
	for _, sentinel := range []error{
		pet.ErrPetDeceased, pet.ErrNotHatched,
		pet.ErrNoFood, pet.ErrNoSoap, pet.ErrNoMedicine, pet.ErrNoTreats,
		pet.ErrLowEnergy,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func successMessage(action pet.CareAction, state pet.PetStateAggregate) string {
	name := state.Name
	if name == "" {
		name = "your pet"
	}
	switch action {
	case pet.CareFeed:
		return name + " enjoyed the meal"
	case pet.CareClean:
		return name + " is squeaky clean"
	case pet.CareMedicine:
		if state.Sick {
			return name + " took the medicine but still feels unwell"
		}
		return name + " is feeling better"
	case pet.CareTreat:
		return name + " loved the treat"
	default:
		return name + " had fun playing"
	}
}
