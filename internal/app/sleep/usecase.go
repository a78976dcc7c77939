package sleep

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid sleep request")

type Request struct {
	PetID string
}

type Response struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
}

// StartUseCase puts the pet to sleep and records the recovery sub-state.
type StartUseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PetStateRepository
	EventRepo ports.EventRepository
	Notifier  ports.Notifier
	Life      pet.LifecycleService
	Now       func() time.Time
}

func (u StartUseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPetID(txCtx, req.PetID)
		if err != nil {
			return err
		}
		now := nowFn()
		next, err := u.Life.StartSleep(state, now)
		if err != nil {
			return err
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, []pet.DomainEvent{{
			Type:       "sleep_started",
			OccurredAt: now,
			Payload:    map[string]any{"energy": next.Vitals.Energy},
		}}); err != nil {
			return err
		}
		out = Response{UpdatedState: next}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Notifier != nil {
		u.Notifier.Notify(ctx, req.PetID, ports.SeverityInfo, out.UpdatedState.Name+" fell asleep")
	}
	return out, nil
}

// WakeUseCase ends sleep early; waking an awake pet is a harmless no-op.
type WakeUseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PetStateRepository
	EventRepo ports.EventRepository
	Life      pet.LifecycleService
	Now       func() time.Time
}

func (u WakeUseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPetID(txCtx, req.PetID)
		if err != nil {
			return err
		}
		if !state.Sleeping {
			out = Response{UpdatedState: state}
			return nil
		}
		now := nowFn()
		// Settle accrued recovery before clearing the sub-state so an early
		// wake keeps the energy earned so far.
		progressed := u.Life.ApplySleepProgress(state, now)
		next := u.Life.Wake(progressed.UpdatedState)
		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		events := append(progressed.Events, pet.DomainEvent{
			Type:       "pet_woke",
			OccurredAt: now,
			Payload:    map[string]any{"energy": next.Vitals.Energy},
		})
		if err := u.EventRepo.Append(txCtx, req.PetID, events); err != nil {
			return err
		}
		out = Response{UpdatedState: next}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
