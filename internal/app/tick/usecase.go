package tick

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid tick request")

type Request struct {
	PetID string
}

type Response struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
	ResultCode   pet.ResultCode        `json:"result_code"`
	Events       []pet.DomainEvent     `json:"events"`
}

// DecayUseCase settles one nominal decay unit for a pet. The scheduler
// drives it on the tick cadence; sleeping and unhatched pets pass through
// as timestamp refreshes only.
type DecayUseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PetStateRepository
	EventRepo ports.EventRepository
	Notifier  ports.Notifier
	Metrics   ports.ActionMetrics
	Life      pet.LifecycleService
	Now       func() time.Time
}

func (u DecayUseCase) Execute(ctx context.Context, req Request) (Response, error) {
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
		if !state.Alive {
			out = Response{UpdatedState: state, ResultCode: pet.ResultDeceased}
			return nil
		}
		result, err := u.Life.Advance(state, 1.0, nowFn())
		if err != nil {
			return err
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, result.Events); err != nil {
			return err
		}
		out = Response{
			UpdatedState: result.UpdatedState,
			ResultCode:   result.ResultCode,
			Events:       result.Events,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.ResultCode)
	}
	u.notifyEvents(ctx, req.PetID, out.UpdatedState, out.Events)
	return out, nil
}

// ExecuteAll settles every persisted pet; a conflict on one pet (another
// writer got there first) is not an error for the sweep.
func (u DecayUseCase) ExecuteAll(ctx context.Context) error {
	ids, err := u.StateRepo.ListPetIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := u.Execute(ctx, Request{PetID: id}); err != nil && !errors.Is(err, ports.ErrConflict) {
			log.Printf("decay tick: pet %s: %v", id, err)
		}
	}
	return nil
}

func (u DecayUseCase) notifyEvents(ctx context.Context, petID string, state pet.PetStateAggregate, events []pet.DomainEvent) {
	if u.Notifier == nil {
		return
	}
	name := state.Name
	if name == "" {
		name = "your pet"
	}
	for _, ev := range events {
		switch ev.Type {
		case "pet_died":
			u.Notifier.Notify(ctx, petID, ports.SeverityDanger, name+" has passed away")
		case "danger_escalated":
			to, _ := ev.Payload["to"].(string)
			severity := ports.SeverityWarning
			if pet.DangerLevel(to) == pet.DangerDying {
				severity = ports.SeverityDanger
			}
			u.Notifier.Notify(ctx, petID, severity, name+" needs attention right now")
		}
	}
}

// SleepProgressUseCase re-evaluates the recovery curve for sleeping pets.
// The scheduler drives it on a much shorter cadence than decay; pets that
// are awake pass through untouched and unsaved.
type SleepProgressUseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PetStateRepository
	EventRepo ports.EventRepository
	Notifier  ports.Notifier
	Life      pet.LifecycleService
	Now       func() time.Time
}

func (u SleepProgressUseCase) Execute(ctx context.Context, req Request) (Response, error) {
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
			out = Response{UpdatedState: state, ResultCode: pet.ResultOK}
			return nil
		}
		result := u.Life.ApplySleepProgress(state, nowFn())
		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, result.Events); err != nil {
			return err
		}
		out = Response{
			UpdatedState: result.UpdatedState,
			ResultCode:   result.ResultCode,
			Events:       result.Events,
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Notifier != nil {
		for _, ev := range out.Events {
			if ev.Type == "sleep_completed" {
				u.Notifier.Notify(ctx, req.PetID, ports.SeveritySuccess, out.UpdatedState.Name+" is fully rested")
			}
		}
	}
	return out, nil
}

func (u SleepProgressUseCase) ExecuteAll(ctx context.Context) error {
	ids, err := u.StateRepo.ListPetIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := u.Execute(ctx, Request{PetID: id}); err != nil && !errors.Is(err, ports.ErrConflict) {
			log.Printf("sleep tick: pet %s: %v", id, err)
		}
	}
	return nil
}
