package catchup

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid catch-up request")

type Request struct {
	PetID string
}

type Response struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
	ResultCode   pet.ResultCode        `json:"result_code"`
	Events       []pet.DomainEvent     `json:"events"`
}

// UseCase reconciles a persisted snapshot with the downtime elapsed since
// it was last settled. It runs once per pet at boot and whenever a stale
// snapshot is loaded back into view.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PetStateRepository
	EventRepo ports.EventRepository
	Notifier  ports.Notifier
	Life      pet.LifecycleService
	Now       func() time.Time
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

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPetID(txCtx, req.PetID)
		if err != nil {
			return err
		}
		result, err := u.Life.CatchUp(state, nowFn())
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
		return Response{}, err
	}

	if u.Notifier != nil {
		name := out.UpdatedState.Name
		if name == "" {
			name = "your pet"
		}
		for _, ev := range out.Events {
			if ev.Type == "pet_died" {
				u.Notifier.Notify(ctx, req.PetID, ports.SeverityDanger, name+" did not survive the time away")
			}
		}
	}
	return out, nil
}

// ExecuteAll reconciles every persisted pet, logging and moving on when a
// single pet fails so one bad row cannot block boot.
func (u UseCase) ExecuteAll(ctx context.Context) error {
	ids, err := u.StateRepo.ListPetIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := u.Execute(ctx, Request{PetID: id}); err != nil {
			log.Printf("catch-up: pet %s: %v", id, err)
		}
	}
	return nil
}
