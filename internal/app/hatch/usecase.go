package hatch

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid hatch request")

type Request struct {
	PetID string
}

type Response struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
}

// UseCase performs the manual egg→baby transition and restarts the birth
// clock. Decay begins only after this point.
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
		now := nowFn()
		next, err := u.Life.Hatch(state, now)
		if err != nil {
			return err
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, []pet.DomainEvent{{
			Type:       "egg_hatched",
			OccurredAt: now,
			Payload:    map[string]any{"species": string(next.Species)},
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
		u.Notifier.Notify(ctx, req.PetID, ports.SeveritySuccess, out.UpdatedState.Name+" hatched!")
	}
	return out, nil
}
