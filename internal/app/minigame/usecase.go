package minigame

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid minigame request")

type Request struct {
	PetID  string
	Game   string
	Reward pet.Reward
}

type Response struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
	Events       []pet.DomainEvent     `json:"events"`
}

// UseCase folds a finished minigame's reward into the pet. The games
// themselves run client-side; the core only validates and applies the
// declared outcome.
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
		if state.Stage == pet.StageEgg {
			return pet.ErrNotHatched
		}
		now := nowFn()
		next, events, err := u.Life.ApplyReward(state, req.Reward, now)
		if err != nil {
			return err
		}
		if req.Game != "" {
			for i := range events {
				if events[i].Type == "reward_applied" {
					events[i].Payload["game"] = req.Game
				}
			}
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, events); err != nil {
			return err
		}
		out = Response{UpdatedState: next, Events: events}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Notifier != nil {
		for _, ev := range out.Events {
			if ev.Type == "level_up" {
				u.Notifier.Notify(ctx, req.PetID, ports.SeveritySuccess, out.UpdatedState.Name+" leveled up!")
			}
		}
	}
	return out, nil
}
