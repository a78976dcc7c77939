package adopt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid adopt request")

type Request struct {
	Name    string
	Species pet.Species
	Color   pet.ColorVariant
}

type Response struct {
	State     pet.PetStateAggregate `json:"state"`
	Inventory pet.Inventory         `json:"inventory"`
}

// UseCase creates a fresh egg with full vitals and the starter inventory.
type UseCase struct {
	TxManager     ports.TxManager
	StateRepo     ports.PetStateRepository
	InventoryRepo ports.InventoryRepository
	EventRepo     ports.EventRepository
	Notifier      ports.Notifier
	NewID         func() string
	Now           func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || !isSupportedSpecies(req.Species) || !isSupportedColor(req.Color) {
		return Response{}, ErrInvalidRequest
	}

	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	now := nowFn()
	state := pet.NewPetState(newID(), req.Name, req.Species, req.Color, now)
	inv := pet.NewInventory(state.PetID)

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.StateRepo.SaveWithVersion(txCtx, state, 0); err != nil {
			return err
		}
		if err := u.InventoryRepo.Save(txCtx, inv); err != nil {
			return err
		}
		return u.EventRepo.Append(txCtx, state.PetID, []pet.DomainEvent{{
			Type:       "pet_adopted",
			OccurredAt: now,
			Payload: map[string]any{
				"name":    state.Name,
				"species": string(state.Species),
				"color":   string(state.Color),
			},
		}})
	})
	if err != nil {
		return Response{}, err
	}

	if u.Notifier != nil {
		u.Notifier.Notify(ctx, state.PetID, ports.SeverityInfo, "an egg arrived, keep it warm until it hatches")
	}
	return Response{State: state, Inventory: inv}, nil
}

func isSupportedSpecies(s pet.Species) bool {
	return s == pet.SpeciesCat || s == pet.SpeciesDog
}

func isSupportedColor(c pet.ColorVariant) bool {
	switch c {
	case pet.ColorWhite, pet.ColorBlack, pet.ColorBrown:
		return true
	default:
		return false
	}
}
