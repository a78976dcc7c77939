package shop

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid shop request")

type BuyRequest struct {
	PetID string
	Item  pet.ItemID
}

type BuyResponse struct {
	UpdatedState pet.PetStateAggregate `json:"updated_state"`
	Inventory    pet.Inventory         `json:"inventory"`
}

type CatalogResponse struct {
	Prices map[pet.ItemID]int `json:"prices"`
}

// UseCase sells consumables for coins. The catalog is fixed tuning data;
// purchases are atomic against the coin balance.
type UseCase struct {
	TxManager     ports.TxManager
	StateRepo     ports.PetStateRepository
	InventoryRepo ports.InventoryRepository
	EventRepo     ports.EventRepository
	Notifier      ports.Notifier
	Life          pet.LifecycleService
	Now           func() time.Time
}

func (u UseCase) Catalog() CatalogResponse {
	prices := make(map[pet.ItemID]int, len(pet.ItemPrices))
	for item, price := range pet.ItemPrices {
		prices[item] = price
	}
	return CatalogResponse{Prices: prices}
}

func (u UseCase) Buy(ctx context.Context, req BuyRequest) (BuyResponse, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" || req.Item == "" {
		return BuyResponse{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out BuyResponse
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

		next, nextInv, err := u.Life.Buy(state, inv, req.Item)
		if err != nil {
			return err
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.InventoryRepo.Save(txCtx, nextInv); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, []pet.DomainEvent{{
			Type:       "item_purchased",
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"item":  string(req.Item),
				"coins": next.Coins,
			},
		}}); err != nil {
			return err
		}
		out = BuyResponse{UpdatedState: next, Inventory: nextInv}
		return nil
	})
	if err != nil {
		if u.Notifier != nil && errors.Is(err, pet.ErrInsufficientCoins) {
			u.Notifier.Notify(ctx, req.PetID, ports.SeverityWarning, "not enough coins")
		}
		return BuyResponse{}, err
	}
	return out, nil
}
