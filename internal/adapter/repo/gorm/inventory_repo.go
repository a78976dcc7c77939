package gormrepo

import (
	"context"
	"errors"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return InventoryRepo{db: db}
}

func (r InventoryRepo) GetByPetID(ctx context.Context, petID string) (pet.Inventory, error) {
	var row inventoryRow
	if err := getDBFromCtx(ctx, r.db).Where("pet_id = ?", petID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pet.Inventory{}, ports.ErrNotFound
		}
		return pet.Inventory{}, err
	}
	return pet.Inventory{
		PetID:    row.PetID,
		Food:     row.Food,
		Medicine: row.Medicine,
		Treats:   row.Treats,
		Soap:     row.Soap,
	}, nil
}

func (r InventoryRepo) Save(ctx context.Context, inv pet.Inventory) error {
	row := inventoryRow{
		PetID:    inv.PetID,
		Food:     inv.Food,
		Medicine: inv.Medicine,
		Treats:   inv.Treats,
		Soap:     inv.Soap,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pet_id"}},
		UpdateAll: true,
	}).Create(&row).Error
}
