package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

type fakeStateRepo struct {
	state  pet.PetStateAggregate
	getErr error
	saves  int
}

func (f *fakeStateRepo) GetByPetID(ctx context.Context, petID string) (pet.PetStateAggregate, error) {
	if f.getErr != nil {
		return pet.PetStateAggregate{}, f.getErr
	}
	return f.state, nil
}

func (f *fakeStateRepo) SaveWithVersion(ctx context.Context, state pet.PetStateAggregate, expectedVersion int64) error {
	f.saves++
	return nil
}

func (f *fakeStateRepo) ListPetIDs(ctx context.Context) ([]string, error) { return nil, nil }

type fakeInventoryRepo struct {
	inv    pet.Inventory
	getErr error
}

func (f *fakeInventoryRepo) GetByPetID(ctx context.Context, petID string) (pet.Inventory, error) {
	if f.getErr != nil {
		return pet.Inventory{}, f.getErr
	}
	return f.inv, nil
}

func (f *fakeInventoryRepo) Save(ctx context.Context, inv pet.Inventory) error { return nil }

var (
	_ ports.PetStateRepository  = (*fakeStateRepo)(nil)
	_ ports.InventoryRepository = (*fakeInventoryRepo)(nil)
)

func testNow() time.Time { return time.Unix(1_700_000_000, 0).UTC() }

func TestExecuteReturnsSnapshotAndInventory(t *testing.T) {
	state := pet.NewPetState("pet-1", "Momo", pet.SpeciesCat, pet.ColorWhite, testNow().Add(-49*time.Hour))
	state.Stage = pet.StageBaby
	states := &fakeStateRepo{state: state}
	inv := pet.NewInventory("pet-1")
	inv.Food = 2
	uc := UseCase{
		StateRepo:     states,
		InventoryRepo: &fakeInventoryRepo{inv: inv},
		Life:          pet.NewLifecycleService(pet.DefaultTuning()),
		Now:           testNow,
	}

	resp, err := uc.Execute(context.Background(), Request{PetID: "pet-1"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.State.AgeDays != 2 {
		t.Fatalf("age = %d, want 2", resp.State.AgeDays)
	}
	if resp.Inventory.Food != 2 {
		t.Fatalf("food = %d, want 2", resp.Inventory.Food)
	}
	if states.saves != 0 {
		t.Fatal("status must not persist anything")
	}
}

func TestExecuteRendersLiveSleepEnergy(t *testing.T) {
	state := pet.NewPetState("pet-1", "Momo", pet.SpeciesCat, pet.ColorWhite, testNow().Add(-time.Hour))
	state.Stage = pet.StageBaby
	startedAt := testNow().Add(-150 * time.Second)
	energy := 40.0
	state.Sleeping = true
	state.SleepStartedAt = &startedAt
	state.SleepStartEnergy = &energy
	state.Vitals.Energy = 40
	uc := UseCase{
		StateRepo:     &fakeStateRepo{state: state},
		InventoryRepo: &fakeInventoryRepo{inv: pet.NewInventory("pet-1")},
		Life:          pet.NewLifecycleService(pet.DefaultTuning()),
		Now:           testNow,
	}

	resp, err := uc.Execute(context.Background(), Request{PetID: "pet-1"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.State.Vitals.Energy != 70 {
		t.Fatalf("energy = %v, want 70 halfway through recovery", resp.State.Vitals.Energy)
	}
}

func TestExecuteMissingInventoryDefaults(t *testing.T) {
	state := pet.NewPetState("pet-1", "Momo", pet.SpeciesCat, pet.ColorWhite, testNow())
	uc := UseCase{
		StateRepo:     &fakeStateRepo{state: state},
		InventoryRepo: &fakeInventoryRepo{getErr: ports.ErrNotFound},
		Life:          pet.NewLifecycleService(pet.DefaultTuning()),
		Now:           testNow,
	}

	resp, err := uc.Execute(context.Background(), Request{PetID: "pet-1"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Inventory.Food != 5 {
		t.Fatalf("expected starter inventory, got %+v", resp.Inventory)
	}
}

func TestExecuteUnknownPet(t *testing.T) {
	uc := UseCase{
		StateRepo:     &fakeStateRepo{getErr: ports.ErrNotFound},
		InventoryRepo: &fakeInventoryRepo{},
		Life:          pet.NewLifecycleService(pet.DefaultTuning()),
		Now:           testNow,
	}

	if _, err := uc.Execute(context.Background(), Request{PetID: "nope"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
