package pet

import "errors"

var (
	ErrInvalidUnits = errors.New("invalid decay units")

	ErrPetDeceased    = errors.New("pet is deceased")
	ErrNotHatched     = errors.New("pet has not hatched yet")
	ErrAlreadyHatched = errors.New("pet already hatched")

	ErrNoFood     = errors.New("no food left")
	ErrNoSoap     = errors.New("no soap left")
	ErrNoMedicine = errors.New("no medicine left")
	ErrNoTreats   = errors.New("no treats left")
	ErrLowEnergy  = errors.New("not enough energy to play")

	ErrAlreadySleeping = errors.New("pet is already sleeping")

	ErrInsufficientCoins = errors.New("not enough coins")
	ErrUnknownItem       = errors.New("unknown shop item")

	ErrUnknownCareAction = errors.New("unknown care action")
)
