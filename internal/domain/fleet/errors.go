package fleet

import "errors"

var (
	ErrConflict       = errors.New("vehicle already reserved for that range")
	ErrUnknownVehicle = errors.New("unknown vehicle")
	ErrNotFound       = errors.New("reservation not found")
	ErrInvalidState   = errors.New("reservation is not in a state allowing this change")
)
