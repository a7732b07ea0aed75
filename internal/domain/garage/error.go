package garage

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("vehicle not found")
	ErrInvalidVehicle = errors.New("invalid vehicle")
)
