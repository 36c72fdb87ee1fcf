package level

import "errors"

var (
	ErrInvalidLevel   = errors.New("invalid level")
	ErrInvalidPhysics = errors.New("invalid physics")
)
