package scene

import "errors"

var (
	ErrMeshNotFound = errors.New("mesh not found")
	ErrMeshExists   = errors.New("mesh already registered")
)
