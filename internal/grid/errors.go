package grid

import "errors"

var (
	ErrIncorrectPage     = errors.New("incorrect page")
	ErrIncorrectInstance = errors.New("incorrect grid instance")
)
