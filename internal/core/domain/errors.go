package domain

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrEventNotFound = errors.New("event not found")
	ErrInternal      = errors.New("internal server error")
)
