package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrValidationFailed     = errors.New("validation failed")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
)
