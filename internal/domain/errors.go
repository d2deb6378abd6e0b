package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrInvalidCategory    = errors.New("invalid product category")
	ErrPriceBelowMinimum  = errors.New("price below minimum")
	ErrPasswordMismatch   = errors.New("password confirmation mismatch")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
