package services

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrUnknownMenuItem = errors.New("menu item not found")
	ErrUnknownCategory = errors.New("menu category not found")
	ErrUnknownView     = errors.New("unknown view")
	ErrOrderNotFound   = errors.New("order history entry not found")
	ErrTableOutOfRange = errors.New("table number must be between 1 and 15")
)
