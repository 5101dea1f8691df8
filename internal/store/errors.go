package store

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicatePosition = errors.New("a holding for this account and stock already exists")
	ErrSharesNotPositive = errors.New("shares must be greater than zero")
	ErrNegativeCost      = errors.New("average cost must not be negative")
	ErrNegativePrice     = errors.New("current price must not be negative")
)
