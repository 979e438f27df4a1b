package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the common cause of every failed table lookup.
	ErrNotFound = errors.New("not found")

	ErrUnknownToken  = fmt.Errorf("unknown token: %w", ErrNotFound)
	ErrUnknownMarket = fmt.Errorf("unknown market: %w", ErrNotFound)
	ErrUnknownKey    = fmt.Errorf("unknown key: %w", ErrNotFound)

	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidAddress   = errors.New("invalid address")

	// ErrInvalidTable is returned when the deployment table fails validation.
	ErrInvalidTable = errors.New("invalid deployment table")
)
