package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownTarget      = errors.New("invalid target")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
)

// CooldownActiveError — цель мини-игры еще на кулдауне
type CooldownActiveError struct {
	RemainingSeconds int
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("Target under cooldown. Try again in %d seconds.", e.RemainingSeconds)
}
