package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Progress errors
	ErrMsgProgressNotFound   = "progress not found"
	ErrMsgCompletionNotFound = "completion not found"
	ErrMsgFutureDay          = "cannot complete a future day"
	ErrMsgDayLocked          = "next day is locked"
	ErrMsgDayOutOfRange      = "day out of range"

	// Token errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidTokenType  = "invalid token type"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgBalanceLimit      = "balance limit exceeded"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidUserID = "invalid user id"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrProgressNotFound   = errors.New(ErrMsgProgressNotFound)
	ErrCompletionNotFound = errors.New(ErrMsgCompletionNotFound)
	ErrFutureDay          = errors.New(ErrMsgFutureDay)
	ErrDayLocked          = errors.New(ErrMsgDayLocked)
	ErrDayOutOfRange      = errors.New(ErrMsgDayOutOfRange)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidTokenType  = errors.New(ErrMsgInvalidTokenType)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrBalanceLimit      = errors.New(ErrMsgBalanceLimit)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidUserID = errors.New(ErrMsgInvalidUserID)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// FutureDayError is returned when a user tries to complete a day past the one they are on
type FutureDayError struct {
	RequestedDay int
	CurrentDay   int
}

func (e FutureDayError) Error() string {
	return fmt.Sprintf("%s: requested day %d, current day %d", ErrMsgFutureDay, e.RequestedDay, e.CurrentDay)
}

// Is allows errors.Is(err, domain.ErrFutureDay)
func (e FutureDayError) Is(target error) bool {
	if target == ErrFutureDay {
		return true
	}
	_, ok := target.(FutureDayError)
	return ok
}

// LockedError is returned when a new day is requested before the unlock time
type LockedError struct {
	HoursLeft      int
	Remaining      time.Duration
	NextUnlockTime time.Time
}

func (e LockedError) Error() string {
	return fmt.Sprintf("%s: unlocks at %s (%dh remaining)",
		ErrMsgDayLocked, e.NextUnlockTime.UTC().Format(time.RFC3339), e.HoursLeft)
}

// Is allows errors.Is(err, domain.ErrDayLocked)
func (e LockedError) Is(target error) bool {
	if target == ErrDayLocked {
		return true
	}
	_, ok := target.(LockedError)
	return ok
}

// InsufficientFundsError is returned when a spend exceeds the balance
type InsufficientFundsError struct {
	TokenType TokenType
	Balance   int
	Requested int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: %s balance %d, requested %d", ErrMsgInsufficientFunds, e.TokenType, e.Balance, e.Requested)
}

// Is allows errors.Is(err, domain.ErrInsufficientFunds)
func (e InsufficientFundsError) Is(target error) bool {
	if target == ErrInsufficientFunds {
		return true
	}
	_, ok := target.(InsufficientFundsError)
	return ok
}
