package domain

import "errors"

var (
	// ErrInvalidConfig is returned by admission when the boost configuration
	// violates a numeric constraint. No record is created.
	ErrInvalidConfig = errors.New("invalid boost config")
	// ErrDuplicateActiveBoost is returned when the target already has an
	// active boost.
	ErrDuplicateActiveBoost = errors.New("target already has an active boost")
	// ErrPaymentAlreadyUsed is returned when a payment has already funded a boost.
	ErrPaymentAlreadyUsed = errors.New("payment already used by another boost")
	ErrBoostNotFound      = errors.New("boost not found")
	// ErrInvalidTransition is returned by manual lifecycle operations requested
	// from a status that does not permit them.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidArgument   = errors.New("invalid argument")
	// ErrConcurrencyExhausted is returned when a click could not be committed
	// after the bounded number of optimistic retries. Callers may retry.
	ErrConcurrencyExhausted = errors.New("too many concurrent updates")
)
