package model

import "errors"

var (
	// ErrInvalidAmount rejects deposits and withdrawals of zero or
	// negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds rejects withdrawals larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when a lookup misses.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNumberSpaceExhausted is returned when a free account number
	// could not be drawn within the configured attempt budget.
	ErrNumberSpaceExhausted = errors.New("could not allocate an unused account number")
)
