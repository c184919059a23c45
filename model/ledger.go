package model

import (
	"errors"
	"fmt"
	"math/rand"
)

// Ledger is the ordered in-memory collection of all accounts. Insertion
// order is preserved and accounts are never removed. It is owned by a
// single Teller instance for the process lifetime; nothing here is safe
// for concurrent use because the interactive shell is the only caller.
type Ledger struct {
	accounts []*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends an account to the ledger.
func (l *Ledger) Add(account *Account) {
	l.accounts = append(l.accounts, account)
}

// FindByNumber scans the ledger in insertion order and returns the
// first account whose number matches exactly, or ErrAccountNotFound.
func (l *Ledger) FindByNumber(number string) (*Account, error) {
	for _, account := range l.accounts {
		if account.Number == number {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

// All returns the accounts in insertion order. The returned slice is a
// copy so callers cannot reorder the ledger's own storage.
func (l *Ledger) All() []*Account {
	out := make([]*Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// Count returns the number of accounts in the ledger.
func (l *Ledger) Count() int {
	return len(l.accounts)
}

// NewAccountNumber draws a random zero-padded decimal account number of
// the given width that is not already in use. The draw is retried on
// collision up to maxAttempts times, so issued numbers are unique even
// in a small number space.
func (l *Ledger) NewAccountNumber(digits, maxAttempts int) (string, error) {
	space := int64(1)
	for i := 0; i < digits; i++ {
		space *= 10
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		number := fmt.Sprintf("%0*d", digits, rand.Int63n(space))
		if _, err := l.FindByNumber(number); errors.Is(err, ErrAccountNotFound) {
			return number, nil
		}
	}
	return "", ErrNumberSpaceExhausted
}
