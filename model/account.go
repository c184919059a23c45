package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a single balance-bearing entry in the ledger. AccountID is
// the opaque internal identifier; Number is the human-facing account
// number users type into the shell to reference the account.
type Account struct {
	AccountID  string          `json:"account_id"`
	Number     string          `json:"number"`
	HolderName string          `json:"holder_name"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewAccount builds an account for the given holder. A negative initial
// deposit is clamped to zero, not rejected. The account number is
// assigned by the ledger when the account is added.
func NewAccount(holderName string, initialDeposit decimal.Decimal) *Account {
	if initialDeposit.IsNegative() {
		initialDeposit = decimal.Zero
	}
	return &Account{
		AccountID:  GenerateUUIDWithSuffix("acc"),
		HolderName: holderName,
		Balance:    initialDeposit,
		CreatedAt:  time.Now(),
	}
}

// Deposit adds amount to the balance. Amounts <= 0 are rejected and
// leave the balance untouched.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. Amounts <= 0 and amounts
// greater than the balance are rejected, so the balance can reach
// exactly zero but never goes negative.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Describe formats the account for display with the given currency
// symbol. The balance is always rendered with two decimal places.
func (a *Account) Describe(symbol string) string {
	return fmt.Sprintf("Account No: %s | Holder: %s | Balance: %s%s",
		a.Number, a.HolderName, symbol, a.Balance.StringFixed(2))
}

func (a *Account) String() string {
	return a.Describe("$")
}
