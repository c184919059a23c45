package model

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedger_AddAndFindByNumber(t *testing.T) {
	ledger := NewLedger()
	account := NewAccount("Alice", decimal.NewFromInt(100))
	account.Number = "000000001"
	ledger.Add(account)

	found, err := ledger.FindByNumber("000000001")
	assert.NoError(t, err)
	assert.Same(t, account, found)
}

func TestLedger_FindByNumberMissing(t *testing.T) {
	ledger := NewLedger()

	found, err := ledger.FindByNumber("999999999")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, found)
}

func TestLedger_FindByNumberReturnsFirstMatch(t *testing.T) {
	ledger := NewLedger()
	first := NewAccount("Alice", decimal.Zero)
	first.Number = "000000007"
	second := NewAccount("Bob", decimal.Zero)
	second.Number = "000000007"
	ledger.Add(first)
	ledger.Add(second)

	found, err := ledger.FindByNumber("000000007")
	assert.NoError(t, err)
	assert.Same(t, first, found)
}

func TestLedger_AllPreservesInsertionOrder(t *testing.T) {
	ledger := NewLedger()
	names := []string{"Alice", "Bob", "Carol"}
	for i, name := range names {
		account := NewAccount(name, decimal.Zero)
		account.Number = fmt.Sprintf("%09d", i+1)
		ledger.Add(account)
	}

	all := ledger.All()
	assert.Equal(t, 3, ledger.Count())
	assert.Len(t, all, 3)
	for i, account := range all {
		assert.Equal(t, names[i], account.HolderName)
	}
}

func TestLedger_NewAccountNumberWidth(t *testing.T) {
	ledger := NewLedger()

	number, err := ledger.NewAccountNumber(9, 100)
	assert.NoError(t, err)
	assert.Len(t, number, 9)
}

func TestLedger_NewAccountNumberAvoidsCollisions(t *testing.T) {
	// A single decimal digit leaves only ten possible numbers, so
	// uniqueness has to come from the collision re-draw.
	ledger := NewLedger()
	seen := map[string]bool{}

	for i := 0; i < 10; i++ {
		number, err := ledger.NewAccountNumber(1, 10000)
		assert.NoError(t, err)
		assert.False(t, seen[number], "number %s issued twice", number)
		seen[number] = true

		account := NewAccount("holder", decimal.Zero)
		account.Number = number
		ledger.Add(account)
	}

	// All ten numbers are taken now; allocation must give up.
	_, err := ledger.NewAccountNumber(1, 100)
	assert.ErrorIs(t, err, ErrNumberSpaceExhausted)
}
