package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewAccount(t *testing.T) {
	account := NewAccount("Alice", decimal.NewFromFloat(100))

	assert.Contains(t, account.AccountID, "acc_")
	assert.Equal(t, "Alice", account.HolderName)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
}

func TestNewAccountClampsNegativeInitialDeposit(t *testing.T) {
	account := NewAccount("Bob", decimal.NewFromInt(-50))

	assert.True(t, account.Balance.IsZero(), "negative initial deposit should clamp to zero, got %s", account.Balance)
}

func TestNewAccountAllowsEmptyHolderName(t *testing.T) {
	account := NewAccount("", decimal.Zero)

	assert.Empty(t, account.HolderName)
	assert.True(t, account.Balance.IsZero())
}

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name    string
		start   decimal.Decimal
		amount  decimal.Decimal
		wantErr error
		want    decimal.Decimal
	}{
		{
			name:   "positive amount is added",
			start:  decimal.NewFromInt(100),
			amount: decimal.NewFromFloat(50.25),
			want:   decimal.NewFromFloat(150.25),
		},
		{
			name:    "zero amount is rejected",
			start:   decimal.NewFromInt(100),
			amount:  decimal.Zero,
			wantErr: ErrInvalidAmount,
			want:    decimal.NewFromInt(100),
		},
		{
			name:    "negative amount is rejected",
			start:   decimal.NewFromInt(100),
			amount:  decimal.NewFromInt(-10),
			wantErr: ErrInvalidAmount,
			want:    decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount("Alice", tt.start)
			err := account.Deposit(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, account.Balance.Equal(tt.want), "balance = %s, want %s", account.Balance, tt.want)
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		start   decimal.Decimal
		amount  decimal.Decimal
		wantErr error
		want    decimal.Decimal
	}{
		{
			name:   "amount within balance is subtracted",
			start:  decimal.NewFromInt(100),
			amount: decimal.NewFromFloat(40.50),
			want:   decimal.NewFromFloat(59.50),
		},
		{
			name:   "full balance can be withdrawn to exactly zero",
			start:  decimal.NewFromInt(100),
			amount: decimal.NewFromInt(100),
			want:   decimal.Zero,
		},
		{
			name:    "amount above balance is rejected",
			start:   decimal.NewFromInt(100),
			amount:  decimal.NewFromFloat(100.01),
			wantErr: ErrInsufficientFunds,
			want:    decimal.NewFromInt(100),
		},
		{
			name:    "zero amount is rejected",
			start:   decimal.NewFromInt(100),
			amount:  decimal.Zero,
			wantErr: ErrInvalidAmount,
			want:    decimal.NewFromInt(100),
		},
		{
			name:    "negative amount is rejected",
			start:   decimal.NewFromInt(100),
			amount:  decimal.NewFromInt(-10),
			wantErr: ErrInvalidAmount,
			want:    decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount("Alice", tt.start)
			err := account.Withdraw(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, account.Balance.Equal(tt.want), "balance = %s, want %s", account.Balance, tt.want)
		})
	}
}

func TestAccount_DepositWithdrawSequence(t *testing.T) {
	account := NewAccount("Alice", decimal.NewFromFloat(100))

	assert.NoError(t, account.Deposit(decimal.NewFromFloat(50)))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(150)))

	assert.ErrorIs(t, account.Withdraw(decimal.NewFromInt(200)), ErrInsufficientFunds)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(150)))

	assert.NoError(t, account.Withdraw(decimal.NewFromInt(150)))
	assert.True(t, account.Balance.IsZero())
	assert.False(t, account.Balance.IsNegative())
}

func TestAccount_Describe(t *testing.T) {
	account := NewAccount("Alice", decimal.NewFromFloat(150))
	account.Number = "000000042"

	assert.Equal(t, "Account No: 000000042 | Holder: Alice | Balance: $150.00", account.Describe("$"))
	assert.Equal(t, account.Describe("$"), account.String())
}
