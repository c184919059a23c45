/*
Copyright 2025 Teller Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package teller

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/internal/tellerror"
	"github.com/tellerhq/teller/model"
)

// CreateAccountRequest carries the inputs for opening an account. The
// holder name may be empty; the initial deposit must not be negative at
// this boundary (the shell re-prompts before it gets here, and the
// model constructor clamps as a last resort).
type CreateAccountRequest struct {
	HolderName     string
	InitialDeposit decimal.Decimal
}

func (r *CreateAccountRequest) ValidateCreateAccount() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.InitialDeposit, validation.By(func(value interface{}) error {
			amount, ok := value.(decimal.Decimal)
			if !ok {
				return errors.New("invalid type for initial deposit")
			}
			if amount.IsNegative() {
				return errors.New("initial deposit must not be negative")
			}
			return nil
		})),
	)
}

// CreateAccount opens a new account, assigns it a unique account
// number, and stores it in the ledger.
func (t *Teller) CreateAccount(req CreateAccountRequest) (*model.Account, error) {
	if err := req.ValidateCreateAccount(); err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrInvalidInput, "invalid create account request", err.Error())
	}

	cnf, err := config.Fetch()
	if err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrInternal, "configuration not loaded", err.Error())
	}

	number, err := t.ledger.NewAccountNumber(cnf.AccountNumber.Digits, cnf.AccountNumber.MaxAttempts)
	if err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrInternal, "could not allocate account number", err.Error())
	}

	account := model.NewAccount(req.HolderName, req.InitialDeposit)
	account.Number = number
	t.ledger.Add(account)

	logrus.Infof("created account %s for %q", account.Number, account.HolderName)
	return account, nil
}

// Deposit adds a positive amount to the account with the given number.
func (t *Teller) Deposit(number string, amount decimal.Decimal) (*model.Account, error) {
	account, err := t.ledger.FindByNumber(number)
	if err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrNotFound, fmt.Sprintf("account not found with number %s", number), nil)
	}
	if err := account.Deposit(amount); err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrInvalidInput, "deposit amount must be positive", err.Error())
	}
	return account, nil
}

// Withdraw subtracts a positive amount from the account with the given
// number, refusing to drive the balance below zero.
func (t *Teller) Withdraw(number string, amount decimal.Decimal) (*model.Account, error) {
	account, err := t.ledger.FindByNumber(number)
	if err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrNotFound, fmt.Sprintf("account not found with number %s", number), nil)
	}
	if err := account.Withdraw(amount); err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			return nil, tellerror.NewTellerError(tellerror.ErrInsufficientFunds, "insufficient funds", err.Error())
		}
		return nil, tellerror.NewTellerError(tellerror.ErrInvalidInput, "withdrawal amount must be positive", err.Error())
	}
	return account, nil
}

// CheckBalance looks up the account with the given number.
func (t *Teller) CheckBalance(number string) (*model.Account, error) {
	account, err := t.ledger.FindByNumber(number)
	if err != nil {
		return nil, tellerror.NewTellerError(tellerror.ErrNotFound, fmt.Sprintf("account not found with number %s", number), nil)
	}
	return account, nil
}

// ListAccounts returns all accounts in insertion order.
func (t *Teller) ListAccounts() ([]*model.Account, error) {
	return t.ledger.All(), nil
}
