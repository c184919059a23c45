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

// Package shell implements the interactive banking menu. It is a
// two-state loop (running, terminated) over an injected reader and
// writer; all account state lives behind the Teller service.
package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/internal/tellerror"
	"github.com/tellerhq/teller/model"
)

// Menu choices. Choice 6 is the only transition out of the loop.
const (
	choiceCreateAccount = 1
	choiceDeposit       = 2
	choiceWithdraw      = 3
	choiceCheckBalance  = 4
	choiceListAccounts  = 5
	choiceExit          = 6
)

// TransactionKind selects which account operation a transaction action
// performs. Each kind carries its own prompt text and bound operation,
// so there is no string-tag dispatch between deposit and withdrawal.
type TransactionKind int

const (
	KindDeposit TransactionKind = iota
	KindWithdraw
)

func (k TransactionKind) prompt(symbol string) string {
	if k == KindDeposit {
		return fmt.Sprintf("Enter Deposit Amount: %s", symbol)
	}
	return fmt.Sprintf("Enter Withdrawal Amount: %s", symbol)
}

func (k TransactionKind) verb() string {
	if k == KindDeposit {
		return "Deposited"
	}
	return "Withdrew"
}

func (k TransactionKind) noun() string {
	if k == KindDeposit {
		return "Deposit"
	}
	return "Withdrawal"
}

func (k TransactionKind) apply(t *teller.Teller, number string, amount decimal.Decimal) (*model.Account, error) {
	if k == KindDeposit {
		return t.Deposit(number, amount)
	}
	return t.Withdraw(number, amount)
}

// amountRule is the validation applied by promptAmount's retry loop.
type amountRule int

const (
	requireNonNegative amountRule = iota
	requirePositive
)

// Shell drives the interactive menu over the given reader and writer.
type Shell struct {
	teller *teller.Teller
	in     *bufio.Scanner
	out    io.Writer
}

// New builds a shell bound to the given teller and I/O streams.
func New(t *teller.Teller, in io.Reader, out io.Writer) *Shell {
	return &Shell{teller: t, in: bufio.NewScanner(in), out: out}
}

// Run executes the menu loop until the exit choice is entered or the
// input stream is closed. Every other recognized choice performs its
// action and returns to the menu; bad input is discarded line by line.
func (s *Shell) Run() error {
	cnf, err := config.Fetch()
	if err != nil {
		return err
	}

	s.printBanner(cnf.ProjectName)

	for {
		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			break // input closed, same as exit
		}
		choice, err := ParseChoice(line)
		if err != nil {
			fmt.Fprintln(s.out, "\nERROR: Invalid input. Please enter a number.")
			continue
		}
		if choice == choiceExit {
			break
		}
		s.dispatch(choice, cnf)
	}

	fmt.Fprintln(s.out, "\nThank you for using the Banking System. Goodbye!")
	return s.in.Err()
}

func (s *Shell) dispatch(choice int, cnf *config.Configuration) {
	switch choice {
	case choiceCreateAccount:
		s.createAccount(cnf)
	case choiceDeposit:
		s.transaction(KindDeposit, cnf)
	case choiceWithdraw:
		s.transaction(KindWithdraw, cnf)
	case choiceCheckBalance:
		s.checkBalance(cnf)
	case choiceListAccounts:
		s.listAccounts(cnf)
	default:
		fmt.Fprintln(s.out, "\nInvalid choice. Please select a number between 1 and 6.")
	}
}

func (s *Shell) printBanner(projectName string) {
	fmt.Fprintln(s.out, "=========================================")
	fmt.Fprintf(s.out, "|| Welcome to the %s ||\n", projectName)
	fmt.Fprintln(s.out, "=========================================")
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\n--- MAIN MENU ---")
	fmt.Fprintln(s.out, "1. Create New Account")
	fmt.Fprintln(s.out, "2. Deposit Funds")
	fmt.Fprintln(s.out, "3. Withdraw Funds")
	fmt.Fprintln(s.out, "4. Check Balance")
	fmt.Fprintln(s.out, "5. View All Accounts")
	fmt.Fprintln(s.out, "6. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")
}

// readLine returns the next input line verbatim, or false when the
// input stream is exhausted.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// promptAmount re-prompts until a line parses as a number satisfying
// the rule. It returns false only when the input stream closes.
func (s *Shell) promptAmount(prompt string, rule amountRule) (decimal.Decimal, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return decimal.Zero, false
		}
		amount, err := ParseAmount(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid amount entered.")
			continue
		}
		if rule == requireNonNegative && amount.IsNegative() {
			fmt.Fprintln(s.out, "Deposit must be non-negative.")
			continue
		}
		if rule == requirePositive && !amount.IsPositive() {
			fmt.Fprintln(s.out, "Amount must be positive.")
			continue
		}
		return amount, true
	}
}

func (s *Shell) createAccount(cnf *config.Configuration) {
	fmt.Fprint(s.out, "Enter Account Holder Name: ")
	name, ok := s.readLine()
	if !ok {
		return
	}

	prompt := fmt.Sprintf("Enter Initial Deposit Amount (minimum %s0.00): %s", cnf.Currency.Symbol, cnf.Currency.Symbol)
	amount, ok := s.promptAmount(prompt, requireNonNegative)
	if !ok {
		return
	}

	account, err := s.teller.CreateAccount(teller.CreateAccountRequest{HolderName: name, InitialDeposit: amount})
	if err != nil {
		fmt.Fprintf(s.out, "\nERROR: %s\n", err)
		return
	}

	fmt.Fprintf(s.out, "\nSUCCESS: Account created for %s.\nAccount No: %s\n", account.HolderName, account.Number)
}

// findAccount prompts once for an account number. A miss reports an
// error and aborts the whole action; there is no retry for the number.
func (s *Shell) findAccount() (*model.Account, bool) {
	fmt.Fprint(s.out, "Enter Account Number: ")
	number, ok := s.readLine()
	if !ok {
		return nil, false
	}
	account, err := s.teller.CheckBalance(number)
	if err != nil {
		fmt.Fprintf(s.out, "\nERROR: Account not found with number %s\n", number)
		return nil, false
	}
	return account, true
}

func (s *Shell) transaction(kind TransactionKind, cnf *config.Configuration) {
	account, ok := s.findAccount()
	if !ok {
		return
	}

	amount, ok := s.promptAmount(kind.prompt(cnf.Currency.Symbol), requirePositive)
	if !ok {
		return
	}

	symbol := cnf.Currency.Symbol
	updated, err := kind.apply(s.teller, account.Number, amount)
	if err != nil {
		if kind == KindWithdraw && tellerror.CodeOf(err) == tellerror.ErrInsufficientFunds {
			fmt.Fprintln(s.out, "\nTRANSACTION FAILED: Insufficient funds or invalid amount.")
			fmt.Fprintf(s.out, "Current balance: %s%s\n", symbol, account.Balance.StringFixed(2))
			return
		}
		fmt.Fprintf(s.out, "\nTRANSACTION FAILED: %s error.\n", kind.noun())
		return
	}

	fmt.Fprintf(s.out, "\nSUCCESS: %s %s%s. New balance: %s%s\n",
		kind.verb(), symbol, amount.StringFixed(2), symbol, updated.Balance.StringFixed(2))
}

func (s *Shell) checkBalance(cnf *config.Configuration) {
	account, ok := s.findAccount()
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "\n*** Balance Check ***\nAccount Holder: %s\nCurrent Balance: %s%s\n",
		account.HolderName, cnf.Currency.Symbol, account.Balance.StringFixed(2))
}

func (s *Shell) listAccounts(cnf *config.Configuration) {
	accounts, err := s.teller.ListAccounts()
	if err != nil {
		fmt.Fprintf(s.out, "\nERROR: %s\n", err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "The bank currently has no registered accounts.")
		return
	}

	fmt.Fprintf(s.out, "\n--- All Bank Accounts Summary (%d) ---\n", len(accounts))
	for _, account := range accounts {
		fmt.Fprintln(s.out, account.Describe(cnf.Currency.Symbol))
	}
	fmt.Fprintln(s.out, "-----------------------------------------")
	fmt.Fprintln(s.out)
}
