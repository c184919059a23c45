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
	"github.com/tellerhq/teller/config"
	"github.com/tellerhq/teller/model"
)

// Teller is the service layer for the ledger. It owns the process's
// single Ledger instance; the shell calls into it and keeps no account
// state of its own.
type Teller struct {
	ledger *model.Ledger
}

// NewTeller initializes a new Teller instance with an empty ledger.
// The configuration must be loaded before calling this.
func NewTeller() (*Teller, error) {
	_, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	return &Teller{ledger: model.NewLedger()}, nil
}

// Ledger exposes the underlying ledger, mainly for tests.
func (t *Teller) Ledger() *model.Ledger {
	return t.ledger
}
