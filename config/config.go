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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PROJECT_NAME    = "Simple Banking System"
	DEFAULT_CURRENCY_SYMBOL = "$"
	DEFAULT_NUMBER_DIGITS   = 9
	DEFAULT_NUMBER_ATTEMPTS = 100
)

var ConfigStore atomic.Value

type CurrencyConfig struct {
	Symbol string `json:"symbol" envconfig:"TELLER_CURRENCY_SYMBOL"`
}

type AccountNumberConfig struct {
	Digits      int `json:"digits" envconfig:"TELLER_ACCOUNT_NUMBER_DIGITS"`
	MaxAttempts int `json:"max_attempts" envconfig:"TELLER_ACCOUNT_NUMBER_MAX_ATTEMPTS"`
}

type Configuration struct {
	ProjectName   string              `json:"project_name" envconfig:"TELLER_PROJECT_NAME"`
	Currency      CurrencyConfig      `json:"currency"`
	AccountNumber AccountNumberConfig `json:"account_number"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("teller", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called teller.json with your config")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Currency.Symbol = strings.TrimSpace(cnf.Currency.Symbol)

	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}

	if cnf.Currency.Symbol == "" {
		cnf.Currency.Symbol = DEFAULT_CURRENCY_SYMBOL
	}

	if cnf.AccountNumber.Digits < 0 {
		log.Println("Error: Account number digits must not be negative.")
		return errors.New("account number digits must not be negative")
	}
	if cnf.AccountNumber.Digits == 0 {
		cnf.AccountNumber.Digits = DEFAULT_NUMBER_DIGITS
	}
	// int64 holds at most 19 decimal digits; cap below that so the
	// number space computation cannot overflow.
	if cnf.AccountNumber.Digits > 18 {
		log.Println("Error: Account number digits must be 18 or fewer.")
		return errors.New("account number digits must be 18 or fewer")
	}

	if cnf.AccountNumber.MaxAttempts <= 0 {
		cnf.AccountNumber.MaxAttempts = DEFAULT_NUMBER_ATTEMPTS
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
