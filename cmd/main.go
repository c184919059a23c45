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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/config"
)

// CLI wraps the root Cobra command for the teller application.
type CLI struct {
	cmd *cobra.Command
}

// tellerInstance holds the Teller instance and its configuration for
// the lifetime of the process. It is built once in preRun and passed
// into every command.
type tellerInstance struct {
	teller *teller.Teller
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the
// error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the Teller instance
// before any command runs.
func preRun(app *tellerInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newTeller, err := teller.NewTeller()
		if err != nil {
			log.Fatal(err)
		}

		app.teller = newTeller
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface for the teller application.
// Running the binary with no arguments starts the interactive shell.
func NewCLI() *CLI {
	var configFile string
	b := &tellerInstance{}

	var rootCmd = &cobra.Command{
		Use:   "teller",
		Short: "In-memory account ledger with an interactive shell",
		Run: func(cmd *cobra.Command, args []string) {
			runShell(b)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./teller.json", "Configuration file for the teller shell")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(shellCommands(b))

	return &CLI{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur
// during execution.
func (w CLI) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
