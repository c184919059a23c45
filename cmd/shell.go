package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tellerhq/teller/internal/shell"
)

// shellCommands creates the command for the interactive banking menu.
// It is also what the root command runs when invoked bare.
func shellCommands(b *tellerInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "start the interactive banking shell",
		Run: func(cmd *cobra.Command, args []string) {
			runShell(b)
		},
	}

	return cmd
}

func runShell(b *tellerInstance) {
	sh := shell.New(b.teller, os.Stdin, os.Stdout)
	if err := sh.Run(); err != nil {
		logrus.Fatal(err)
	}
}
