package main

import (
	"os"

	"github.com/arthur-debert/wtlaunch/cmd/wtlaunch"
	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/output"
)

func main() {
	rootCmd := wtlaunch.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewPrinter(os.Stderr, output.DetectFormat(os.Stderr)).Error(err)
		os.Exit(errors.ExitCode(err))
	}
}
