package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wtlaunch/cmd/wtlaunch"
	"github.com/arthur-debert/wtlaunch/internal/version"
)

func main() {
	rootCmd := wtlaunch.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WTLAUNCH",
		Section: "1",
		Source:  "wtlaunch " + version.Version,
		Manual:  "wtlaunch manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
