// Package main is the entry point for the mcpack CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"mcpack/cmd/mcpack/commands"
	mcpackerrors "mcpack/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))

	var exitErr *mcpackerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(mcpackerrors.ExitUser)
}
