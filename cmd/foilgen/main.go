// Package main is the entry point for the foilgen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/soypat/foil/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
