package main

import (
	"github.com/TFMV/reconcile/cmd/reconcile"
)

func main() {
	// Execute initializes all commands and starts the CLI
	reconcile.Execute()
}
