// Package main prints the price of Apple after it has been overwritten.
package main

import (
	"os"

	"github.com/sapsa07/ecommerce"
	"github.com/sapsa07/ecommerce/collections"
)

func main() {
	if err := collections.PrintHashMap(os.Stdout); err != nil {
		ecommerce.NewDefaultLogger().Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}
