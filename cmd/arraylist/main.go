// Package main prints the fruits left after removing by index and by value.
package main

import (
	"os"

	"github.com/sapsa07/ecommerce"
	"github.com/sapsa07/ecommerce/collections"
)

func main() {
	if err := collections.PrintArrayList(os.Stdout); err != nil {
		ecommerce.NewDefaultLogger().Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}
