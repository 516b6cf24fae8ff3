// Package main prints a sorted set of integers in ascending order.
package main

import (
	"os"

	"github.com/sapsa07/ecommerce"
	"github.com/sapsa07/ecommerce/collections"
)

func main() {
	if err := collections.PrintTreeSet(os.Stdout); err != nil {
		ecommerce.NewDefaultLogger().Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}
