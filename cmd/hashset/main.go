// Package main prints a set of colors built with a duplicate insert.
package main

import (
	"os"

	"github.com/sapsa07/ecommerce"
	"github.com/sapsa07/ecommerce/collections"
)

func main() {
	if err := collections.PrintHashSet(os.Stdout); err != nil {
		ecommerce.NewDefaultLogger().Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}
