// Package main prints the country list after sorting, reversing and bulk removal, then again after clearing it.
package main

import (
	"os"

	"github.com/sapsa07/ecommerce"
	"github.com/sapsa07/ecommerce/collections"
)

func main() {
	if err := collections.PrintLinkedList(os.Stdout); err != nil {
		ecommerce.NewDefaultLogger().Error("Failed to write output", "error", err)
		os.Exit(1)
	}
}
