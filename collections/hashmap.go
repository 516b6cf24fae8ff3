package collections

import (
	"fmt"
	"io"
)

// Prices puts Apple=50, Banana=20 and then Apple=60. The second put for
// Apple overwrites the first.
func Prices() map[string]int {
	prices := make(map[string]int)
	prices["Apple"] = 50
	prices["Banana"] = 20
	prices["Apple"] = 60
	return prices
}

// PrintHashMap prints the price of Apple.
func PrintHashMap(w io.Writer) error {
	_, err := fmt.Fprintln(w, Prices()["Apple"])
	return err
}
