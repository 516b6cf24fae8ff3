package collections

import (
	"fmt"
	"io"
	"slices"
)

// Fruits appends four fruits to a slice, removes the second one by index
// and then removes "Mango" by value.
func Fruits() []string {
	fruits := make([]string, 0, 4)
	fruits = append(fruits, "Apple", "Orange", "Mango", "PineApple")

	fruits = slices.Delete(fruits, 1, 2) // by index
	if i := slices.Index(fruits, "Mango"); i >= 0 {
		fruits = slices.Delete(fruits, i, i+1) // by value
	}
	return fruits
}

// PrintArrayList writes each remaining fruit on its own line.
func PrintArrayList(w io.Writer) error {
	for _, fruit := range Fruits() {
		if _, err := fmt.Fprintln(w, fruit); err != nil {
			return err
		}
	}
	return nil
}
