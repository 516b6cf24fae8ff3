package collections

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/sets/treeset"
)

// Numbers adds 5, 1 and 3 to a red-black tree set, which keeps them ordered.
func Numbers() *treeset.Set {
	nums := treeset.NewWithIntComparator()
	nums.Add(5)
	nums.Add(1)
	nums.Add(3)
	return nums
}

// PrintTreeSet prints the numbers in ascending order: [1, 3, 5].
func PrintTreeSet(w io.Writer) error {
	_, err := fmt.Fprintln(w, Format(Numbers().Values()))
	return err
}
