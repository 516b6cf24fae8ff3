package collections

import (
	"fmt"
	"io"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Colors adds Red, Green and Red again; the duplicate is ignored.
func Colors() mapset.Set[string] {
	colors := mapset.NewThreadUnsafeSet[string]()
	colors.Add("Red")
	colors.Add("Green")
	colors.Add("Red")
	return colors
}

// PrintHashSet prints the colors as [Green, Red]. Set iteration order is
// unspecified, so the elements are sorted to keep the output stable rather
// than following hash order.
func PrintHashSet(w io.Writer) error {
	colors := Colors().ToSlice()
	slices.Sort(colors)
	_, err := fmt.Fprintln(w, Format(colors))
	return err
}
