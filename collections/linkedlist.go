package collections

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/utils"
)

func newCountryList() *doublylinkedlist.List {
	countries := doublylinkedlist.New()
	countries.Add("JAPAN", "PORTUGAL", "ARGENTINA", "SPAIN", "NIGERIA")

	countries.Prepend("INDIA")
	countries.Insert(4, "GERMANY")

	// Descending: sort ascending, then reverse.
	countries.Sort(utils.StringComparator)
	reverse(countries)

	removeAll(countries, "PORTUGAL", "SPAIN")
	return countries
}

// Countries builds the country list and returns its contents in order:
// [NIGERIA JAPAN INDIA GERMANY ARGENTINA].
func Countries() []string {
	return stringValues(newCountryList())
}

// PrintLinkedList prints the country list, clears it and prints it again.
func PrintLinkedList(w io.Writer) error {
	countries := newCountryList()
	if _, err := fmt.Fprintln(w, Format(stringValues(countries))); err != nil {
		return err
	}

	countries.Clear()
	_, err := fmt.Fprintln(w, Format(stringValues(countries)))
	return err
}

func reverse(l *doublylinkedlist.List) {
	for i, j := 0, l.Size()-1; i < j; i, j = i+1, j-1 {
		l.Swap(i, j)
	}
}

// removeAll deletes every occurrence of each value from l.
func removeAll(l *doublylinkedlist.List, values ...string) {
	for _, v := range values {
		for i := l.IndexOf(v); i >= 0; i = l.IndexOf(v) {
			l.Remove(i)
		}
	}
}

func stringValues(l *doublylinkedlist.List) []string {
	out := make([]string, 0, l.Size())
	it := l.Iterator()
	for it.Next() {
		out = append(out, it.Value().(string))
	}
	return out
}
