package collections_test

import (
	"fmt"
	"os"

	"github.com/sapsa07/ecommerce/collections"
)

func ExampleFruits() {
	fmt.Println(collections.Fruits())
	// Output:
	// [Apple PineApple]
}

func ExamplePrintLinkedList() {
	_ = collections.PrintLinkedList(os.Stdout)
	// Output:
	// [NIGERIA, JAPAN, INDIA, GERMANY, ARGENTINA]
	// []
}

func ExamplePrices() {
	fmt.Println(collections.Prices()["Apple"])
	// Output:
	// 60
}

func ExampleColors() {
	colors := collections.Colors()
	fmt.Println(colors.Cardinality(), colors.Contains("Red"), colors.Contains("Green"))
	// Output:
	// 2 true true
}

func ExamplePrintTreeSet() {
	_ = collections.PrintTreeSet(os.Stdout)
	// Output:
	// [1, 3, 5]
}
