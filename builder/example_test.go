package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/charlton/builder"
)

func ExampleBalanced() {
	f, err := builder.Balanced(builder.Factors{"a": 2, "b": 3}, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, name := range f.Names() {
		col, _ := f.Categorical(name)
		fmt.Println(name, col)
	}
	// Output:
	// a [a1 a1 a1 a2 a2 a2]
	// b [b1 b2 b3 b1 b2 b3]
}

func ExampleBalancedColumns() {
	cols, _ := builder.BalancedColumns(builder.Factors{"a": 2, "b": 2}, 2)
	fmt.Println(cols["a"])
	fmt.Println(cols["b"])
	// Output:
	// [a1 a1 a2 a2 a1 a1 a2 a2]
	// [b1 b2 b1 b2 b1 b2 b1 b2]
}

func ExampleDemoData() {
	d, _ := builder.DemoData([]string{"a", "b", "x", "y"})
	a, _ := d.Categorical("a")
	x, _ := d.Numeric("x")
	fmt.Println(d.Names(), d.Rows())
	fmt.Println(a)
	fmt.Println(len(x))
	// Output:
	// [a b x y] 8
	// [a1 a1 a2 a2 a1 a1 a2 a2]
	// 8
}

func ExampleDemoData_invalidName() {
	_, err := builder.DemoData([]string{"a", "b", "__123"})
	fmt.Println(errors.Is(err, builder.ErrInvalidName))
	// Output:
	// true
}
