// SPDX-License-Identifier: MIT
package tt_test

import (
	"fmt"

	"github.com/katalvlaran/ttkron/matrix"
	"github.com/katalvlaran/ttkron/tt"
)

func ExampleFromKronecker() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})

	train, err := tt.FromKronecker(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("ranks:", train.Ranks())

	full, _ := train.Full()
	fmt.Print(full)
	// Output:
	// ranks: [1 1 1]
	// [0, 1, 0, 2]
	// [1, 0, 2, 0]
	// [0, 3, 0, 4]
	// [3, 0, 4, 0]
}
