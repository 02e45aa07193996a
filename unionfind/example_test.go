// File: unionfind/example_test.go
package unionfind_test

import (
	"fmt"

	"github.com/aev3/algos-percolation/unionfind"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Union / Connected
////////////////////////////////////////////////////////////////////////////////

// ExampleUnionFind demonstrates incremental connectivity over a small
// universe: islands merge as unions arrive, and Connected answers
// "are these linked yet?" in near-constant amortized time.
func ExampleUnionFind() {
	uf, _ := unionfind.New(6)

	_ = uf.Union(0, 1)
	_ = uf.Union(1, 2)
	_ = uf.Union(3, 4)

	same, _ := uf.Connected(0, 2)
	fmt.Println("0~2:", same)
	same, _ = uf.Connected(0, 3)
	fmt.Println("0~3:", same)
	fmt.Println("sets:", uf.Count())

	sz, _ := uf.SizeOf(2)
	fmt.Println("size of 2's set:", sz)

	// Output:
	// 0~2: true
	// 0~3: false
	// sets: 3
	// size of 2's set: 3
}
