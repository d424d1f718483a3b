package snailshell_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/snailshell"
	"github.com/katalvlaran/snailshell/executor"
)

// ExampleSubmit runs a traversal on a dedicated single-worker executor.
func ExampleSubmit() {
	sh, err := snailshell.New(executor.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer sh.Close()

	f, err := snailshell.Submit(context.Background(), sh, [][]int{
		{1, 2, 3},
		{8, 9, 4},
		{7, 6, 5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	seq, err := f.WaitTimeout(10 * time.Second)
	fmt.Println(seq, err)
	// Output:
	// [1 2 3 4 5 6 7 8 9] <nil>
}
