package search_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/search"
)

// ExampleBFS counts the strings of up to two digits built by prepending
// digits to a single-digit seed.
func ExampleBFS() {
	grow := func(s string) []string {
		if len(s) >= 2 {
			return nil
		}
		out := make([]string, 0, 10)
		for d := '0'; d <= '9'; d++ {
			out = append(out, string(d)+s)
		}
		return out
	}
	res, err := search.BFS([]string{"7"}, grow)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Order), res.Order[1], res.Depth["97"])
	// Output: 11 07 1
}
