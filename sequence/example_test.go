package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/katalvlaran/fizzbuzz/sequence"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBatches — independent slices of one sequence
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Split FizzBuzz 1..30 into three batches of ten. Each batch is a plain
//	window onto the same periodic sequence; nothing flows between them.
func ExampleBatches() {
	t, err := pattern.New(pattern.DefaultRules())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	batches, err := sequence.Batches(t, 3, 10, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, b := range batches {
		fmt.Printf("batch %d (%d-%d): %v\n", i, b.Start, b.End, b.Values)
	}
	// Output:
	// batch 0 (1-10): [1 2 Fizz 4 Buzz Fizz 7 8 Fizz Buzz]
	// batch 1 (11-20): [11 Fizz 13 14 FizzBuzz 16 17 Fizz 19 Buzz]
	// batch 2 (21-30): [Fizz 22 23 Fizz Buzz 26 Fizz 28 29 FizzBuzz]
}
