// Command password counts the passwords in the puzzle input range
// that meet the secure-container criteria.
package main

import (
	"fmt"

	"advent2019/password"
)

// Puzzle input range.
const (
	rangeLo = 138241
	rangeHi = 674034
)

func main() {
	fmt.Printf("Part one. Count: %d\n", password.Count(rangeLo, rangeHi, password.Valid))
	fmt.Printf("Part two: Count: %d\n", password.Count(rangeLo, rangeHi, password.ValidStrict))
}
