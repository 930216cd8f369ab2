// Package password implements the secure-container password checks:
// six-digit numbers whose digits never decrease from left to right
// and which contain a pair of matching adjacent digits.
package password

// Valid reports whether n meets the part one criteria. Digits are
// consumed least significant first, so a left-to-right decrease shows
// up as the current (more significant) digit being larger than the
// previous one.
func Valid(n int) bool {
	valid := false
	prev := n % 10
	n /= 10
	for n > 0 {
		cur := n % 10
		if cur > prev {
			return false
		}
		valid = valid || cur == prev
		prev = cur
		n /= 10
	}
	return valid
}

// ValidStrict reports whether n meets the part two criteria: as
// Valid, but a matching pair only counts if it is not part of a
// larger run of equal digits.
func ValidStrict(n int) bool {
	valid := false
	run := 1
	prev := n % 10
	n /= 10
	for n > 0 {
		cur := n % 10
		if cur > prev {
			return false
		}
		if cur == prev {
			run++
		} else {
			valid = valid || run == 2
			run = 1
		}
		prev = cur
		n /= 10
	}
	// The most significant run is never closed by a differing digit,
	// so it gets the same check once the scan is done.
	return valid || run == 2
}

// Count returns how many integers in [lo, hi] satisfy valid.
func Count(lo, hi int, valid func(int) bool) int {
	count := 0
	for n := lo; n <= hi; n++ {
		if valid(n) {
			count++
		}
	}
	return count
}
