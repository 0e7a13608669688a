package ui

import "fmt"

// Announce is the line printed before the computation starts.
func Announce(n int) string {
	return fmt.Sprintf("Calculating factorial of %d", n)
}

// Result reports n! = r.
func Result(n, r int) string {
	return fmt.Sprintf("Factorial of %d is %d", n, r)
}
