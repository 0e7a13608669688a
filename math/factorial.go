package math

import (
	"strconv"

	"github.com/pkg/errors"
)

// MaxInput is the largest n whose factorial fits in an int:
// 20 on 64-bit platforms, 12 on 32-bit ones.
const MaxInput = 12 + 8*(strconv.IntSize/64)

var (
	ErrNegativeInput = errors.New("factorial is not defined for negative numbers")
	ErrOverflow      = errors.New("factorial overflows int")
)

// Factorial calculates n! by plain recursion.
// Inputs below 2 hit the base case and yield 1; results past MaxInput wrap.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}

	return n * Factorial(n-1)
}

// Checked is Factorial with input validation.
func Checked(n int) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrNegativeInput, "n=%d", n)
	}
	if n > MaxInput {
		return 0, errors.Wrapf(ErrOverflow, "n=%d exceeds %d", n, MaxInput)
	}

	return Factorial(n), nil
}
