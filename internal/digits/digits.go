// Package digits implements integer digit helpers: last digit, first digit,
// digit reversal and the maximum of a list of numbers.
//
// The typed functions take int64 directly. Callers holding untyped input go
// through Coerce or CoerceStrict first, which turn anything that is not an
// integer into an *InputError.
package digits

import (
	"errors"
	"math"
)

var (
	// ErrInvalidInput marks a value that cannot be interpreted as an integer.
	ErrInvalidInput = errors.New("input must be an integer or convertible to an integer")

	// ErrMissingInput is returned when an operation needs at least one value.
	ErrMissingInput = errors.New("at least one number must be provided")

	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.New("result overflows int64")
)

// Number is the set of orderable numeric types accepted by MaxOfNumbers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// LastDigit returns |n| mod 10.
func LastDigit(n int64) int64 {
	d := n % 10
	if d < 0 {
		d = -d
	}
	return d
}

// FirstDigit returns the most significant decimal digit of |n|.
func FirstDigit(n int64) int64 {
	// Work on the negative side so math.MinInt64 needs no special case.
	if n > 0 {
		n = -n
	}
	for n <= -10 {
		n /= 10
	}
	return -n
}

// ReverseNumber reverses the decimal digits of |n| and reapplies the sign of n.
// Trailing zeros become leading zeros and are dropped, so 100 reverses to 1.
// Inputs whose reversal overflows int64 saturate to math.MaxInt64 or
// math.MinInt64; use ReverseNumberChecked to detect that case.
func ReverseNumber(n int64) int64 {
	r, err := ReverseNumberChecked(n)
	if err != nil {
		if n < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return r
}

// ReverseNumberChecked is ReverseNumber with an ErrOverflow result when the
// reversed magnitude does not fit in an int64.
func ReverseNumberChecked(n int64) (int64, error) {
	if n == math.MinInt64 {
		return 0, ErrOverflow
	}
	sign := int64(1)
	if n < 0 {
		sign, n = -1, -n
	}

	var r int64
	for n > 0 {
		d := n % 10
		if r > (math.MaxInt64-d)/10 {
			return 0, ErrOverflow
		}
		r = r*10 + d
		n /= 10
	}
	return sign * r, nil
}

// MaxOfNumbers returns the greatest of nums.
// Returns ErrMissingInput when nums is empty. NaN values never win a comparison.
func MaxOfNumbers[T Number](nums ...T) (T, error) {
	if len(nums) == 0 {
		var zero T
		return zero, ErrMissingInput
	}
	best := nums[0]
	for _, v := range nums[1:] {
		// best != best only holds for NaN.
		if v > best || best != best {
			best = v
		}
	}
	return best, nil
}
