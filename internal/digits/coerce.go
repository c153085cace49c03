package digits

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InputError reports a value rejected by Coerce or CoerceStrict.
type InputError struct {
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %#v: %s", e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Coerce converts v to an int64. It accepts every Go integer kind, bool
// (false=0, true=1), floats with no fractional part, and text holding a
// base-10 integer. Anything else yields an *InputError.
func Coerce(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		return Parse(x)
	case []byte:
		return Parse(string(x))
	case float32:
		return coerceFloat(v, float64(x))
	case float64:
		return coerceFloat(v, x)
	}
	return CoerceStrict(v)
}

// CoerceStrict converts v to an int64, accepting only integer kinds and bool.
func CoerceStrict(v any) (int64, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return fromUnsigned(v, uint64(x))
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return fromUnsigned(v, x)
	case nil:
		return 0, &InputError{Value: v, Reason: "value is nil"}
	}
	return 0, &InputError{Value: v, Reason: fmt.Sprintf("unsupported type %T", v)}
}

// Parse reads a base-10 integer from s, ignoring surrounding whitespace.
func Parse(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &InputError{Value: s, Reason: "not a base-10 integer"}
	}
	return n, nil
}

func fromUnsigned(orig any, u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, &InputError{Value: orig, Reason: "exceeds int64 range"}
	}
	return int64(u), nil
}

func coerceFloat(orig any, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InputError{Value: orig, Reason: "not a finite number"}
	}
	if f != math.Trunc(f) {
		return 0, &InputError{Value: orig, Reason: "has a fractional part"}
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &InputError{Value: orig, Reason: "exceeds int64 range"}
	}
	return int64(f), nil
}

// LastDigitOf coerces v leniently and returns its last digit.
func LastDigitOf(v any) (int64, error) {
	n, err := Coerce(v)
	if err != nil {
		return 0, err
	}
	return LastDigit(n), nil
}

// FirstDigitOf accepts only integers and bools.
func FirstDigitOf(v any) (int64, error) {
	n, err := CoerceStrict(v)
	if err != nil {
		return 0, err
	}
	return FirstDigit(n), nil
}

// ReverseNumberOf accepts only integers and bools.
func ReverseNumberOf(v any) (int64, error) {
	n, err := CoerceStrict(v)
	if err != nil {
		return 0, err
	}
	return ReverseNumberChecked(n)
}

// MaxOfValues returns the greatest of vs after strict coercion.
func MaxOfValues(vs ...any) (int64, error) {
	if len(vs) == 0 {
		return 0, ErrMissingInput
	}
	nums := make([]int64, len(vs))
	for i, v := range vs {
		n, err := CoerceStrict(v)
		if err != nil {
			return 0, fmt.Errorf("argument %d: %w", i, err)
		}
		nums[i] = n
	}
	return MaxOfNumbers(nums...)
}
