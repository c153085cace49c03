package digits

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int64
		wantErr bool
	}{
		{"int", 42, 42, false},
		{"negative int8", int8(-7), -7, false},
		{"uint32", uint32(9), 9, false},
		{"true", true, 1, false},
		{"false", false, 0, false},
		{"numeric text", "12345", 12345, false},
		{"padded text", "  -8 ", -8, false},
		{"bytes", []byte("77"), 77, false},
		{"integral float", 4.0, 4, false},
		{"free text", "Hi There 123", 0, true},
		{"fractional float", 3.14, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
		{"nil", nil, 0, true},
		{"slice", []int{1, 2, 3}, 0, true},
		{"map", map[int]string{1: "one"}, 0, true},
		{"complex", complex(1, 2), 0, true},
		{"huge uint64", uint64(math.MaxUint64), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				var inErr *InputError
				assert.True(t, errors.As(err, &inErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceStrict_RejectsTextAndFloats(t *testing.T) {
	for _, v := range []any{"12345", 3.14, 4.0, nil, []byte("1")} {
		_, err := CoerceStrict(v)
		assert.ErrorIs(t, err, ErrInvalidInput, "CoerceStrict(%#v)", v)
	}

	n, err := CoerceStrict(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDynamicEntryPoints(t *testing.T) {
	last, err := LastDigitOf("12345")
	require.NoError(t, err)
	assert.Equal(t, int64(5), last)

	_, err = LastDigitOf("Hi There 123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	first, err := FirstDigitOf(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	_, err = FirstDigitOf("12345")
	assert.ErrorIs(t, err, ErrInvalidInput)

	rev, err := ReverseNumberOf(int32(-12345))
	require.NoError(t, err)
	assert.Equal(t, int64(-54321), rev)

	_, err = ReverseNumberOf(3.14)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMaxOfValues(t *testing.T) {
	got, err := MaxOfValues(1, int64(5), uint8(3), false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	_, err = MaxOfValues()
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = MaxOfValues(1, 2, "3")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "argument 2")
}

func TestMaxOfValues_RejectsFloats(t *testing.T) {
	// Floats are not integers even when they would win the comparison.
	_, err := MaxOfValues(1, 2, 3.5)
	require.ErrorIs(t, err, ErrInvalidInput)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 3.5, inputErr.Value)

	_, err = MaxOfValues(1, 2.0)
	assert.ErrorIs(t, err, ErrInvalidInput, "integral floats are rejected too")
}
