package collections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque_BothEnds(t *testing.T) {
	d := NewDeque[int](0)
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	d.PushFront(0)

	if diff := cmp.Diff([]int{0, 1, 2, 3}, d.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	front, err := d.Front()
	require.NoError(t, err)
	assert.Equal(t, 0, front)
	back, err := d.Back()
	require.NoError(t, err)
	assert.Equal(t, 3, back)

	v, err := d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, 2, d.Len())
}

func TestDeque_GrowsAcrossWrap(t *testing.T) {
	var d Deque[int]
	// Advance head so the buffer wraps before it has to grow.
	for i := 0; i < 6; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 4; i++ {
		_, err := d.PopFront()
		require.NoError(t, err)
	}
	for i := 6; i < 40; i++ {
		d.PushBack(i)
	}

	want := make([]int, 0, 36)
	for i := 4; i < 40; i++ {
		want = append(want, i)
	}
	if diff := cmp.Diff(want, d.Values()); diff != "" {
		t.Errorf("values mismatch after growth (-want +got):\n%s", diff)
	}
}

func TestDeque_Empty(t *testing.T) {
	var d Deque[string]
	assert.True(t, d.IsEmpty())

	_, err := d.PopFront()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = d.Front()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = d.Back()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 0, d.Len())
}
