package collections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSamples(t *testing.T) {
	if diff := cmp.Diff([]int{1, 2, 3}, ListExample()); diff != "" {
		t.Errorf("ListExample mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([3]int{1, 2, 3}, TupleExample()); diff != "" {
		t.Errorf("TupleExample mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[int]struct{}{1: {}, 2: {}, 3: {}}, SetExample()); diff != "" {
		t.Errorf("SetExample mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, DictExample()); diff != "" {
		t.Errorf("DictExample mismatch (-want +got):\n%s", diff)
	}
}
