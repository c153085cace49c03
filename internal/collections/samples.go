package collections

// ListExample returns the ordered sample [1 2 3].
func ListExample() []int { return []int{1, 2, 3} }

// TupleExample returns the fixed-size sample (1, 2, 3).
func TupleExample() [3]int { return [3]int{1, 2, 3} }

// SetExample returns the set {1, 2, 3}.
func SetExample() map[int]struct{} {
	return map[int]struct{}{1: {}, 2: {}, 3: {}}
}

// DictExample returns the mapping {a: 1, b: 2}.
func DictExample() map[string]int {
	return map[string]int{"a": 1, "b": 2}
}
