// Package collections provides small generic containers used across kata:
// a LIFO Stack, a FIFO Queue built on a ring-buffer Deque, and a binary
// TreeNode. Containers are owned by a single caller and are not safe for
// concurrent use.
package collections

import "errors"

// ErrEmpty is returned (wrapped) when a removal or peek is attempted on a
// container with no elements.
var ErrEmpty = errors.New("empty container")
