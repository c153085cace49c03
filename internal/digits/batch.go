package digits

import (
	"context"
	"fmt"
	"strings"

	"kata/internal/logging"

	"golang.org/x/sync/errgroup"
)

// Op names a single-argument digit operation.
type Op string

const (
	OpLast    Op = "last"
	OpFirst   Op = "first"
	OpReverse Op = "reverse"
)

// ParseOp resolves an operation name, case-insensitively.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case OpLast, OpFirst, OpReverse:
		return op, nil
	}
	return "", fmt.Errorf("unknown digit operation %q (want last, first or reverse)", s)
}

// Apply parses input as a base-10 integer and runs the operation on it.
func (op Op) Apply(input string) (int64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	switch op {
	case OpLast:
		return LastDigit(n), nil
	case OpFirst:
		return FirstDigit(n), nil
	case OpReverse:
		return ReverseNumberChecked(n)
	}
	return 0, fmt.Errorf("unknown digit operation %q", string(op))
}

// Result is the outcome of one input in a batch.
type Result struct {
	Input string
	Value int64
	Err   error
}

// Batch applies op to every input using at most workers goroutines.
// Results keep input order. Per-input failures are recorded in Result.Err;
// the returned error is non-nil only when ctx is cancelled.
func Batch(ctx context.Context, op Op, inputs []string, workers int) ([]Result, error) {
	timer := logging.StartTimer(logging.CategoryDigits, "digits.Batch")
	defer timer.Stop()

	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := op.Apply(in)
			results[i] = Result{Input: in, Value: v, Err: err}
			if err != nil {
				logging.DigitsDebug("batch %s %q failed: %v", op, in, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.DigitsWarn("batch %s aborted after cancellation: %v", op, err)
		return results, err
	}

	logging.Digits("batch %s evaluated %d inputs with %d workers", op, len(inputs), workers)
	return results, nil
}
