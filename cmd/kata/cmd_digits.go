package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"kata/internal/digits"
	"kata/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchOp      string
	batchFile    string
	batchWorkers int
)

var digitsCmd = &cobra.Command{
	Use:   "digits",
	Short: "Integer digit utilities",
}

var digitsLastCmd = &cobra.Command{
	Use:   "last [n]",
	Short: "Print the last digit of n (|n| mod 10)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDigitOp(digits.OpLast),
}

var digitsFirstCmd = &cobra.Command{
	Use:   "first [n]",
	Short: "Print the most significant digit of |n|",
	Args:  cobra.ExactArgs(1),
	RunE:  runDigitOp(digits.OpFirst),
}

var digitsReverseCmd = &cobra.Command{
	Use:   "reverse [n]",
	Short: "Reverse the digits of n, keeping its sign",
	Long: `Reverses the decimal digits of |n| and reapplies the sign of n.
Trailing zeros are dropped.

Examples:
  kata digits reverse -456   # -654
  kata digits reverse 100    # 1`,
	Args: cobra.ExactArgs(1),
	RunE: runDigitOp(digits.OpReverse),
}

var digitsMaxCmd = &cobra.Command{
	Use:   "max [n...]",
	Short: "Print the greatest of the given integers",
	RunE:  runDigitsMax,
}

var digitsBatchCmd = &cobra.Command{
	Use:   "batch [n...]",
	Short: "Apply one digit operation to many inputs concurrently",
	Long: `Evaluates --op over every argument (and every line of --file) using a
bounded worker pool. Invalid inputs are reported per line and do not stop
the batch.`,
	RunE: runDigitsBatch,
}

type digitResult struct {
	Op     string `json:"op"`
	Input  string `json:"input"`
	Result int64  `json:"result"`
	Error  string `json:"error,omitempty"`
}

func runDigitOp(op digits.Op) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v, err := op.Apply(args[0])
		if err != nil {
			logger.Debug("digit op failed", zap.String("op", string(op)), zap.String("input", args[0]), zap.Error(err))
			return fmt.Errorf("%s %q: %w", op, args[0], err)
		}
		logging.DigitsDebug("%s(%s) = %d", op, args[0], v)
		return emit(cmd, digitResult{Op: string(op), Input: args[0], Result: v}, fmt.Sprint(v))
	}
}

func runDigitsMax(cmd *cobra.Command, args []string) error {
	nums := make([]int64, len(args))
	for i, a := range args {
		n, err := digits.Parse(a)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		nums[i] = n
	}
	best, err := digits.MaxOfNumbers(nums...)
	if err != nil {
		return err
	}
	return emit(cmd, digitResult{Op: "max", Input: strings.Join(args, " "), Result: best}, fmt.Sprint(best))
}

func runDigitsBatch(cmd *cobra.Command, args []string) error {
	op, err := digits.ParseOp(batchOp)
	if err != nil {
		return err
	}

	inputs := append([]string(nil), args...)
	if batchFile != "" {
		lines, err := readLines(batchFile)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return digits.ErrMissingInput
	}

	c, err := currentConfig()
	if err != nil {
		return err
	}
	workers := batchWorkers
	if workers <= 0 {
		workers = c.Batch.Workers
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	results, err := digits.Batch(ctx, op, inputs, workers)
	if err != nil {
		return err
	}

	failed := 0
	out := make([]digitResult, len(results))
	var sb strings.Builder
	for i, r := range results {
		out[i] = digitResult{Op: string(op), Input: r.Input, Result: r.Value}
		if r.Err != nil {
			failed++
			out[i].Error = r.Err.Error()
			fmt.Fprintf(&sb, "%s\terror: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(&sb, "%s\t%d\n", r.Input, r.Value)
	}
	logger.Info("batch complete", zap.String("op", string(op)), zap.Int("inputs", len(inputs)), zap.Int("failed", failed))

	if err := emit(cmd, out, strings.TrimRight(sb.String(), "\n")); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
