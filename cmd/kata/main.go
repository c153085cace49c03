package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kata/internal/config"
	"kata/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	timeout    time.Duration

	// Loaded once per invocation by PersistentPreRunE, or lazily by currentConfig.
	cfg *config.Config

	// Correlates every log line of one invocation.
	requestID string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kata",
	Short: "kata - stacks, queues, trees and digit drills",
	Long: `kata exercises a small set of collection abstractions and integer
digit utilities from the command line.

Stacks and queues are persisted per workspace in .kata/state.db, so a value
pushed in one invocation can be popped in the next.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workspace == "" {
			ws, err := config.FindWorkspaceRoot()
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}
			workspace = ws
		}

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if err := logging.Initialize(workspace, cfg.Logging); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.BootDebug("workspace=%s db=%s workers=%d", workspace, cfg.DatabasePath(workspace), cfg.Batch.Workers)

		zc := zap.NewProductionConfig()
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		requestID = uuid.NewString()
		logger = logger.With(zap.String("req", requestID))
		logging.WithRequestID(logging.CategoryCLI, requestID).
			WithField("cmd", cmd.CommandPath()).
			Info("dispatch args=%v", args)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: nearest .kata or go.mod)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/.kata/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	digitsBatchCmd.Flags().StringVar(&batchOp, "op", "last", "Operation to apply: last, first or reverse")
	digitsBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Read inputs from a file, one per line")
	digitsBatchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent workers (default: batch.workers from config)")
	digitsCmd.AddCommand(digitsLastCmd)
	digitsCmd.AddCommand(digitsFirstCmd)
	digitsCmd.AddCommand(digitsReverseCmd)
	digitsCmd.AddCommand(digitsMaxCmd)
	digitsCmd.AddCommand(digitsBatchCmd)

	stackCmd.AddCommand(stackPushCmd)
	stackCmd.AddCommand(stackPopCmd)
	stackCmd.AddCommand(stackPeekCmd)
	stackCmd.AddCommand(stackShowCmd)

	queueCmd.AddCommand(queueEnqueueCmd)
	queueCmd.AddCommand(queueDequeueCmd)
	queueCmd.AddCommand(queuePeekCmd)
	queueCmd.AddCommand(queueShowCmd)

	treeCmd.Flags().StringVar(&treeOrder, "order", "", "Also print a traversal: pre, in, post or level")

	rootCmd.AddCommand(digitsCmd)
	rootCmd.AddCommand(stackCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(positionalNegatives(rootCmd, os.Args[1:]))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.CLIError("command failed: %v", err)
		logging.CloseAll()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.Path(workspace)
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// currentConfig returns the config loaded by the root command, loading it on
// demand when a command runs without it (tests call RunE directly).
func currentConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	if workspace == "" {
		workspace = "."
	}
	return loadConfig()
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// emit prints text, or v as indented JSON when output.format is json.
func emit(cmd *cobra.Command, v any, text string) error {
	c, err := currentConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if c.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
