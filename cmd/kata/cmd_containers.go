package main

import (
	"context"
	"fmt"
	"strings"

	"kata/internal/collections"
	"kata/internal/logging"
	"kata/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Work with named LIFO stacks",
}

var stackPushCmd = &cobra.Command{
	Use:   "push [name] [items...]",
	Short: "Push items onto a stack, left to right",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runStackPush,
}

var stackPopCmd = &cobra.Command{
	Use:   "pop [name]",
	Short: "Remove and print the top of a stack",
	Args:  cobra.ExactArgs(1),
	RunE:  runStackPop,
}

var stackPeekCmd = &cobra.Command{
	Use:   "peek [name]",
	Short: "Print the top of a stack without removing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runStackPeek,
}

var stackShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a stack, top first",
	Args:  cobra.ExactArgs(1),
	RunE:  runStackShow,
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Work with named FIFO queues",
}

var queueEnqueueCmd = &cobra.Command{
	Use:   "enqueue [name] [items...]",
	Short: "Append items to the tail of a queue",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runQueueEnqueue,
}

var queueDequeueCmd = &cobra.Command{
	Use:   "dequeue [name]",
	Short: "Remove and print the head of a queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueDequeue,
}

var queuePeekCmd = &cobra.Command{
	Use:   "peek [name]",
	Short: "Print the head of a queue without removing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueuePeek,
}

var queueShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a queue, head first",
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueShow,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored stacks and queues",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var dropCmd = &cobra.Command{
	Use:   "drop [name]",
	Short: "Delete a stored stack or queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

// withStore opens the workspace store for the duration of fn.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) error {
	c, err := currentConfig()
	if err != nil {
		return err
	}
	s, err := store.Open(c.DatabasePath(workspace))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := commandContext(cmd)
	defer cancel()
	return fn(ctx, s)
}

func runStackPush(cmd *cobra.Command, args []string) error {
	name, items := args[0], args[1:]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		var size int
		err := s.UpdateStack(ctx, name, func(st *collections.Stack[string]) error {
			for _, item := range items {
				st.Push(item)
			}
			size = st.Len()
			return nil
		})
		for _, item := range items {
			logging.Audit().ContainerOp(logging.AuditPush, name, string(store.KindStack), item, err)
		}
		if err != nil {
			return err
		}
		logger.Debug("pushed", zap.String("stack", name), zap.Int("count", len(items)), zap.Int("len", size))
		return emit(cmd, map[string]any{"name": name, "len": size}, fmt.Sprintf("%s: %d item(s)", name, size))
	})
}

func runStackPop(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		var v string
		err := s.UpdateStack(ctx, name, func(st *collections.Stack[string]) error {
			var err error
			v, err = st.Pop()
			return err
		})
		logging.Audit().ContainerOp(logging.AuditPop, name, string(store.KindStack), v, err)
		if err != nil {
			return fmt.Errorf("stack %q: %w", name, err)
		}
		logging.ContainersDebug("popped %q from %s", v, name)
		return emit(cmd, map[string]any{"name": name, "value": v}, v)
	})
}

func runStackPeek(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		st, err := s.LoadStack(ctx, name)
		if err != nil {
			return err
		}
		v, err := st.Peek()
		if err != nil {
			return fmt.Errorf("stack %q: %w", name, err)
		}
		return emit(cmd, map[string]any{"name": name, "value": v}, v)
	})
}

func runStackShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		st, err := s.LoadStack(ctx, name)
		if err != nil {
			return err
		}
		values := st.Values()
		top := make([]string, len(values))
		for i, v := range values {
			top[len(values)-1-i] = v
		}
		return emit(cmd, map[string]any{"name": name, "items": top}, formatItems(top))
	})
}

func runQueueEnqueue(cmd *cobra.Command, args []string) error {
	name, items := args[0], args[1:]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		var size int
		err := s.UpdateQueue(ctx, name, func(q *collections.Queue[string]) error {
			for _, item := range items {
				q.Enqueue(item)
			}
			size = q.Len()
			return nil
		})
		for _, item := range items {
			logging.Audit().ContainerOp(logging.AuditEnqueue, name, string(store.KindQueue), item, err)
		}
		if err != nil {
			return err
		}
		logger.Debug("enqueued", zap.String("queue", name), zap.Int("count", len(items)), zap.Int("len", size))
		return emit(cmd, map[string]any{"name": name, "len": size}, fmt.Sprintf("%s: %d item(s)", name, size))
	})
}

func runQueueDequeue(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		var v string
		err := s.UpdateQueue(ctx, name, func(q *collections.Queue[string]) error {
			var err error
			v, err = q.Dequeue()
			return err
		})
		logging.Audit().ContainerOp(logging.AuditDequeue, name, string(store.KindQueue), v, err)
		if err != nil {
			return fmt.Errorf("queue %q: %w", name, err)
		}
		logging.ContainersDebug("dequeued %q from %s", v, name)
		return emit(cmd, map[string]any{"name": name, "value": v}, v)
	})
}

func runQueuePeek(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		q, err := s.LoadQueue(ctx, name)
		if err != nil {
			return err
		}
		v, err := q.Peek()
		if err != nil {
			return fmt.Errorf("queue %q: %w", name, err)
		}
		return emit(cmd, map[string]any{"name": name, "value": v}, v)
	})
}

func runQueueShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		q, err := s.LoadQueue(ctx, name)
		if err != nil {
			return err
		}
		items := q.Values()
		return emit(cmd, map[string]any{"name": name, "items": items}, formatItems(items))
	})
}

func runList(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		infos, err := s.List(ctx)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			return emit(cmd, []store.Info{}, "No containers stored.")
		}
		var sb strings.Builder
		for _, info := range infos {
			fmt.Fprintf(&sb, "%s\t%s\t%d\n", info.Name, info.Kind, info.Len)
		}
		return emit(cmd, infos, strings.TrimRight(sb.String(), "\n"))
	})
}

func runDrop(cmd *cobra.Command, args []string) error {
	name := args[0]
	return withStore(cmd, func(ctx context.Context, s *store.Store) error {
		err := s.Drop(ctx, name)
		logging.Audit().ContainerOp(logging.AuditDrop, name, "", "", err)
		if err != nil {
			return err
		}
		return emit(cmd, map[string]any{"dropped": name}, "Dropped "+name)
	})
}

func formatItems(items []string) string {
	if len(items) == 0 {
		return "(empty)"
	}
	return strings.Join(items, "\n")
}
