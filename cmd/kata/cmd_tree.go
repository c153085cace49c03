package main

import (
	"fmt"
	"strings"

	"kata/internal/collections"
	"kata/internal/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var treeOrder string

var treeCmd = &cobra.Command{
	Use:   "tree [values...]",
	Short: "Build a binary tree in level order and draw it",
	Long: `Builds a binary tree from values given in level order, the way a heap is
laid out: the first value is the root, the next two are its children, and so on.
Use "-" or "nil" for an absent child.

Example:
  kata tree 1 2 3 - 5 --order in`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTree,
}

var (
	treeValueColor = lipgloss.Color("#8BC34A")
	treeLabelColor = lipgloss.Color("#2196F3")
)

func runTree(cmd *cobra.Command, args []string) error {
	root, err := buildLevelOrder(args)
	if err != nil {
		return err
	}

	c, err := currentConfig()
	if err != nil {
		return err
	}
	logging.Tree("built tree from %d values", len(args))

	var walk []string
	if treeOrder != "" {
		walk, err = traverse(root, treeOrder)
		if err != nil {
			return err
		}
	}

	text := renderTree(root, c.Output.Color)
	if walk != nil {
		text += "\n" + treeOrder + ": " + strings.Join(walk, " ")
	}
	return emit(cmd, map[string]any{"levels": args, "order": treeOrder, "walk": walk}, text)
}

func isAbsent(v string) bool {
	return v == "-" || v == "nil" || v == "null"
}

// buildLevelOrder wires TreeNodes from a level-order listing.
func buildLevelOrder(values []string) (*collections.TreeNode[string], error) {
	if len(values) == 0 || isAbsent(values[0]) {
		return nil, fmt.Errorf("root value required")
	}

	root := collections.NewTreeNode(values[0])
	pending := collections.NewQueue[*collections.TreeNode[string]]()
	pending.Enqueue(root)

	i := 1
	for i < len(values) && !pending.IsEmpty() {
		parent, err := pending.Dequeue()
		if err != nil {
			return nil, err
		}
		if !isAbsent(values[i]) {
			parent.Left = collections.NewTreeNode(values[i])
			pending.Enqueue(parent.Left)
		}
		i++
		if i < len(values) && !isAbsent(values[i]) {
			parent.Right = collections.NewTreeNode(values[i])
			pending.Enqueue(parent.Right)
		}
		i++
	}
	for i < len(values) && isAbsent(values[i]) {
		i++
	}
	if i < len(values) {
		return nil, fmt.Errorf("value %q at position %d has no parent", values[i], i+1)
	}
	return root, nil
}

// traverse walks the tree in the named order using explicit stacks and queues.
func traverse(root *collections.TreeNode[string], order string) ([]string, error) {
	out := []string{}
	if root == nil {
		return out, nil
	}

	switch order {
	case "pre":
		st := collections.NewStack[*collections.TreeNode[string]]()
		st.Push(root)
		for !st.IsEmpty() {
			n, _ := st.Pop()
			out = append(out, n.Value)
			if n.Right != nil {
				st.Push(n.Right)
			}
			if n.Left != nil {
				st.Push(n.Left)
			}
		}
	case "in":
		st := collections.NewStack[*collections.TreeNode[string]]()
		cur := root
		for cur != nil || !st.IsEmpty() {
			for cur != nil {
				st.Push(cur)
				cur = cur.Left
			}
			n, _ := st.Pop()
			out = append(out, n.Value)
			cur = n.Right
		}
	case "post":
		// Reverse of a root-right-left preorder.
		st := collections.NewStack[*collections.TreeNode[string]]()
		rev := collections.NewStack[string]()
		st.Push(root)
		for !st.IsEmpty() {
			n, _ := st.Pop()
			rev.Push(n.Value)
			if n.Left != nil {
				st.Push(n.Left)
			}
			if n.Right != nil {
				st.Push(n.Right)
			}
		}
		for !rev.IsEmpty() {
			v, _ := rev.Pop()
			out = append(out, v)
		}
	case "level":
		q := collections.NewQueue[*collections.TreeNode[string]]()
		q.Enqueue(root)
		for !q.IsEmpty() {
			n, _ := q.Dequeue()
			out = append(out, n.Value)
			if n.Left != nil {
				q.Enqueue(n.Left)
			}
			if n.Right != nil {
				q.Enqueue(n.Right)
			}
		}
	default:
		return nil, fmt.Errorf("unknown traversal order %q (want pre, in, post or level)", order)
	}
	return out, nil
}

// renderTree draws the tree sideways with box-drawing branches.
func renderTree(root *collections.TreeNode[string], color bool) string {
	valueStyle := lipgloss.NewStyle()
	labelStyle := lipgloss.NewStyle()
	if color {
		valueStyle = valueStyle.Foreground(treeValueColor).Bold(true)
		labelStyle = labelStyle.Foreground(treeLabelColor)
	}

	var sb strings.Builder
	sb.WriteString(valueStyle.Render(root.Value))
	sb.WriteString("\n")

	var draw func(n *collections.TreeNode[string], prefix string)
	draw = func(n *collections.TreeNode[string], prefix string) {
		type branch struct {
			label string
			node  *collections.TreeNode[string]
		}
		var children []branch
		if n.Left != nil {
			children = append(children, branch{"L", n.Left})
		}
		if n.Right != nil {
			children = append(children, branch{"R", n.Right})
		}
		for i, c := range children {
			connector, next := "├── ", "│   "
			if i == len(children)-1 {
				connector, next = "└── ", "    "
			}
			sb.WriteString(prefix + connector + labelStyle.Render(c.label+":") + " " + valueStyle.Render(c.node.Value) + "\n")
			draw(c.node, prefix+next)
		}
	}
	draw(root, "")

	return strings.TrimRight(sb.String(), "\n")
}
