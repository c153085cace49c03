package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// positionalNegatives rewrites args so negative integers reach commands as
// arguments instead of being parsed as shorthand flags: "digits last -456"
// becomes "digits last -- -456". Flags after the first negative number are
// moved ahead of the "--". A negative number given as the value of a flag
// ("--workers -1") is left alone, as is anything after an explicit "--".
func positionalNegatives(root *cobra.Command, args []string) []string {
	target, _, err := root.Find(args)
	if err != nil {
		target = root
	}

	first := -1
	for i, a := range args {
		if a == "--" {
			return args
		}
		if isNegativeNumber(a) && !(i > 0 && needsValue(target, args[i-1])) {
			first = i
			break
		}
	}
	if first < 0 {
		return args
	}

	out := append([]string(nil), args[:first]...)
	var positional []string
	for i := first; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(a, "-") && a != "-" && !isNegativeNumber(a):
			out = append(out, a)
			if needsValue(target, a) && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			positional = append(positional, a)
		}
	}
	return append(append(out, "--"), positional...)
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// needsValue reports whether tok is a flag of cmd that consumes the next
// argument as its value.
func needsValue(cmd *cobra.Command, tok string) bool {
	if !strings.HasPrefix(tok, "-") || strings.Contains(tok, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(tok, "--"); ok {
		f = cmd.Flag(name)
	} else if len(tok) == 2 {
		f = shorthandFlag(cmd, tok[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func shorthandFlag(cmd *cobra.Command, short string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().ShorthandLookup(short); f != nil {
			return f
		}
		if f := c.PersistentFlags().ShorthandLookup(short); f != nil {
			return f
		}
	}
	return nil
}
