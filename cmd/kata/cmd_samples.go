package main

import (
	"fmt"
	"sort"
	"strings"

	"kata/internal/collections"

	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Print the list, tuple, set and map sample fixtures",
	Args:  cobra.NoArgs,
	RunE:  runSamples,
}

func runSamples(cmd *cobra.Command, args []string) error {
	list := collections.ListExample()
	tuple := collections.TupleExample()
	set := collections.SetExample()
	dict := collections.DictExample()

	setKeys := make([]int, 0, len(set))
	for k := range set {
		setKeys = append(setKeys, k)
	}
	sort.Ints(setKeys)

	dictKeys := make([]string, 0, len(dict))
	for k := range dict {
		dictKeys = append(dictKeys, k)
	}
	sort.Strings(dictKeys)
	pairs := make([]string, len(dictKeys))
	for i, k := range dictKeys {
		pairs[i] = fmt.Sprintf("%s:%d", k, dict[k])
	}

	text := fmt.Sprintf("list:  %v\ntuple: %v\nset:   %v\ndict:  map[%s]", list, tuple, setKeys, strings.Join(pairs, " "))
	return emit(cmd, map[string]any{
		"list":  list,
		"tuple": tuple,
		"set":   setKeys,
		"dict":  dict,
	}, text)
}
