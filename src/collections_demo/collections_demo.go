package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"linear_structures/src/workload"
)

func main() {
	var demoLists, demoStack, demoBST bool
	var top int
	var paths []string

	flag.Func("inst", "a list of workload file paths, separated by a whitespace", func(s string) error {
		paths = strings.Fields(s)
		return nil
	})
	flag.BoolVar(&demoLists, "lists", false, "Replay the workload through the singly and doubly linked lists")
	flag.BoolVar(&demoStack, "stack", false, "Replay the workload through the stack")
	flag.BoolVar(&demoBST, "bst", false, "Replay the workload through the binary search tree")
	flag.IntVar(&top, "top", 3, "Number of most frequent values reported by the binary search tree")

	flag.Parse()

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Must specify at least a path")
		os.Exit(1)
	}
	if !demoLists && !demoStack && !demoBST {
		fmt.Fprintln(os.Stderr, "Must specify a data structure")
		os.Exit(1)
	}

	for _, p := range paths {
		w, err := workload.LoadWorkload(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error for workload \"%v\": %v. Skipping...\n", p, err)
			continue
		}

		fmt.Printf("Workload %v: %d values, %d distinct\n", p, len(w.Values), w.Distinct())
		if demoLists {
			fmt.Print(replayLists(w))
		}
		if demoStack {
			fmt.Print(replayStack(w))
		}
		if demoBST {
			fmt.Print(replayBST(w, top))
		}
		fmt.Println()
	}
}
