package main

import (
	"fmt"
	"math"
	"strings"

	"linear_structures/src/collections"
	"linear_structures/src/workload"
)

func replayLists(w *workload.Workload) string {
	s := new(strings.Builder)

	sll := collections.NewSinglyLinkedList[int]()
	for _, v := range w.Values {
		sll.Push(v)
	}
	fmt.Fprintln(s, "Singly linked list:", sll)
	fmt.Fprintln(s, "Reversed:", sll.Reverse())

	dll := collections.NewDoublyLinkedList[int]()
	for _, v := range w.Values {
		dll.Push(v)
	}
	dll.Unshift(0)
	fmt.Fprintln(s, "Doubly linked list:", dll)
	if removed, ok := dll.Remove(2); ok {
		fmt.Fprintf(s, "Removed %v at index 2: %v\n", removed, dll)
	} else {
		fmt.Fprintln(s, "Nothing to remove at index 2")
	}
	fmt.Fprintln(s, "Backward:", dll.ValuesBackward())
	return s.String()
}

func replayStack(w *workload.Workload) string {
	s := new(strings.Builder)

	stack := collections.NewStack[int]()
	for _, v := range w.Values {
		stack.Push(v)
	}
	if popped, ok := stack.Pop(); ok {
		fmt.Fprintln(s, "Popped:", popped)
	} else {
		fmt.Fprintln(s, "Popped: nothing, stack is empty")
	}
	fmt.Fprintln(s, "Stack (top to bottom):", stack)
	return s.String()
}

// outsideRange picks a value just below the smallest or just above the
// largest stored value, whichever does not overflow.
func outsideRange(tree *collections.BinarySearchTree[int]) (int, bool) {
	lo, ok := tree.Min()
	if !ok {
		return 0, false
	}
	if lo > math.MinInt {
		return lo - 1, true
	}
	hi, _ := tree.Max()
	if hi < math.MaxInt {
		return hi + 1, true
	}
	return 0, false
}

func replayBST(w *workload.Workload, top int) string {
	s := new(strings.Builder)

	tree := collections.NewBinarySearchTree[int]()
	for _, v := range w.Values {
		tree.Insert(v)
	}
	fmt.Fprintf(s, "Binary search tree: %d insertions, %d nodes, height %d\n", tree.Len(), tree.Size(), tree.Height())
	if missing, ok := outsideRange(tree); ok {
		fmt.Fprintf(s, "Find(%d): %v\n", missing, tree.Find(missing))
	}
	if lo, ok := tree.Min(); ok {
		fmt.Fprintf(s, "Find(%d): %v, count %d\n", lo, tree.Find(lo), tree.Count(lo))
	}
	for _, e := range tree.Frequent(top) {
		fmt.Fprintf(s, "Value %d inserted %d times\n", e.Value, e.Count)
	}
	ds := tree.Depths()
	fmt.Fprintf(s, "Node depth: mean %.3f, std dev %.3f\n", ds.Mean, ds.StdDev)
	return s.String()
}
