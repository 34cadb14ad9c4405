package collections

import (
	"gonum.org/v1/gonum/stat"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

type Entry[T any] struct {
	Value T
	Count int
}

// Frequent returns up to k values with the highest insertion counts. Equal
// counts are ordered by ascending value.
func (t *BinarySearchTree[T]) Frequent(k int) []Entry[T] {
	if k <= 0 || t.root == nil {
		return []Entry[T]{}
	}
	nodes := t.inOrderNodes()
	pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
	rankScale := float64(len(nodes) + 1)
	for rank, n := range nodes {
		pq.Put(rank, -float64(n.count)+float64(rank)/rankScale)
	}

	entries := make([]Entry[T], 0, min(k, len(nodes)))
	for pq.Len() > 0 && len(entries) < k {
		item := pq.Get()
		n := nodes[item.Value]
		entries = append(entries, Entry[T]{Value: n.value, Count: n.count})
	}
	return entries
}

type DepthStats struct {
	Nodes  int
	Height int
	Mean   float64
	StdDev float64
}

type nodeDepth[T any] struct {
	node  *bstNode[T]
	depth int
}

// Depths summarises how deep nodes sit below the root (the root has depth 0).
// Sorted insertion order shows up as a mean close to Size()/2.
func (t *BinarySearchTree[T]) Depths() DepthStats {
	if t.root == nil {
		return DepthStats{}
	}
	depths := make([]float64, 0, t.size)
	pending := NewQueue[nodeDepth[T]]()
	pending.Push(nodeDepth[T]{t.root, 0})
	for !pending.Empty() {
		nd, _ := pending.Pop()
		depths = append(depths, float64(nd.depth))
		if nd.node.left != nil {
			pending.Push(nodeDepth[T]{nd.node.left, nd.depth + 1})
		}
		if nd.node.right != nil {
			pending.Push(nodeDepth[T]{nd.node.right, nd.depth + 1})
		}
	}

	ds := DepthStats{Nodes: len(depths), Height: t.Height()}
	if len(depths) == 1 {
		return ds
	}
	ds.Mean, ds.StdDev = stat.MeanStdDev(depths, nil)
	return ds
}
