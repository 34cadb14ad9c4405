package collections

import (
	"golang.org/x/exp/constraints"
)

type bstNode[T any] struct {
	value T
	left  *bstNode[T]
	right *bstNode[T]
	count int
}

// BinarySearchTree is an unbalanced binary search tree with multiset
// semantics: inserting a value already present bumps that node's count.
// The zero value has no ordering; build trees with NewBinarySearchTree or
// NewBinarySearchTreeFunc.
type BinarySearchTree[T any] struct {
	root    *bstNode[T]
	compare func(a, b T) int
	size    int
	total   int
}

func orderedComparator[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func NewBinarySearchTree[T constraints.Ordered]() *BinarySearchTree[T] {
	return NewBinarySearchTreeFunc(orderedComparator[T])
}

// NewBinarySearchTreeFunc builds a tree ordered by compare, which returns a
// negative number when a < b, zero when a == b and a positive number when a > b.
func NewBinarySearchTreeFunc[T any](compare func(a, b T) int) *BinarySearchTree[T] {
	return &BinarySearchTree[T]{compare: compare}
}

func (t *BinarySearchTree[T]) Insert(value T) *BinarySearchTree[T] {
	if t.compare == nil {
		panic("collections: BinarySearchTree has no comparator, use NewBinarySearchTree or NewBinarySearchTreeFunc")
	}
	t.total++
	if t.root == nil {
		t.root = &bstNode[T]{value: value, count: 1}
		t.size++
		return t
	}
	current := t.root
	for {
		c := t.compare(value, current.value)
		switch {
		case c == 0:
			current.count++
			return t
		case c < 0:
			if current.left == nil {
				current.left = &bstNode[T]{value: value, count: 1}
				t.size++
				return t
			}
			current = current.left
		default:
			if current.right == nil {
				current.right = &bstNode[T]{value: value, count: 1}
				t.size++
				return t
			}
			current = current.right
		}
	}
}

func (t *BinarySearchTree[T]) lookup(value T) *bstNode[T] {
	current := t.root
	for current != nil {
		c := t.compare(value, current.value)
		if c < 0 {
			current = current.left
		} else if c > 0 {
			current = current.right
		} else {
			return current
		}
	}
	return nil
}

func (t *BinarySearchTree[T]) Find(value T) bool {
	return t.lookup(value) != nil
}

// Count returns how many times value was inserted.
func (t *BinarySearchTree[T]) Count(value T) int {
	if n := t.lookup(value); n != nil {
		return n.count
	}
	return 0
}

// Size is the number of nodes, i.e. distinct values.
func (t *BinarySearchTree[T]) Size() int {
	return t.size
}

// Len is the number of insertions, duplicates included.
func (t *BinarySearchTree[T]) Len() int {
	return t.total
}

func height[T any](n *bstNode[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Height counts nodes on the longest root to leaf path; 0 for an empty tree.
func (t *BinarySearchTree[T]) Height() int {
	return height(t.root)
}

func (t *BinarySearchTree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

func (t *BinarySearchTree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

func (t *BinarySearchTree[T]) inOrderNodes() []*bstNode[T] {
	nodes := make([]*bstNode[T], 0, t.size)
	pending := NewStack[*bstNode[T]]()
	current := t.root
	for current != nil || !pending.Empty() {
		for current != nil {
			pending.Push(current)
			current = current.left
		}
		current, _ = pending.Pop()
		nodes = append(nodes, current)
		current = current.right
	}
	return nodes
}

// InOrder lists the distinct values in ascending order.
func (t *BinarySearchTree[T]) InOrder() []T {
	nodes := t.inOrderNodes()
	vs := make([]T, len(nodes))
	for i, n := range nodes {
		vs[i] = n.value
	}
	return vs
}

// walk visits every node in the order frontier hands them back. A Stack
// yields pre-order, a Queue yields level order.
func (t *BinarySearchTree[T]) walk(frontier Deque[*bstNode[T]], rightFirst bool) []T {
	vs := make([]T, 0, t.size)
	if t.root == nil {
		return vs
	}
	frontier.Push(t.root)
	for frontier.Size() > 0 {
		n, _ := frontier.Pop()
		vs = append(vs, n.value)
		first, second := n.left, n.right
		if rightFirst {
			first, second = second, first
		}
		if first != nil {
			frontier.Push(first)
		}
		if second != nil {
			frontier.Push(second)
		}
	}
	return vs
}

func (t *BinarySearchTree[T]) PreOrder() []T {
	return t.walk(NewStack[*bstNode[T]](), true)
}

func (t *BinarySearchTree[T]) LevelOrder() []T {
	return t.walk(NewQueue[*bstNode[T]](), false)
}

func (t *BinarySearchTree[T]) String() string {
	return formatValues(t.InOrder())
}
