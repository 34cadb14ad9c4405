package collections

import (
	"fmt"
	"strings"
)

type linkedListNode[T any] struct {
	value T
	next  *linkedListNode[T]
}

// linkedList is the chain shared by Stack and Queue: head is the end both of
// them pop from.
type linkedList[T any] struct {
	head *linkedListNode[T]
	tail *linkedListNode[T]
	size int
}

type Deque[T any] interface {
	Push(e T) int
	Pop() (T, bool)
	Size() int
}

type Stack[T any] struct {
	list *linkedList[T]
}

type Queue[T any] struct {
	list *linkedList[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		list: &linkedList[T]{},
	}
}

// Push puts e on top of the stack and returns the new number of items.
func (s *Stack[T]) Push(e T) int {
	if s.list == nil {
		s.list = &linkedList[T]{}
	}
	newNode := &linkedListNode[T]{value: e}
	if s.list.size == 0 {
		s.list.head = newNode
		s.list.tail = newNode
	} else {
		newNode.next = s.list.head
		s.list.head = newNode
	}
	s.list.size++
	return s.list.size
}

// Pop removes the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	return s.list.popHead()
}

func (s *Stack[T]) Peek() (T, bool) {
	return s.list.peekHead()
}

func (s *Stack[T]) Size() int {
	if s.list == nil {
		return 0
	}
	return s.list.size
}

func (s *Stack[T]) Empty() bool {
	return s.Size() == 0
}

// Values lists the items from top to bottom.
func (s *Stack[T]) Values() []T {
	return s.list.values()
}

func (s *Stack[T]) String() string {
	return formatValues(s.Values())
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		list: &linkedList[T]{},
	}
}

// Push appends e at the back of the queue and returns the new number of items.
func (q *Queue[T]) Push(e T) int {
	if q.list == nil {
		q.list = &linkedList[T]{}
	}
	newNode := &linkedListNode[T]{value: e}
	if q.list.size == 0 {
		q.list.head = newNode
		q.list.tail = newNode
	} else {
		q.list.tail.next = newNode
		q.list.tail = newNode
	}
	q.list.size++
	return q.list.size
}

// Pop removes the oldest item.
func (q *Queue[T]) Pop() (T, bool) {
	return q.list.popHead()
}

func (q *Queue[T]) Peek() (T, bool) {
	return q.list.peekHead()
}

func (q *Queue[T]) Size() int {
	if q.list == nil {
		return 0
	}
	return q.list.size
}

func (q *Queue[T]) Empty() bool {
	return q.Size() == 0
}

func (l *linkedList[T]) popHead() (T, bool) {
	if l == nil || l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = l.head.next
	node.next = nil
	l.size--
	if l.size == 0 {
		l.tail = nil
	}
	return node.value, true
}

func (l *linkedList[T]) peekHead() (T, bool) {
	if l == nil || l.size == 0 {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

func (l *linkedList[T]) values() []T {
	if l == nil {
		return []T{}
	}
	vs := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}

func formatValues[T any](vs []T) string {
	s := new(strings.Builder)
	s.WriteString("[")
	for i, v := range vs {
		if i > 0 {
			s.WriteString(" ")
		}
		fmt.Fprint(s, v)
	}
	s.WriteString("]")
	return s.String()
}
