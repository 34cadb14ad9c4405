package collections

// SinglyLinkedList is a forward-only chain. Removing from the tail costs a
// walk from the head, everything at the head is O(1).
type SinglyLinkedList[T any] struct {
	head   *linkedListNode[T]
	tail   *linkedListNode[T]
	length int
}

func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

func (l *SinglyLinkedList[T]) Len() int {
	return l.length
}

// Push appends value at the tail.
func (l *SinglyLinkedList[T]) Push(value T) *SinglyLinkedList[T] {
	newNode := &linkedListNode[T]{value: value}
	if l.head == nil {
		l.head = newNode
		l.tail = newNode
	} else {
		l.tail.next = newNode
		l.tail = newNode
	}
	l.length++
	return l
}

// Pop removes the tail value.
func (l *SinglyLinkedList[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	current := l.head
	newTail := current
	for current.next != nil {
		newTail = current
		current = current.next
	}
	l.length--
	if l.length == 0 {
		l.head = nil
		l.tail = nil
	} else {
		newTail.next = nil
		l.tail = newTail
	}
	return current.value, true
}

// Shift removes the head value.
func (l *SinglyLinkedList[T]) Shift() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = node.next
	node.next = nil
	l.length--
	if l.length == 0 {
		l.tail = nil
	}
	return node.value, true
}

// Unshift prepends value at the head.
func (l *SinglyLinkedList[T]) Unshift(value T) *SinglyLinkedList[T] {
	newNode := &linkedListNode[T]{value: value}
	if l.head == nil {
		l.head = newNode
		l.tail = newNode
	} else {
		newNode.next = l.head
		l.head = newNode
	}
	l.length++
	return l
}

func (l *SinglyLinkedList[T]) node(index int) *linkedListNode[T] {
	if index < 0 || index >= l.length {
		return nil
	}
	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

// Get returns the value at the 0-based index, or false outside [0, Len()).
func (l *SinglyLinkedList[T]) Get(index int) (T, bool) {
	n := l.node(index)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (l *SinglyLinkedList[T]) Set(index int, value T) bool {
	n := l.node(index)
	if n == nil {
		return false
	}
	n.value = value
	return true
}

// Insert puts value before the node at index. Index Len() appends.
func (l *SinglyLinkedList[T]) Insert(index int, value T) bool {
	if index < 0 || index > l.length {
		return false
	}
	if index == 0 {
		l.Unshift(value)
		return true
	}
	if index == l.length {
		l.Push(value)
		return true
	}
	prev := l.node(index - 1)
	prev.next = &linkedListNode[T]{value: value, next: prev.next}
	l.length++
	return true
}

func (l *SinglyLinkedList[T]) Remove(index int) (T, bool) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, false
	}
	if index == 0 {
		return l.Shift()
	}
	if index == l.length-1 {
		return l.Pop()
	}
	prev := l.node(index - 1)
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	l.length--
	return removed.value, true
}

// Reverse flips the chain in place.
func (l *SinglyLinkedList[T]) Reverse() *SinglyLinkedList[T] {
	current := l.head
	l.head, l.tail = l.tail, l.head
	var prev *linkedListNode[T]
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	return l
}

func (l *SinglyLinkedList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

func (l *SinglyLinkedList[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Values lists the values from head to tail.
func (l *SinglyLinkedList[T]) Values() []T {
	vs := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}

func (l *SinglyLinkedList[T]) String() string {
	return formatValues(l.Values())
}
