package collections

type doublyLinkedListNode[T any] struct {
	value T
	prev  *doublyLinkedListNode[T]
	next  *doublyLinkedListNode[T]
}

// DoublyLinkedList keeps a back-reference on every node, so both ends are
// O(1) and positional lookups start from the nearer end. prev never owns the
// node it points to.
type DoublyLinkedList[T any] struct {
	head   *doublyLinkedListNode[T]
	tail   *doublyLinkedListNode[T]
	length int
}

func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

func (d *DoublyLinkedList[T]) Len() int {
	return d.length
}

func (d *DoublyLinkedList[T]) Push(value T) *DoublyLinkedList[T] {
	n := &doublyLinkedListNode[T]{value: value}
	if d.length == 0 {
		d.head, d.tail = n, n
	} else {
		n.prev = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.length++
	return d
}

func (d *DoublyLinkedList[T]) Pop() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	popped := d.tail
	if d.length == 1 {
		d.head, d.tail = nil, nil
	} else {
		d.tail = popped.prev
		d.tail.next = nil
		popped.prev = nil
	}
	d.length--
	return popped.value, true
}

func (d *DoublyLinkedList[T]) Shift() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	shifted := d.head
	if d.length == 1 {
		d.head, d.tail = nil, nil
	} else {
		d.head = shifted.next
		d.head.prev = nil
		shifted.next = nil
	}
	d.length--
	return shifted.value, true
}

func (d *DoublyLinkedList[T]) Unshift(value T) *DoublyLinkedList[T] {
	n := &doublyLinkedListNode[T]{value: value}
	if d.length == 0 {
		d.head, d.tail = n, n
	} else {
		n.next = d.head
		d.head.prev = n
		d.head = n
	}
	d.length++
	return d
}

// node walks from whichever end is closer to index.
func (d *DoublyLinkedList[T]) node(index int) *doublyLinkedListNode[T] {
	if index < 0 || index >= d.length {
		return nil
	}
	if index > d.length/2 {
		n := d.tail
		for i := d.length - 1; i != index; i-- {
			n = n.prev
		}
		return n
	}
	n := d.head
	for i := 0; i != index; i++ {
		n = n.next
	}
	return n
}

func (d *DoublyLinkedList[T]) Get(index int) (T, bool) {
	n := d.node(index)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (d *DoublyLinkedList[T]) Set(index int, value T) bool {
	n := d.node(index)
	if n == nil {
		return false
	}
	n.value = value
	return true
}

func (d *DoublyLinkedList[T]) Insert(index int, value T) bool {
	if index < 0 || index > d.length {
		return false
	}
	if index == 0 {
		d.Unshift(value)
		return true
	}
	if index == d.length {
		d.Push(value)
		return true
	}
	before := d.node(index - 1)
	after := before.next
	n := &doublyLinkedListNode[T]{value: value, prev: before, next: after}
	before.next, after.prev = n, n
	d.length++
	return true
}

func (d *DoublyLinkedList[T]) Remove(index int) (T, bool) {
	if index < 0 || index >= d.length {
		var zero T
		return zero, false
	}
	if index == 0 {
		return d.Shift()
	}
	if index == d.length-1 {
		return d.Pop()
	}
	removed := d.node(index)
	removed.prev.next = removed.next
	removed.next.prev = removed.prev
	removed.prev, removed.next = nil, nil
	d.length--
	return removed.value, true
}

// Reverse swaps the links of every node, then the ends.
func (d *DoublyLinkedList[T]) Reverse() *DoublyLinkedList[T] {
	for n := d.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	d.head, d.tail = d.tail, d.head
	return d
}

func (d *DoublyLinkedList[T]) Front() (T, bool) {
	if d.head == nil {
		var zero T
		return zero, false
	}
	return d.head.value, true
}

func (d *DoublyLinkedList[T]) Back() (T, bool) {
	if d.tail == nil {
		var zero T
		return zero, false
	}
	return d.tail.value, true
}

func (d *DoublyLinkedList[T]) Values() []T {
	vs := make([]T, 0, d.length)
	for n := d.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}

// ValuesBackward lists the values from tail to head following prev.
func (d *DoublyLinkedList[T]) ValuesBackward() []T {
	vs := make([]T, 0, d.length)
	for n := d.tail; n != nil; n = n.prev {
		vs = append(vs, n.value)
	}
	return vs
}

func (d *DoublyLinkedList[T]) String() string {
	return formatValues(d.Values())
}
