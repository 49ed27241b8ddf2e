package list

import "iter"

// All yields index/element pairs from head to tail. It never modifies the
// list, so it can be ranged over any number of times.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; {
			next := n.next
			if !yield(i, n.Value) {
				return
			}
			n = next
			i++
		}
	}
}

// Values yields the elements from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is a forward-only cursor over a List. It holds its own position
// and leaves the list untouched.
type Iterator[T any] struct {
	next    *Node[T]
	current *Node[T]
	index   int
}

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.head, index: -1}
}

// Next advances the cursor and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		it.current = nil
		return false
	}
	it.current = it.next
	it.next = it.current.next
	it.index++
	return true
}

// Value returns the element under the cursor, or the zero value once the
// cursor is exhausted.
func (it *Iterator[T]) Value() T {
	if it.current == nil {
		var zero T
		return zero
	}
	return it.current.Value
}

// Index returns the position of the current element, -1 before the first
// call to Next.
func (it *Iterator[T]) Index() int {
	return it.index
}
