// Package list provides a generic singly linked list with an indexed,
// ordered-collection API (Get, Set, Add, Insert, RemoveAt, Remove, Contains,
// IndexOf, Clear, CopyTo) and read-only iteration.
//
// Every positional operation walks the chain from the head, so indexed
// access is O(n). A List is not safe for concurrent use.
package list

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// List is a singly linked list of T. The zero value is an empty list that
// compares elements with reflect.DeepEqual.
type List[T any] struct {
	head  *Node[T]
	count int
	equal EqualFunc[T]
}

// New creates a list holding values in order, compared with ==. Interface
// values whose dynamic type is not comparable are compared with
// reflect.DeepEqual instead.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{equal: defaultEqual[T]()}
	l.appendAll(slices.Values(values))
	return l
}

// FromSlice creates a list from values. A nil slice is rejected with
// ErrInvalidArgument; an empty one yields an empty list.
func FromSlice[T comparable](values []T) (*List[T], error) {
	return FromSliceFunc(defaultEqual[T](), values)
}

// FromSeq creates a list from a finite sequence, in iteration order.
func FromSeq[T comparable](seq iter.Seq[T]) (*List[T], error) {
	return FromSeqFunc(defaultEqual[T](), seq)
}

// NewFunc creates a list holding values in order, compared with equal.
func NewFunc[T any](equal EqualFunc[T], values ...T) (*List[T], error) {
	if equal == nil {
		return nil, absentError("equal")
	}
	l := &List[T]{equal: equal}
	l.appendAll(slices.Values(values))
	return l, nil
}

// FromSliceFunc is FromSlice with an explicit equality function.
func FromSliceFunc[T any](equal EqualFunc[T], values []T) (*List[T], error) {
	if values == nil {
		return nil, absentError("values")
	}
	return NewFunc(equal, values...)
}

// FromSeqFunc is FromSeq with an explicit equality function.
func FromSeqFunc[T any](equal EqualFunc[T], seq iter.Seq[T]) (*List[T], error) {
	if equal == nil {
		return nil, absentError("equal")
	}
	if seq == nil {
		return nil, absentError("seq")
	}
	l := &List[T]{equal: equal}
	l.appendAll(seq)
	return l, nil
}

func (l *List[T]) appendAll(seq iter.Seq[T]) {
	tail := l.slot(l.count)
	for v := range seq {
		n := &Node[T]{Value: v}
		*tail = n
		tail = &n.next
		l.count++
	}
}

// slot returns the link owning the node at index: &l.head for 0, else the
// predecessor's next field. slot(l.count) is the nil link after the tail.
// Callers check the range.
func (l *List[T]) slot(index int) **Node[T] {
	link := &l.head
	for i := 0; i < index; i++ {
		link = &(*link).next
	}
	return link
}

// find returns the position and owning link of the first node equal to
// item, or -1 and nil.
func (l *List[T]) find(item T) (int, **Node[T]) {
	link := &l.head
	for i := 0; *link != nil; i++ {
		if l.matches((*link).Value, item) {
			return i, link
		}
		link = &(*link).next
	}
	return -1, nil
}

func (l *List[T]) matches(a, b T) bool {
	if l.equal == nil {
		return reflect.DeepEqual(a, b)
	}
	return l.equal(a, b)
}

// unlink splices out the node held by link.
func (l *List[T]) unlink(link **Node[T]) {
	removed := *link
	*link = removed.next
	removed.next = nil
	l.count--
}

func (l *List[T]) inRange(index int) bool {
	return index >= 0 && index < l.count
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.count
}

// IsReadOnly is always false.
func (l *List[T]) IsReadOnly() bool {
	return false
}

// Front returns the head node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if !l.inRange(index) {
		var zero T
		return zero, indexError(index, l.count)
	}
	return (*l.slot(index)).Value, nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, value T) error {
	if !l.inRange(index) {
		return indexError(index, l.count)
	}
	(*l.slot(index)).Value = value
	return nil
}

// Add appends item at the tail.
func (l *List[T]) Add(item T) error {
	if isAbsent(item) {
		return absentError("item")
	}
	*l.slot(l.count) = &Node[T]{Value: item}
	l.count++
	return nil
}

// Insert places item before the element currently at index. An index equal
// to Len appends.
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > l.count {
		return fmt.Errorf("%w: insert position %d, valid range [0, %d]", ErrIndexOutOfRange, index, l.count)
	}
	if isAbsent(item) {
		return absentError("item")
	}
	link := l.slot(index)
	*link = &Node[T]{Value: item, next: *link}
	l.count++
	return nil
}

// RemoveAt removes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	if !l.inRange(index) {
		return indexError(index, l.count)
	}
	l.unlink(l.slot(index))
	return nil
}

// Remove removes the first element equal to item and reports whether one
// was found.
func (l *List[T]) Remove(item T) (bool, error) {
	if isAbsent(item) {
		return false, absentError("item")
	}
	_, link := l.find(item)
	if link == nil {
		return false, nil
	}
	l.unlink(link)
	return true, nil
}

// Contains reports whether an element equal to item is present.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) != -1
}

// IndexOf returns the position of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	index, _ := l.find(item)
	return index
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head = nil
	l.count = 0
}

// CopyTo copies the elements into dst starting at offset. dst must have at
// least Len slots from offset onwards; nothing is written otherwise.
func (l *List[T]) CopyTo(dst []T, offset int) error {
	if dst == nil {
		return absentError("dst")
	}
	if offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrIndexOutOfRange, offset)
	}
	if room := len(dst) - offset; room < l.count {
		return fmt.Errorf("%w: %d elements do not fit in %d slots from offset %d", ErrInvalidOperation, l.count, max(room, 0), offset)
	}
	i := offset
	for n := l.head; n != nil; n = n.next {
		dst[i] = n.Value
		i++
	}
	return nil
}

// ToSlice returns the elements in order in a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// Clone returns an independent copy sharing the equality function.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{equal: l.equal}
	c.appendAll(l.Values())
	return c
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
