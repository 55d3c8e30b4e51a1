package circledrawer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Node is a single element of the singly-linked list.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// List is the handle owning the chain of nodes starting at its head.
// Nil handle is the empty list.
type List[T any] struct {
	// chain is shared by every copy of the handle, so consuming one copy consumes all of them.
	chain *chain[T]
}

type chain[T any] struct {
	head *Node[T]

	// consumed is set once the handle has been given to TransferHead. Nodes reachable from a consumed handle
	// belong to other handles now, so it must never be followed again.
	consumed bool
}

func newList[T any](head *Node[T]) *List[T] {
	return &List[T]{chain: &chain[T]{head: head}}
}

// ArrayToList builds a list holding items in the same order, items[0] becomes the head.
func ArrayToList[T any](items []T) *List[T] {
	var head *Node[T]
	for i := len(items) - 1; i >= 0; i-- {
		head = &Node[T]{
			value: items[i],
			next:  head,
		}
	}
	return newList(head)
}

// ListToArray returns values of the list from head to tail.
func ListToArray[T any](list *List[T]) ([]T, error) {
	values := []T{}
	if err := list.walk(func(v T) {
		values = append(values, v)
	}); err != nil {
		return nil, err
	}
	return values, nil
}

// TransferHead moves the head node of source to the front of destination.
// Both handles are consumed, the returned ones replace them.
func TransferHead[T any](source, destination *List[T]) (*List[T], *List[T], error) {
	if err := source.check(); err != nil {
		return nil, nil, errors.WithMessage(err, "source")
	}
	if err := destination.check(); err != nil {
		return nil, nil, errors.WithMessage(err, "destination")
	}
	if source.Empty() {
		return nil, nil, errors.Wrap(ErrInvalidOperation, "head transfer from empty list")
	}
	if source.chain == destination.state() {
		return nil, nil, errors.Wrap(ErrInvalidOperation, "head transfer within the same list")
	}

	node := source.chain.head
	newSource := newList(node.next)

	var destinationHead *Node[T]
	if c := destination.state(); c != nil {
		destinationHead = c.head
		c.head = nil
		c.consumed = true
	}
	source.chain.head = nil
	source.chain.consumed = true

	node.next = destinationHead
	return newSource, newList(node), nil
}

// Len returns the number of nodes in the list, -1 is returned if the list is consumed or broken.
func (l *List[T]) Len() int {
	var length int
	if err := l.walk(func(T) { length++ }); err != nil {
		return -1
	}
	return length
}

// Empty returns true if there are no nodes in the list.
func (l *List[T]) Empty() bool {
	return l.state() == nil || l.chain.head == nil
}

// Head returns the value stored in the head node.
func (l *List[T]) Head() (T, bool) {
	if l.Empty() {
		var v T
		return v, false
	}
	return l.chain.head.value, true
}

// Consumed returns true if the handle has been replaced by the result of TransferHead.
func (l *List[T]) Consumed() bool {
	return l.state() != nil && l.chain.consumed
}

func (l *List[T]) String() string {
	values, err := ListToArray(l)
	if err != nil {
		return fmt.Sprintf("<%s>", err)
	}

	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, fmt.Sprint(v))
	}
	return "[" + strings.Join(items, " ") + "]"
}

// state returns the chain of the handle, nil for the empty list.
func (l *List[T]) state() *chain[T] {
	if l == nil {
		return nil
	}
	return l.chain
}

func (l *List[T]) check() error {
	if l.Consumed() {
		return errors.Wrap(ErrInvalidOperation, "list handle has been consumed by head transfer")
	}
	return nil
}

// walk calls fn for every value from head to tail.
func (l *List[T]) walk(fn func(v T)) error {
	if err := l.check(); err != nil {
		return err
	}
	if l.Empty() {
		return nil
	}

	// slow moves by one node, fast by two, they meet only if the chain has a cycle
	var count int
	slow, fast := l.chain.head, l.chain.head
	for n := l.chain.head; n != nil; n = n.next {
		fn(n.value)
		count++

		if fast != nil && fast.next != nil {
			slow = slow.next
			fast = fast.next.next
			if slow == fast {
				return errors.Wrapf(ErrInvariantViolation, "cycle detected after %d nodes", count)
			}
		}
	}
	return nil
}
