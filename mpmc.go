// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is an unbounded multi-producer multi-consumer linked queue.
//
// A two-phase variant of the Michael-Scott queue. Producers swap tail to
// their new node and only then link the previous tail to it; consumers
// advance head with CAS. head always points at a consumed dummy node.
//
// Enqueue is wait-free (one swap, one store). Dequeue is lock-free: a CAS
// failure means another consumer made progress.
//
// Between a producer's tail swap and its link store the new node is not
// reachable from head. A concurrent Dequeue in that window returns
// ErrWouldBlock even though an enqueue is in flight, and nodes enqueued
// after it by other producers stay hidden until the link lands. This is
// an accepted transient empty, not a loss: every accepted element is
// eventually dequeued exactly once.
//
// Memory: one node allocation per element, reclaimed by the GC once head
// moves past it.
type MPMC[T any] struct {
	_    pad
	head atomix.Pointer[node[T]] // Consumers CAS here
	_    padPtr
	tail atomix.Pointer[node[T]] // Producers swap here
	_    padPtr
}

// NewMPMC creates a new unbounded MPMC queue.
func NewMPMC[T any]() *MPMC[T] {
	q := &MPMC[T]{}
	dummy := &node[T]{}
	q.head.StoreRelease(dummy)
	q.tail.StoreRelease(dummy)
	return q
}

// Enqueue adds an element to the queue.
// Returns ErrInvalidArgument if elem is nil. Never reports full.
func (q *MPMC[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	n := &node[T]{value: *elem}
	// Swap order is the FIFO order among producers.
	prev := q.tail.SwapAcqRel(n)
	// Publishes n, including value, to consumers loading prev.next.
	prev.next.StoreRelease(n)
	return nil
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if no linked element is available.
func (q *MPMC[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		next := head.next.LoadAcquire()
		if next == nil {
			var zero T
			return zero, ErrWouldBlock
		}

		if q.head.CompareAndSwapAcqRel(head, next) {
			// next is the new dummy; only the CAS winner touches its value.
			elem := next.value
			var zero T
			next.value = zero
			return elem, nil
		}

		sw.Once()
	}
}
