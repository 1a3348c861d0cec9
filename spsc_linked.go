// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbq

import "code.hybscloud.com/atomix"

// LinkedSPSC is a single-producer single-consumer unbounded linked queue.
//
// The producer links a new node after tail and then publishes it by
// advancing tail; the consumer compares head against tail and follows
// head.next. Each pointer has one writer, so no CAS is needed.
//
// head is touched only by the consumer and needs no atomic access.
//
// Memory: one node allocation per element, reclaimed by the GC once head
// moves past it.
type LinkedSPSC[T any] struct {
	_        pad
	head     *node[T] // Consumer-owned dummy
	_        padPtr
	tail     atomix.Pointer[node[T]] // Producer writes, consumer reads
	_        padPtr
	producer ownerGuard
	consumer ownerGuard
}

// NewLinkedSPSC creates a new unbounded SPSC queue.
func NewLinkedSPSC[T any]() *LinkedSPSC[T] {
	dummy := &node[T]{}
	q := &LinkedSPSC[T]{head: dummy}
	q.tail.StoreRelease(dummy)
	return q
}

// Enqueue adds an element (producer only).
// Returns ErrInvalidArgument if elem is nil. Never reports full.
func (q *LinkedSPSC[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	q.producer.acquire("LinkedSPSC.Enqueue")
	n := &node[T]{value: *elem}
	q.tail.LoadAcquire().next.StoreRelease(n)
	q.tail.StoreRelease(n)
	q.producer.release()
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *LinkedSPSC[T]) Dequeue() (T, error) {
	q.consumer.acquire("LinkedSPSC.Dequeue")
	elem, err := q.dequeue()
	q.consumer.release()
	return elem, err
}

func (q *LinkedSPSC[T]) dequeue() (T, error) {
	head := q.head
	if head == q.tail.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	// tail moved past head, so head.next was stored before it.
	next := head.next.LoadAcquire()
	elem := next.value
	var zero T
	next.value = zero
	q.head = next
	return elem, nil
}
