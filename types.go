// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbq

// Queue is the combined producer-consumer interface for a FIFO queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Dequeue
// returns ErrWouldBlock on an empty queue; bounded queues additionally
// return ErrWouldBlock from Enqueue when full.
//
// Length is intentionally not provided: an exact count would need a shared
// counter updated by both sides, which is the traffic these queues avoid.
//
// Example:
//
//	q := nbq.NewMPMC[int]()
//
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // nil element
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
}

// BoundedQueue is a Queue with a fixed usable capacity.
type BoundedQueue[T any] interface {
	Queue[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer; a nil pointer is the absent value and
// is rejected with ErrInvalidArgument. The queue stores a copy of the
// pointed-to value, so the original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrInvalidArgument if elem is nil,
	// ErrWouldBlock if a bounded queue is full.
	//
	// Thread safety depends on queue type:
	//   - BoundedSPSC/LinkedSPSC: single producer only
	//   - MPMC: multiple producers safe
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The queue's own reference to it is
// cleared so the garbage collector may reclaim anything it points to.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Thread safety depends on queue type:
	//   - BoundedSPSC/LinkedSPSC: single consumer only
	//   - MPMC: multiple consumers safe
	Dequeue() (T, error)
}

var (
	_ Queue[int]        = (*MPMC[int])(nil)
	_ Queue[int]        = (*LinkedSPSC[int])(nil)
	_ BoundedQueue[int] = (*BoundedSPSC[int])(nil)
)
