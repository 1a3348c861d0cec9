// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nbq provides non-blocking FIFO queues for passing values
// between goroutines.
//
// Three queues cover different producer/consumer patterns:
//
//   - MPMC: unbounded, Multi-Producer Multi-Consumer, atomic swap/CAS
//   - BoundedSPSC: fixed size, Single-Producer Single-Consumer ring
//   - LinkedSPSC: unbounded, Single-Producer Single-Consumer linked list
//
// The SPSC queues use no read-modify-write instructions at all: every
// shared index or pointer has exactly one writer, and ordering comes from
// acquire loads pairing with release stores.
//
// # Quick Start
//
// Direct constructors:
//
//	q := nbq.NewMPMC[*Request]()
//	q := nbq.NewBoundedSPSC[Event](1024) // 1023 usable
//	q := nbq.NewLinkedSPSC[Event]()
//
// Builder API selects the queue from constraints:
//
//	q := nbq.Build[Event](nbq.New().SingleProducer().SingleConsumer().Bounded(1024)) // → BoundedSPSC
//	q := nbq.Build[Event](nbq.New().SingleProducer().SingleConsumer())             // → LinkedSPSC
//	q := nbq.Build[Event](nbq.New())                                               // → MPMC
//
// # Basic Usage
//
//	q := nbq.NewMPMC[int]()
//
//	// Enqueue (non-blocking)
//	value := 42
//	if err := q.Enqueue(&value); err != nil {
//	    // ErrInvalidArgument for nil, ErrWouldBlock for a full bounded queue
//	}
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if nbq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// A nil element pointer is the absent value. Enqueue rejects it with
// [ErrInvalidArgument] before touching the queue, so an empty Dequeue is
// never confused with a stored value.
//
// # Pipeline Stage (BoundedSPSC)
//
//	q := nbq.NewBoundedSPSC[Data](1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Capacity
//
// BoundedSPSC keeps one slot free to tell full from empty without a
// counter, so NewBoundedSPSC(n) holds at most n-1 elements. The size is
// used as given, not rounded. MPMC and LinkedSPSC never report full.
//
// # MPMC Transient Empty
//
// MPMC enqueue is two steps: swap tail, then link the old tail to the new
// node. A Dequeue that runs between the two steps sees no successor and
// returns [ErrWouldBlock] even though an element is on its way. Callers
// that must drain everything should wait for producers to finish (for
// example with a sync.WaitGroup) before treating ErrWouldBlock as final.
//
// # Thread Safety
//
//   - BoundedSPSC, LinkedSPSC: one producer goroutine, one consumer goroutine
//   - MPMC: any number of producer and consumer goroutines
//
// Violating the SPSC constraint causes undefined behavior including lost
// and duplicated elements. Building with -tags nbq_debug adds an owner
// guard to each SPSC side that panics on overlapping calls and logs
// through the logger set with [SetLogger].
//
// # Error Handling
//
// Full and empty are reported as [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	nbq.IsWouldBlock(err)  // true if queue full/empty
//	nbq.IsSemantic(err)    // true if control flow signal
//	nbq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established through atomix acquire/release operations. All three queues
// protect plain data (ring slots, node values) that way, so the detector
// may report false positives. Concurrent tests are skipped when
// [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic indices and node pointers with
// explicit memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package nbq
