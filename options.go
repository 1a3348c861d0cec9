// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbq

import "unsafe"

// Options configures queue creation and algorithm selection.
type Options struct {
	// Producer/Consumer constraints (determines queue type)
	singleProducer bool
	singleConsumer bool

	// Slot count for a bounded queue; 0 means unbounded
	size int
}

// Builder creates queues with fluent configuration.
//
// The builder selects the queue from the declared producer/consumer
// constraints and the optional bound.
//
// Example:
//
//	// Bounded SPSC ring with 1024 slots (1023 usable)
//	q := nbq.BuildBoundedSPSC[Event](nbq.New().SingleProducer().SingleConsumer().Bounded(1024))
//
//	// Unbounded MPMC (default, general purpose)
//	q := nbq.BuildMPMC[Request](nbq.New())
type Builder struct {
	opts Options
}

// New creates a queue builder with no constraints and no bound.
func New() *Builder {
	return &Builder{}
}

// SingleProducer declares that only one goroutine will enqueue.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Bounded requests a fixed-size ring with size slots (size-1 usable).
// Only available together with SingleProducer().SingleConsumer().
//
// Panics if size < 2.
func (b *Builder) Bounded(size int) *Builder {
	if size < 2 {
		panic("nbq: size must be >= 2")
	}
	b.opts.size = size
	return b
}

func (b *Builder) spsc() bool {
	return b.opts.singleProducer && b.opts.singleConsumer
}

// Build creates a Queue[T] with automatic algorithm selection.
//
// Algorithm selection:
//
//	SingleProducer + SingleConsumer + Bounded → BoundedSPSC (Lamport ring)
//	SingleProducer + SingleConsumer           → LinkedSPSC
//	Anything else without Bounded             → MPMC
//
// MPMC also serves the MPSC and SPMC patterns. Bounded without both
// constraints panics: there is no bounded multi-party queue.
func Build[T any](b *Builder) Queue[T] {
	switch {
	case b.spsc() && b.opts.size > 0:
		return NewBoundedSPSC[T](b.opts.size)
	case b.spsc():
		return NewLinkedSPSC[T]()
	case b.opts.size > 0:
		panic("nbq: Bounded requires SingleProducer().SingleConsumer()")
	default:
		return NewMPMC[T]()
	}
}

// BuildBoundedSPSC creates a BoundedSPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().SingleConsumer().Bounded(n).
func BuildBoundedSPSC[T any](b *Builder) *BoundedSPSC[T] {
	if !b.spsc() || b.opts.size == 0 {
		panic("nbq: BuildBoundedSPSC requires SingleProducer().SingleConsumer().Bounded(n)")
	}
	return NewBoundedSPSC[T](b.opts.size)
}

// BuildLinkedSPSC creates a LinkedSPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().SingleConsumer()
// or is Bounded.
func BuildLinkedSPSC[T any](b *Builder) *LinkedSPSC[T] {
	if !b.spsc() || b.opts.size > 0 {
		panic("nbq: BuildLinkedSPSC requires SingleProducer().SingleConsumer() without Bounded")
	}
	return NewLinkedSPSC[T]()
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// SingleProducer or SingleConsumer alone are accepted; both together,
// or Bounded, panic.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.spsc() {
		panic("nbq: BuildMPMC with SingleProducer().SingleConsumer(); use BuildLinkedSPSC")
	}
	if b.opts.size > 0 {
		panic("nbq: BuildMPMC does not support Bounded")
	}
	return NewMPMC[T]()
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padPtr is padding to fill cache line after pointer-sized field.
type padPtr [64 - ptrSize]byte
