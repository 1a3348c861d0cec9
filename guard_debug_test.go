// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nbq_debug

package nbq

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not mention %q", r, want)
		}
	}()
	fn()
}

// TestOwnerGuardDetectsOverlap simulates a second goroutine entering a side
// while the owner is still inside it.
func TestOwnerGuardDetectsOverlap(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	t.Run("BoundedSPSC.Enqueue", func(t *testing.T) {
		q := NewBoundedSPSC[int](4)
		q.producer.acquire("owner")
		v := 1
		mustPanic(t, "BoundedSPSC.Enqueue", func() { q.Enqueue(&v) })
	})

	t.Run("BoundedSPSC.Dequeue", func(t *testing.T) {
		q := NewBoundedSPSC[int](4)
		q.consumer.acquire("owner")
		mustPanic(t, "BoundedSPSC.Dequeue", func() { q.Dequeue() })
	})

	t.Run("LinkedSPSC.Enqueue", func(t *testing.T) {
		q := NewLinkedSPSC[int]()
		q.producer.acquire("owner")
		v := 1
		mustPanic(t, "LinkedSPSC.Enqueue", func() { q.Enqueue(&v) })
	})

	t.Run("LinkedSPSC.Dequeue", func(t *testing.T) {
		q := NewLinkedSPSC[int]()
		q.consumer.acquire("owner")
		mustPanic(t, "LinkedSPSC.Dequeue", func() { q.Dequeue() })
	})

	if !strings.Contains(buf.String(), "single-owner contract violated") {
		t.Fatalf("log output missing violation: %q", buf.String())
	}
}

// TestOwnerGuardSequential verifies back-to-back calls on one side, and a
// producer running while the consumer is inside Dequeue, are not reported.
func TestOwnerGuardSequential(t *testing.T) {
	q := NewBoundedSPSC[int](4)
	for i := range 10 {
		q.consumer.acquire("consumer")
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
		q.consumer.release()

		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if got != i {
			t.Fatalf("Dequeue: got %d, want %d", got, i)
		}
	}
}

func TestDebugEnabledWithTag(t *testing.T) {
	if !DebugEnabled {
		t.Fatal("DebugEnabled is false under the nbq_debug build tag")
	}
}
