// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nbq_debug

package nbq

import (
	"log/slog"
	"os"

	"code.hybscloud.com/atomix"
)

// DebugEnabled is true when built with the nbq_debug tag.
// SPSC queues then detect overlapping calls on the same side.
const DebugEnabled = true

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger sets the logger used to report single-owner violations.
func SetLogger(l *slog.Logger) {
	logger = l
}

// ownerGuard detects two goroutines inside one side of an SPSC queue.
// It catches overlapping calls only; sequential calls from different
// goroutines are not reported.
type ownerGuard struct {
	active atomix.Uint64
}

func (g *ownerGuard) acquire(op string) {
	if !g.active.CompareAndSwapAcqRel(0, 1) {
		logger.Error("nbq: single-owner contract violated", "op", op)
		panic("nbq: concurrent " + op + " on single-owner queue")
	}
}

func (g *ownerGuard) release() {
	g.active.StoreRelease(0)
}
