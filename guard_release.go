// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !nbq_debug

package nbq

import "log/slog"

// DebugEnabled is false in release builds.
const DebugEnabled = false

// SetLogger is a no-op in release builds.
// The signature matches the debug build so callers compile either way.
func SetLogger(l *slog.Logger) {}

// ownerGuard is empty in release builds; calls inline away.
type ownerGuard struct{}

func (g *ownerGuard) acquire(op string) {}

func (g *ownerGuard) release() {}
