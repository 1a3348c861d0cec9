// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbq

import "code.hybscloud.com/atomix"

// node is a link in the MPMC and LinkedSPSC chains.
//
// value is written once before the node is published by a release store
// of next, and cleared by the single consumer that takes it. next is the
// only field read across goroutines; readers load it with acquire.
type node[T any] struct {
	next  atomix.Pointer[node[T]]
	value T
}
