// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "code.hybscloud.com/iox"

// These are provided as package-level aliases so callers can reference the
// semantic control-flow errors without importing iox directly.
var (
	// ErrWouldBlock means "no further progress without waiting".
	//
	// It is an expected, non-failure control-flow signal for non-blocking I/O.
	// Any returned byte count (n) still represents real progress.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means "this completion is usable and more completions will follow".
	//
	// The operation remains active; additional data is expected from the
	// same ongoing read or write.
	ErrMore = iox.ErrMore
)
