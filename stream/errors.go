// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "errors"

var (
	// ErrWriteOverflow reports that a Write would advance pos past capacity.
	ErrWriteOverflow = errors.New("stream: write overflow")

	// ErrReadUnderflow reports that a Read would advance pos past capacity.
	ErrReadUnderflow = errors.New("stream: read underflow")

	// ErrSeekRange reports that a Seek target is out of range.
	ErrSeekRange = errors.New("stream: seek out of range")

	// ErrAllocBytes reports that a Heap allocation could not be satisfied.
	ErrAllocBytes = errors.New("stream: heap allocation failed")
)
