// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serializer

import "errors"

var (
	// ErrCapacityExceeded reports a variable-length field whose wire
	// length exceeds the inline destination's declared capacity.
	ErrCapacityExceeded = errors.New("serializer: capacity exceeded")

	// ErrAllocBytes reports that a Heap could not satisfy an allocation
	// while decoding a referenced (heap-backed) variable-length field.
	ErrAllocBytes = errors.New("serializer: heap allocation failed")
)
