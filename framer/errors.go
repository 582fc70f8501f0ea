// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "errors"

var (
	// ErrInvalidArgument reports an invalid configuration or nil backing buffer.
	ErrInvalidArgument = errors.New("framer: invalid argument")

	// ErrTooLong reports a payload longer than the framer's max message size.
	ErrTooLong = errors.New("framer: message too long")

	// ErrEncode reports that the COBS encoder could not fit the frame in
	// the backing buffer, which should not happen for a buffer sized by
	// BufferSize but is reported rather than assumed impossible.
	ErrEncode = errors.New("framer: encode buffer overflow")
)
