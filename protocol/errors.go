// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "errors"

var (
	// ErrKindMismatch reports that Decode or DecodeHeap was called for a
	// Kind other than the one last returned by Poll.
	ErrKindMismatch = errors.New("protocol: kind mismatch")

	// ErrShortWrite reports that the underlying transport wrote fewer
	// bytes than a Send produced.
	ErrShortWrite = errors.New("protocol: short write")
)
