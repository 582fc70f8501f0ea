// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "io"

// NewSerial wraps a serial port or any other blocking io.ReadWriter that
// has no natural frame boundary of its own — a UART, a pipe, a named
// pipe on Windows. buf must be at least
// framer.BufferSize(maxPayload+1, crc-size-of(selected CRC)) bytes.
func NewSerial(rw io.ReadWriter, buf []byte, maxPayload int, opts ...Option) (*Protocol, error) {
	return New(rw, buf, maxPayload, opts...)
}
