// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "net"

// NewTCP wraps a TCP connection. buf must be at least
// framer.BufferSize(maxPayload+1, crc-size-of(selected CRC)) bytes.
func NewTCP(conn net.Conn, buf []byte, maxPayload int, opts ...Option) (*Protocol, error) {
	return New(conn, buf, maxPayload, opts...)
}
