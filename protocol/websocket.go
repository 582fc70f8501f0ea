// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "github.com/pascaldekloe/websocket"

// NewWebSocket wraps a websocket.Conn. Every encoded frame is sent as one
// complete binary WebSocket message; conn.Read is treated as a plain byte
// stream since a COBS frame is self-delimited by its own sentinel and
// does not depend on the WebSocket message boundary.
//
// buf must be at least framer.BufferSize(maxPayload+1, crc-size-of(selected
// CRC)) bytes.
func NewWebSocket(conn *websocket.Conn, buf []byte, maxPayload int, opts ...Option) (*Protocol, error) {
	conn.WriteFinal(websocket.Binary)
	return New(conn, buf, maxPayload, opts...)
}
