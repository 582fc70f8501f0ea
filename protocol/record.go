// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "code.hybscloud.com/bakelite/stream"

// Kind is the one-byte discriminant tag a Protocol places at the front of
// every frame's payload. 0 is a legal kind; NoMessage is the sentinel a
// caller never sees from a generated schema.
type Kind uint8

// NoMessage is returned by Poll when no complete, valid frame was decoded
// on this call.
const NoMessage Kind = 0xFF

// Record is the contract a schema compiler's generated message types
// satisfy, so that Protocol can Pack/Unpack them without depending on any
// specific schema.
//
// EncodedSize reports the record's packed length when every field is
// fixed-width (no variable-length arrays, bytes, or strings); it returns
// 0 for a variable-layout record. Protocol does not call it:
// SendZeroCopy takes the body length from its encode callback.
type Record interface {
	Pack(b *stream.Buffer) error
	Unpack(b *stream.Buffer, h *stream.Heap) error
	EncodedSize() int
}
