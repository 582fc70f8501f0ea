// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package framer implements a self-synchronizing byte-stream framer:
// COBS byte-stuffing with a single 0x00 sentinel, plus an optional
// trailing CRC, over one caller-owned buffer.
//
// A single buffer serves as encoded staging, decoded staging, and
// zero-copy message scratch, laid out so COBS-encode can write forward
// into the region it is reading from without aliasing:
//
//	[ overhead bytes | payload[len] | crc[crc_size] | sentinel ]
//	                 ^ message offset
//
// Ported from original_source's ctiny/cobs.h (BAKELITE_FRAMER_*,
// bakelite_framer_*), built on this module's functional-options
// construction style.
package framer

import (
	"code.hybscloud.com/bakelite/crc"
	"code.hybscloud.com/bakelite/internal/cobs"
)

// DecodeStatus is the terminal outcome of feeding a frame's bytes to ReadByte.
type DecodeStatus uint8

const (
	DecodeOK DecodeStatus = iota
	DecodeNotReady
	DecodeFailure
	DecodeCRCFailure
	DecodeBufferOverrun
)

func (s DecodeStatus) String() string {
	switch s {
	case DecodeOK:
		return "ok"
	case DecodeNotReady:
		return "not-ready"
	case DecodeFailure:
		return "decode-failure"
	case DecodeCRCFailure:
		return "crc-failure"
	case DecodeBufferOverrun:
		return "buffer-overrun"
	default:
		return "unknown"
	}
}

// Result is the outcome of an Encode or EncodeCopy call.
type Result struct {
	Length int
	Data   []byte
}

// DecodeResult is the outcome of a ReadByte call.
type DecodeResult struct {
	Status DecodeStatus
	Length int
	Data   []byte
}

// Framer encodes payloads into COBS+CRC frames and decodes a byte stream
// back into payloads, one byte at a time. It owns no memory beyond the
// buffer passed to New.
type Framer struct {
	buf            []byte
	maxMessageSize int
	messageOffset  int
	crcSize        int
	crcType        crc.Kind
	crcSeed        uint32
	readPos        int
}

// Overhead returns the worst-case COBS expansion for n source bytes.
func Overhead(n int) int { return cobs.Overhead(n) }

// MessageOffset returns the byte offset within a Framer's buffer at which
// the plaintext payload sits during encode, and at which the decoded
// payload is restored after a successful decode.
func MessageOffset(maxMessageSize, crcSize int) int {
	return cobs.Overhead(maxMessageSize + crcSize)
}

// BufferSize returns the minimum backing buffer length New requires for
// the given max message size and CRC trailer size.
func BufferSize(maxMessageSize, crcSize int) int {
	return MessageOffset(maxMessageSize, crcSize) + maxMessageSize + crcSize + 1
}

// New creates a Framer over buf, which must be at least
// BufferSize(maxMessageSize, crc-size-of(selected CRC)) bytes.
func New(buf []byte, maxMessageSize int, opts ...Option) (*Framer, error) {
	if maxMessageSize <= 0 {
		return nil, ErrInvalidArgument
	}
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	crcSize := o.CRCType.Size()
	want := BufferSize(maxMessageSize, crcSize)
	if len(buf) < want {
		return nil, ErrInvalidArgument
	}
	return &Framer{
		buf:            buf,
		maxMessageSize: maxMessageSize,
		messageOffset:  MessageOffset(maxMessageSize, crcSize),
		crcSize:        crcSize,
		crcType:        o.CRCType,
		crcSeed:        o.CRCSeed,
	}, nil
}

// MessageBuffer returns the writable payload area for zero-copy
// producers: max message size plus one leading byte for the protocol
// multiplexer's discriminant tag.
func (f *Framer) MessageBuffer() []byte {
	return f.buf[f.messageOffset : f.messageOffset+f.maxMessageSize+1]
}

// MessageBufferSize returns len(f.MessageBuffer()).
func (f *Framer) MessageBufferSize() int { return f.maxMessageSize + 1 }

// BufferSize returns the total length of the backing buffer f owns.
func (f *Framer) BufferSize() int { return len(f.buf) }

func (f *Framer) appendCRC(data []byte, length int) {
	if f.crcSize == 0 {
		return
	}
	v := crc.Compute(f.crcType, data[:length], f.crcSeed)
	for i := 0; i < f.crcSize; i++ {
		data[length+i] = byte(v >> (8 * i))
	}
}

func (f *Framer) verifyCRC(data []byte, length int) bool {
	if f.crcSize == 0 {
		return true
	}
	var want uint32
	for i := 0; i < f.crcSize; i++ {
		want |= uint32(data[length+i]) << (8 * i)
	}
	return crc.Compute(f.crcType, data[:length], f.crcSeed) == want
}

// EncodeCopy copies src into the payload slot and encodes it.
func (f *Framer) EncodeCopy(src []byte) (Result, error) {
	if len(src) > f.maxMessageSize {
		return Result{}, ErrTooLong
	}
	copy(f.buf[f.messageOffset:], src)
	return f.Encode(len(src))
}

// Encode CRC-trails and COBS-encodes the length bytes of payload already
// sitting at f.MessageBuffer(), appends the frame sentinel, and returns
// the encoded frame (a slice into f's backing buffer, valid until the
// next Encode/EncodeCopy/ReadByte call).
func (f *Framer) Encode(length int) (Result, error) {
	if length < 0 || length > f.maxMessageSize {
		return Result{}, ErrTooLong
	}
	msgStart := f.buf[f.messageOffset:]
	f.appendCRC(msgStart, length)

	n, err := cobs.Encode(f.buf, msgStart[:length+f.crcSize])
	if err != nil {
		return Result{}, ErrEncode
	}
	f.buf[n] = 0
	return Result{Length: n + 1, Data: f.buf[:n+1]}, nil
}

// decodeFrame implements bakelite_framer_decode_frame: it runs once the
// sentinel for a frame of the given accumulated length (sentinel included)
// has arrived, and always leaves the framer idle on return.
func (f *Framer) decodeFrame(length int) DecodeResult {
	if length == 1 {
		return DecodeResult{Status: DecodeFailure}
	}
	length-- // discard the trailing sentinel, not part of the COBS input

	n, err := cobs.Decode(f.buf, f.buf[:length])
	if err != nil {
		return DecodeResult{Status: DecodeFailure}
	}

	payloadLen := n - f.crcSize
	if payloadLen < 0 {
		return DecodeResult{Status: DecodeFailure}
	}
	if !f.verifyCRC(f.buf, payloadLen) {
		return DecodeResult{Status: DecodeCRCFailure}
	}

	if f.messageOffset > 0 {
		copy(f.buf[f.messageOffset:f.messageOffset+payloadLen], f.buf[:payloadLen])
	}
	return DecodeResult{
		Status: DecodeOK,
		Length: payloadLen,
		Data:   f.buf[f.messageOffset : f.messageOffset+payloadLen],
	}
}

// ReadByte feeds one inbound byte to the framer. It returns DecodeNotReady
// until a sentinel or a buffer overrun ends the frame; every terminal
// outcome (ok, decode-failure, crc-failure, buffer-overrun) resets the
// framer to idle so the next byte begins a fresh frame.
func (f *Framer) ReadByte(b byte) DecodeResult {
	f.buf[f.readPos] = b
	length := f.readPos + 1

	if b == 0 {
		f.readPos = 0
		return f.decodeFrame(length)
	}
	if length == len(f.buf) {
		f.readPos = 0
		return DecodeResult{Status: DecodeBufferOverrun}
	}
	f.readPos++
	return DecodeResult{Status: DecodeNotReady}
}
