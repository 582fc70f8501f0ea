// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cobs implements Consistent Overhead Byte Stuffing: it removes
// every 0x00 byte from a string of input bytes, encoding its position as
// a small run-length code, so that a single 0x00 byte can delimit frames
// unambiguously on the wire.
//
// Ported from the reference C implementation (itself a port of
// cmcqueen/cobs-c, MIT licensed).
package cobs

import "errors"

var (
	// ErrOutBufferOverflow reports that the destination buffer was too
	// small to hold the encoded or decoded result.
	ErrOutBufferOverflow = errors.New("cobs: output buffer overflow")

	// ErrZeroByteInInput reports a 0x00 byte found inside a COBS-encoded
	// input during decode — the input is corrupt.
	ErrZeroByteInInput = errors.New("cobs: zero byte in input")

	// ErrInputTooShort reports that a length code implied more source
	// bytes than remained in the input.
	ErrInputTooShort = errors.New("cobs: input too short")
)

// Overhead returns the maximum number of extra bytes COBS adds when
// encoding n source bytes: one code byte per run of up to 254 bytes. This
// holds for n >= 1; an empty input still encodes to one code byte.
func Overhead(n int) int { return (n + 253) / 254 }

// EncodedLen returns the maximum encoded length for n source bytes,
// which is 1 for an empty input.
func EncodedLen(n int) int {
	if n == 0 {
		return 1
	}
	return n + Overhead(n)
}

// DecodedLen returns the maximum decoded length for n encoded bytes.
func DecodedLen(n int) int {
	if n == 0 {
		return 0
	}
	return n - 1
}

// Encode writes the COBS encoding of src into dst and returns the number
// of bytes written. It never writes 0x00; callers append a single 0x00
// sentinel themselves to delimit the frame. dst may overlap src only when
// dst starts at least Overhead(len(src)) bytes before src: the write
// position then never overtakes the unread part of src. The framer's
// Encode relies on this, encoding from its message offset into the start
// of the same buffer. Any other overlap corrupts the output.
func Encode(dst, src []byte) (n int, err error) {
	if len(src) == 0 {
		if len(dst) < 1 {
			return 0, ErrOutBufferOverflow
		}
		dst[0] = 1
		return 1, nil
	}

	codeWrite := 0
	write := 1
	searchLen := byte(1)

	for read := 0; ; {
		if write >= len(dst) {
			return 0, ErrOutBufferOverflow
		}
		b := src[read]
		read++
		if b == 0 {
			dst[codeWrite] = searchLen
			codeWrite = write
			write++
			searchLen = 1
			if read >= len(src) {
				break
			}
		} else {
			dst[write] = b
			write++
			searchLen++
			if read >= len(src) {
				break
			}
			if searchLen == 0xFF {
				dst[codeWrite] = searchLen
				codeWrite = write
				write++
				searchLen = 1
			}
		}
	}

	if codeWrite >= len(dst) {
		return 0, ErrOutBufferOverflow
	}
	dst[codeWrite] = searchLen
	return write, nil
}

// Decode writes the COBS decoding of src into dst and returns the number
// of bytes written.
//
// Decode works start-to-start, so dst and src may be the same slice (or
// dst may alias the start of src) — the decoded output is always no
// longer than the encoded input, which is exactly how the framer decodes
// a received frame in place.
func Decode(dst, src []byte) (n int, err error) {
	if len(src) == 0 {
		return 0, nil
	}

	read := 0
	write := 0
	for {
		lenCode := src[read]
		read++
		if lenCode == 0 {
			return write, ErrZeroByteInInput
		}
		lenCode--

		remaining := len(src) - read
		truncated := false
		if int(lenCode) > remaining {
			lenCode = byte(remaining)
			truncated = true
		}

		if int(lenCode) > len(dst)-write {
			return write, ErrOutBufferOverflow
		}

		for i := 0; i < int(lenCode); i++ {
			b := src[read]
			read++
			if b == 0 {
				return write + i + 1, ErrZeroByteInInput
			}
			dst[write+i] = b
		}
		write += int(lenCode)

		if truncated {
			return write, ErrInputTooShort
		}

		if read >= len(src) {
			break
		}

		if lenCode != 0xFE {
			if write >= len(dst) {
				return write, ErrOutBufferOverflow
			}
			dst[write] = 0
			write++
		}
	}

	return write, nil
}
