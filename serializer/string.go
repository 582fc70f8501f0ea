// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serializer

import "code.hybscloud.com/bakelite/stream"

// WriteString writes s's bytes followed by a single zero terminator. There
// is no length prefix; the terminator is the only delimiter.
func WriteString(b *stream.Buffer, s string) error {
	if err := WriteBytes(b, []byte(s)); err != nil {
		return err
	}
	return WriteUint8(b, 0)
}

// ReadStringInline reads a nul-terminated string into dst, which must have
// room for at least one byte. It fills dst[0:len(dst)-1] at most. A string
// that fits is nul-terminated right after its last byte; a truncated one
// is nul-terminated at index len(dst)-1.
//
// If the string on the wire is longer than dst can hold, the remaining
// bytes up to and including the terminator are read and discarded — the
// stream stays in sync even though the string is truncated. Returns the
// number of string bytes actually stored (excluding the terminator).
func ReadStringInline(b *stream.Buffer, dst []byte) (int, error) {
	capacity := len(dst)
	i := 0
	for i < capacity-1 {
		var c [1]byte
		if _, err := b.Read(c[:]); err != nil {
			return 0, err
		}
		dst[i] = c[0]
		if c[0] == 0 {
			return i, nil
		}
		i++
	}
	for {
		var c [1]byte
		if _, err := b.Read(c[:]); err != nil {
			return 0, err
		}
		if c[0] == 0 {
			break
		}
	}
	dst[capacity-1] = 0
	return capacity - 1, nil
}

// ReadStringHeap reads a nul-terminated string one byte at a time,
// committing each byte to h as it arrives, and returns the committed span
// excluding the terminator (which still takes one byte of h).
func ReadStringHeap(b *stream.Buffer, h *stream.Heap) ([]byte, error) {
	start := h.Pos()
	for {
		c, ok := h.Alloc(1)
		if !ok {
			return nil, ErrAllocBytes
		}
		if _, err := b.Read(c); err != nil {
			return nil, err
		}
		if c[0] == 0 {
			return h.Bytes()[start : h.Pos()-1], nil
		}
	}
}

// WriteFixedString writes exactly n bytes: s's bytes (truncated to n-1 if
// longer) followed by zero padding through a terminator at index n-1.
func WriteFixedString(b *stream.Buffer, s string, n int) error {
	buf := make([]byte, n)
	copy(buf, s)
	if len(s) >= n {
		buf[n-1] = 0
	}
	return WriteBytes(b, buf)
}

// ReadFixedString reads exactly len(dst) bytes with no prefix or
// terminator semantics — the caller's dst defines the exact field width.
func ReadFixedString(b *stream.Buffer, dst []byte) error {
	return ReadBytes(b, dst)
}
