// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serializer

import "code.hybscloud.com/bakelite/stream"

// WriteBytes writes exactly len(v) bytes, no length prefix — a fixed-size
// byte array whose length is part of the schema.
func WriteBytes(b *stream.Buffer, v []byte) error {
	_, err := b.Write(v)
	return err
}

// ReadBytes reads exactly len(v) bytes into v.
func ReadBytes(b *stream.Buffer, v []byte) error {
	_, err := b.Read(v)
	return err
}

// WriteVarBytes writes a length prefix of width w followed by v.
func WriteVarBytes(b *stream.Buffer, v []byte, w LenWidth) error {
	if err := writeLen(b, len(v), w); err != nil {
		return err
	}
	return WriteBytes(b, v)
}

// ReadVarBytesInline reads a length-prefixed byte string into dst, which
// must have capacity for the wire length; otherwise ErrCapacityExceeded.
// Returns the number of bytes actually read.
func ReadVarBytesInline(b *stream.Buffer, dst []byte, w LenWidth) (int, error) {
	n, err := readLen(b, w)
	if err != nil {
		return 0, err
	}
	if n > len(dst) {
		return 0, ErrCapacityExceeded
	}
	if err := ReadBytes(b, dst[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadVarBytesHeap reads a length-prefixed byte string, allocating its
// backing storage from h.
func ReadVarBytesHeap(b *stream.Buffer, h *stream.Heap, w LenWidth) ([]byte, error) {
	n, err := readLen(b, w)
	if err != nil {
		return nil, err
	}
	v, ok := h.Alloc(n)
	if !ok {
		return nil, ErrAllocBytes
	}
	if err := ReadBytes(b, v); err != nil {
		return nil, err
	}
	return v, nil
}
