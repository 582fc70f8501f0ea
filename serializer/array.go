// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package serializer

import "code.hybscloud.com/bakelite/stream"

// LenWidth is the width, in bytes, of a variable-length field's length
// prefix. A schema declares this per field; 1 byte is the common case.
type LenWidth uint8

const (
	LenWidth1 LenWidth = 1
	LenWidth2 LenWidth = 2
)

func writeLen(b *stream.Buffer, n int, w LenWidth) error {
	if w == LenWidth2 {
		return WriteUint16(b, uint16(n))
	}
	return WriteUint8(b, uint8(n))
}

func readLen(b *stream.Buffer, w LenWidth) (int, error) {
	if w == LenWidth2 {
		var v uint16
		if err := ReadUint16(b, &v); err != nil {
			return 0, err
		}
		return int(v), nil
	}
	var v uint8
	if err := ReadUint8(b, &v); err != nil {
		return 0, err
	}
	return int(v), nil
}

// WriteArray writes count elements with no length prefix — a fixed-size
// array whose length is part of the schema, not the wire.
func WriteArray[T any](b *stream.Buffer, v []T, write func(*stream.Buffer, T) error) error {
	for _, e := range v {
		if err := write(b, e); err != nil {
			return err
		}
	}
	return nil
}

// ReadArray reads len(v) elements with no length prefix, filling v in place.
func ReadArray[T any](b *stream.Buffer, v []T, read func(*stream.Buffer, *T) error) error {
	for i := range v {
		if err := read(b, &v[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteVarArray writes a length prefix of width w followed by the elements.
func WriteVarArray[T any](b *stream.Buffer, v []T, w LenWidth, write func(*stream.Buffer, T) error) error {
	if err := writeLen(b, len(v), w); err != nil {
		return err
	}
	return WriteArray(b, v, write)
}

// ReadVarArrayInline reads a length-prefixed array into dst, which must
// have capacity for the wire length; otherwise ErrCapacityExceeded.
// Returns the number of elements actually read.
func ReadVarArrayInline[T any](b *stream.Buffer, dst []T, w LenWidth, read func(*stream.Buffer, *T) error) (int, error) {
	n, err := readLen(b, w)
	if err != nil {
		return 0, err
	}
	if n > len(dst) {
		return 0, ErrCapacityExceeded
	}
	if err := ReadArray(b, dst[:n], read); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadVarArrayHeap reads a length-prefixed array, charging n*sizeOf bytes
// against h's capacity (ErrAllocBytes if h lacks them). The returned slice
// is a regular Go allocation, not a view of that heap region.
func ReadVarArrayHeap[T any](b *stream.Buffer, h *stream.Heap, w LenWidth, sizeOf int, read func(*stream.Buffer, *T) error) ([]T, error) {
	n, err := readLen(b, w)
	if err != nil {
		return nil, err
	}
	raw, ok := h.Alloc(n * sizeOf)
	if !ok {
		return nil, ErrAllocBytes
	}
	v := make([]T, n)
	_ = raw // the heap region backs the allocation budget; v holds the typed view
	if err := ReadArray(b, v, read); err != nil {
		return nil, err
	}
	return v, nil
}
