// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package serializer packs and unpacks typed records field-by-field over
// a stream.Buffer: fixed-width little-endian primitives, fixed and
// variable-length arrays, fixed and variable-length byte strings, and
// nul-terminated strings. A generated record's Pack/Unpack simply calls
// its fields' Pack/Unpack in declaration order — there is no record-level
// framing (that is package framer's job).
//
// Ported from original_source's ctiny/serializer.h and cpptiny/serializer.h.
package serializer

import (
	"encoding/binary"
	"math"

	"code.hybscloud.com/bakelite/stream"
)

func WriteBool(b *stream.Buffer, v bool) error {
	var x uint8
	if v {
		x = 1
	}
	return WriteUint8(b, x)
}

func ReadBool(b *stream.Buffer, v *bool) error {
	var x uint8
	if err := ReadUint8(b, &x); err != nil {
		return err
	}
	*v = x != 0
	return nil
}

func WriteInt8(b *stream.Buffer, v int8) error { return WriteUint8(b, uint8(v)) }

func ReadInt8(b *stream.Buffer, v *int8) error {
	var x uint8
	if err := ReadUint8(b, &x); err != nil {
		return err
	}
	*v = int8(x)
	return nil
}

func WriteUint8(b *stream.Buffer, v uint8) error {
	_, err := b.Write([]byte{v})
	return err
}

func ReadUint8(b *stream.Buffer, v *uint8) error {
	var buf [1]byte
	if _, err := b.Read(buf[:]); err != nil {
		return err
	}
	*v = buf[0]
	return nil
}

func WriteInt16(b *stream.Buffer, v int16) error { return WriteUint16(b, uint16(v)) }

func ReadInt16(b *stream.Buffer, v *int16) error {
	var x uint16
	if err := ReadUint16(b, &x); err != nil {
		return err
	}
	*v = int16(x)
	return nil
}

func WriteUint16(b *stream.Buffer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := b.Write(buf[:])
	return err
}

func ReadUint16(b *stream.Buffer, v *uint16) error {
	var buf [2]byte
	if _, err := b.Read(buf[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint16(buf[:])
	return nil
}

func WriteInt32(b *stream.Buffer, v int32) error { return WriteUint32(b, uint32(v)) }

func ReadInt32(b *stream.Buffer, v *int32) error {
	var x uint32
	if err := ReadUint32(b, &x); err != nil {
		return err
	}
	*v = int32(x)
	return nil
}

func WriteUint32(b *stream.Buffer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := b.Write(buf[:])
	return err
}

func ReadUint32(b *stream.Buffer, v *uint32) error {
	var buf [4]byte
	if _, err := b.Read(buf[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint32(buf[:])
	return nil
}

func WriteInt64(b *stream.Buffer, v int64) error { return WriteUint64(b, uint64(v)) }

func ReadInt64(b *stream.Buffer, v *int64) error {
	var x uint64
	if err := ReadUint64(b, &x); err != nil {
		return err
	}
	*v = int64(x)
	return nil
}

func WriteUint64(b *stream.Buffer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := b.Write(buf[:])
	return err
}

func ReadUint64(b *stream.Buffer, v *uint64) error {
	var buf [8]byte
	if _, err := b.Read(buf[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint64(buf[:])
	return nil
}

func WriteFloat32(b *stream.Buffer, v float32) error {
	return WriteUint32(b, math.Float32bits(v))
}

func ReadFloat32(b *stream.Buffer, v *float32) error {
	var x uint32
	if err := ReadUint32(b, &x); err != nil {
		return err
	}
	*v = math.Float32frombits(x)
	return nil
}

func WriteFloat64(b *stream.Buffer, v float64) error {
	return WriteUint64(b, math.Float64bits(v))
}

func ReadFloat64(b *stream.Buffer, v *float64) error {
	var x uint64
	if err := ReadUint64(b, &x); err != nil {
		return err
	}
	*v = math.Float64frombits(x)
	return nil
}
