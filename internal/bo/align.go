// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import (
	"encoding/binary"
	"unsafe"
)

// WireCompatible reports whether the machine's native byte order matches
// the little-endian order every wire record uses. A Go struct overlaid
// directly onto the buffer handed out by protocol.SendZeroCopy is only
// byte-for-byte correct on little-endian machines. SendZeroCopy itself
// does not call this check; the encode callback's author does.
func WireCompatible() bool { return Native() == binary.LittleEndian }

// Aligned reports whether p satisfies alignment align, which must be a
// power of two. Like WireCompatible it is not called by package protocol;
// it lets a zero-copy encoder detect a misaligned overlay address.
func Aligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}
