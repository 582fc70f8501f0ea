// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

// Heap is a bump allocator over a second caller-owned byte region. It is
// the companion of a Buffer for variable-length fields during decode when
// inline (fixed-capacity) storage is not wanted.
//
// Heap never frees individual allocations; call Reset to reclaim the
// whole region at once (typically between frames).
type Heap struct {
	base []byte
	pos  int
}

// NewHeap returns a Heap over base, positioned at 0.
func NewHeap(base []byte) *Heap {
	return &Heap{base: base}
}

// Init re-initializes h to wrap base, positioned at 0.
func (h *Heap) Init(base []byte) {
	h.base = base
	h.pos = 0
}

// Reset reclaims the entire region; previously returned slices must not
// be used afterward.
func (h *Heap) Reset() { h.pos = 0 }

// Alloc returns a slice of n fresh bytes, or ok=false if the region does
// not have n bytes remaining. The returned slice aliases h's backing
// array and remains valid until the next Reset.
func (h *Heap) Alloc(n int) (p []byte, ok bool) {
	end := h.pos + n
	if end > len(h.base) {
		return nil, false
	}
	p = h.base[h.pos:end]
	h.pos = end
	return p, true
}

// Pos returns the number of bytes allocated since the last Reset.
func (h *Heap) Pos() int { return h.pos }

// Size returns the Heap's total capacity.
func (h *Heap) Size() int { return len(h.base) }

// Remaining returns the number of bytes still available for Alloc.
func (h *Heap) Remaining() int { return len(h.base) - h.pos }

// Bytes returns every byte allocated since the last Reset, as one
// contiguous slice — useful for committing a sequence of single-byte
// Alloc calls (e.g. a string read one byte at a time) as a single span.
func (h *Heap) Bytes() []byte { return h.base[:h.pos] }
