// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "io"

// Forwarder relays raw COBS frames byte-for-byte from one io.Reader to one
// io.Writer without decoding the payload — useful for bridging a UART and
// a TCP socket, for example, where only the sentinel-delimited boundary
// matters and the payload need not be inspected.
//
// Generalizes a two-phase, resumable-on-ErrWouldBlock/ErrMore forwarding
// state machine from length-prefixed frames to sentinel-delimited ones:
// a frame's length is discovered by scanning for the trailing 0x00
// rather than by parsing a header.
//
// Semantics:
//   - One call to ForwardOnce relays at most one frame.
//   - Two-phase per frame: (1) accumulate bytes from src up to and
//     including the next 0x00, (2) write that span to dst.
//   - On ErrWouldBlock or ErrMore, the caller must retry ForwardOnce on
//     the same Forwarder to resume the in-flight frame.
type Forwarder struct {
	src io.Reader
	dst io.Writer

	buf []byte // one frame's worth of bytes, reused across calls
	got int     // bytes accumulated into buf so far
	one [1]byte

	wrote int
	state uint8 // 0: accumulating from src, 1: writing to dst
}

// NewForwarder constructs a Forwarder relaying frames up to maxFrameSize
// bytes (including the sentinel) from src to dst.
func NewForwarder(dst io.Writer, src io.Reader, maxFrameSize int) *Forwarder {
	return &Forwarder{src: src, dst: dst, buf: make([]byte, maxFrameSize)}
}

// ForwardOnce relays at most one frame. See the Forwarder doc for semantics.
func (f *Forwarder) ForwardOnce() (n int, err error) {
	if f.state == 0 {
		for {
			rn, re := f.src.Read(f.one[:])
			if rn > 0 {
				if f.got >= len(f.buf) {
					f.got = 0
					return 0, ErrTooLong
				}
				f.buf[f.got] = f.one[0]
				f.got++
				if f.one[0] == 0 {
					f.state = 1
					break
				}
				continue
			}
			if re != nil {
				if re == ErrWouldBlock || re == ErrMore {
					return 0, re
				}
				if re == io.EOF {
					if f.got == 0 {
						return 0, io.EOF
					}
					return f.got, io.ErrUnexpectedEOF
				}
				return 0, re
			}
		}
	}

	wn, we := f.dst.Write(f.buf[f.wrote:f.got])
	f.wrote += wn
	if we != nil {
		if we == ErrWouldBlock || we == ErrMore {
			return wn, we
		}
		return wn, we
	}
	n = f.got
	f.got, f.wrote, f.state = 0, 0, 0
	return n, nil
}
