// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package protocol multiplexes typed messages over a single framer.Framer
// stream: every frame's payload begins with a one-byte Kind discriminant
// followed by the record's serialized body.
//
// Ported from original_source's examples/chat/ctiny/proto.h
// (Protocol_init, Protocol_poll, Protocol_send_*, Protocol_decode_*),
// generalized from the chat example's two message kinds to an arbitrary
// caller-supplied Kind/Record pairing.
package protocol

import (
	"bufio"
	"io"

	"code.hybscloud.com/bakelite/framer"
	"code.hybscloud.com/bakelite/stream"
)

// ReadByteFunc returns the next available inbound byte. ok is false and
// err is nil when no byte is available yet without blocking (the
// transport should return framer.ErrWouldBlock only from blocking reads;
// a non-blocking source signals via ok==false instead).
type ReadByteFunc func() (b byte, ok bool, err error)

// WriteFunc writes a complete encoded frame to the transport.
type WriteFunc func(p []byte) (int, error)

// Protocol multiplexes Send/Decode operations for multiple Kinds over one
// framer.Framer-managed byte stream.
type Protocol struct {
	fr       *framer.Framer
	readByte ReadByteFunc
	write    WriteFunc
	metrics  *Metrics

	lastKind   Kind
	lastLength int
	lastData   []byte
}

// New wraps an io.ReadWriter: reads go through a bufio.Reader's ReadByte
// (avoiding a syscall per frame byte), writes go straight to rw.
func New(rw io.ReadWriter, buf []byte, maxPayload int, opts ...Option) (*Protocol, error) {
	r := bufio.NewReader(rw)
	read := func() (byte, bool, error) {
		b, err := r.ReadByte()
		if err != nil {
			return 0, false, err
		}
		return b, true, nil
	}
	return NewReadWriteFunc(read, rw.Write, buf, maxPayload, opts...)
}

// NewReadWriteFunc builds a Protocol directly from a byte source and a
// frame sink, for transports that are not naturally an io.ReadWriter
// (a non-blocking serial port, a custom polling loop).
func NewReadWriteFunc(read ReadByteFunc, write WriteFunc, buf []byte, maxPayload int, opts ...Option) (*Protocol, error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	fr, err := framer.New(buf, maxPayload+1, o.framerOpts...) // +1 for the Kind tag
	if err != nil {
		return nil, err
	}
	return &Protocol{
		fr:       fr,
		readByte: read,
		write:    write,
		metrics:  o.metrics,
		lastKind: NoMessage,
	}, nil
}

// MessageBuffer returns the writable payload area, tag byte included, for
// a zero-copy producer passed to SendZeroCopy.
func (p *Protocol) MessageBuffer() []byte { return p.fr.MessageBuffer() }

// Poll reads at most one inbound byte and feeds it to the framer. It
// returns the Kind of the frame that byte completes, or NoMessage, nil
// when no byte was available or the frame is not complete yet.
//
// CRC failures, decode failures, and buffer overruns are silently
// discarded: the framer returns to idle and the next Poll begins a fresh
// frame rather than surfacing them as errors, matching the framer's
// self-resynchronizing contract.
func (p *Protocol) Poll() (Kind, error) {
	b, ok, err := p.readByte()
	if err == framer.ErrWouldBlock || err == framer.ErrMore {
		return NoMessage, nil
	}
	if err != nil {
		return NoMessage, err
	}
	if !ok {
		return NoMessage, nil
	}

	res := p.fr.ReadByte(b)
	switch res.Status {
	case framer.DecodeNotReady:
		return NoMessage, nil
	case framer.DecodeCRCFailure:
		p.metrics.incCRCFailures()
		return NoMessage, nil
	case framer.DecodeFailure:
		p.metrics.incDecodeFailures()
		return NoMessage, nil
	case framer.DecodeBufferOverrun:
		p.metrics.incBufferOverruns()
		return NoMessage, nil
	}

	if res.Length < 1 {
		p.metrics.incDecodeFailures()
		return NoMessage, nil
	}
	p.metrics.incFramesReceived()
	p.lastKind = Kind(res.Data[0])
	p.lastLength = res.Length - 1
	p.lastData = res.Data[1:res.Length]
	return p.lastKind, nil
}

// LastReceivedKind returns the Kind of the frame most recently decoded by
// Poll, or NoMessage if none has been decoded yet.
func (p *Protocol) LastReceivedKind() Kind { return p.lastKind }

// LastReceivedLength returns the payload length (tag byte excluded) of
// the frame most recently decoded by Poll.
func (p *Protocol) LastReceivedLength() int { return p.lastLength }

// Decode unpacks the frame most recently returned by Poll into out. It
// returns ErrKindMismatch if kind does not match LastReceivedKind().
func (p *Protocol) Decode(kind Kind, out Record) error {
	return p.decode(kind, out, nil)
}

// DecodeHeap is Decode for a record with variable-length fields, backing
// them with allocations from h instead of a fixed inline buffer.
func (p *Protocol) DecodeHeap(kind Kind, out Record, h *stream.Heap) error {
	return p.decode(kind, out, h)
}

func (p *Protocol) decode(kind Kind, out Record, h *stream.Heap) error {
	if kind != p.lastKind {
		return ErrKindMismatch
	}
	b := stream.New(p.lastData)
	return out.Unpack(b, h)
}

// Send packs rec and writes the resulting frame to the transport.
func (p *Protocol) Send(kind Kind, rec Record) error {
	mb := p.fr.MessageBuffer()
	mb[0] = byte(kind)
	b := stream.New(mb[1:])
	if err := rec.Pack(b); err != nil {
		return err
	}
	return p.encodeAndWrite(b.Pos())
}

// SendZeroCopy lets encode write a record's body directly into the
// frame's payload area (mb[1:]), returning the number of bytes written,
// skipping the Pack/stream.Buffer indirection for a record whose layout
// already matches the wire format (see internal/bo.WireCompatible).
func (p *Protocol) SendZeroCopy(kind Kind, encode func(mb []byte) int) error {
	mb := p.fr.MessageBuffer()
	mb[0] = byte(kind)
	n := encode(mb[1:])
	return p.encodeAndWrite(n)
}

func (p *Protocol) encodeAndWrite(bodyLen int) error {
	res, err := p.fr.Encode(bodyLen + 1)
	if err != nil {
		return err
	}
	n, err := p.write(res.Data)
	if err != nil {
		return err
	}
	if n != len(res.Data) {
		return ErrShortWrite
	}
	p.metrics.incFramesSent()
	return nil
}
