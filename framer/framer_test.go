// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"code.hybscloud.com/bakelite/crc"
	"code.hybscloud.com/bakelite/framer"
)

func newFramer(t *testing.T, maxMessageSize int, opts ...framer.Option) *framer.Framer {
	t.Helper()
	// 4 is the widest possible CRC trailer (CRC-32); oversizing the
	// buffer is harmless since BufferSize only ever grows the margin.
	f, err := framer.New(make([]byte, framer.BufferSize(maxMessageSize, 4)), maxMessageSize, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestEncodeCopy_SpecVectors(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		crcType framer.CRCType
		want    string
	}{
		{"no-crc-4byte", []byte{0x11, 0x22, 0x33, 0x44}, crc.None, "051122334400"},
		{"no-crc-empty", []byte{}, crc.None, "0100"},
		{"no-crc-1byte", []byte{0x22}, crc.None, "022200"},
		{"crc8", []byte{0x11, 0x22, 0x33, 0x44}, crc.CRC8, "0611223344f900"},
		{"crc16", []byte{0x11, 0x22, 0x33, 0x44}, crc.CRC16, "0711223344b1f500"},
		{"crc32", []byte{0x11, 0x22, 0x33, 0x44}, crc.CRC32, "0911223344d19df27700"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFramer(t, 16, framer.WithCRC(c.crcType))
			r, err := f.EncodeCopy(c.payload)
			if err != nil {
				t.Fatalf("EncodeCopy: %v", err)
			}
			if got := hexString(r.Data[:r.Length]); got != c.want {
				t.Fatalf("got %s want %s", got, c.want)
			}
		})
	}
}

func hexString(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexdigits[v>>4]
		out[i*2+1] = hexdigits[v&0xF]
	}
	return string(out)
}

func feed(f *framer.Framer, frame []byte) framer.DecodeResult {
	var last framer.DecodeResult
	for _, b := range frame {
		last = f.ReadByte(b)
	}
	return last
}

func TestEncodeThenFeed_RoundTrip(t *testing.T) {
	for _, crcType := range []framer.CRCType{crc.None, crc.CRC8, crc.CRC16, crc.CRC32} {
		enc := newFramer(t, 16, framer.WithCRC(crcType))
		payload := []byte{0x11, 0x22, 0x33, 0x44}
		r, err := enc.EncodeCopy(payload)
		if err != nil {
			t.Fatalf("EncodeCopy: %v", err)
		}

		dec := newFramer(t, 16, framer.WithCRC(crcType))
		result := feed(dec, r.Data[:r.Length])
		if result.Status != framer.DecodeOK {
			t.Fatalf("crc=%v status=%v want ok", crcType, result.Status)
		}
		if !bytes.Equal(result.Data, payload) {
			t.Fatalf("crc=%v got %x want %x", crcType, result.Data, payload)
		}
	}
}

func TestDecode_SingleZeroByteOnIdleFramer(t *testing.T) {
	f := newFramer(t, 16)
	result := f.ReadByte(0x00)
	if result.Status != framer.DecodeFailure {
		t.Fatalf("status=%v want decode-failure", result.Status)
	}
}

func TestDecode_ClaimTooShortIsDecodeFailure(t *testing.T) {
	f := newFramer(t, 16)
	result := feed(f, []byte{0x01, 0x11, 0x22, 0x33, 0x44, 0x00})
	if result.Status != framer.DecodeFailure {
		t.Fatalf("status=%v want decode-failure", result.Status)
	}
}

func TestDecode_BufferOverrun(t *testing.T) {
	buf := make([]byte, 4)
	f, err := framer.New(buf, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r := f.ReadByte(0x05); r.Status != framer.DecodeNotReady {
		t.Fatalf("byte1 status=%v want not-ready", r.Status)
	}
	if r := f.ReadByte(0x11); r.Status != framer.DecodeNotReady {
		t.Fatalf("byte2 status=%v want not-ready", r.Status)
	}
	if r := f.ReadByte(0x22); r.Status != framer.DecodeNotReady {
		t.Fatalf("byte3 status=%v want not-ready", r.Status)
	}
	if r := f.ReadByte(0x33); r.Status != framer.DecodeBufferOverrun {
		t.Fatalf("byte4 status=%v want buffer-overrun", r.Status)
	}
}

func TestDecode_ResynchronizesAfterFailure(t *testing.T) {
	f := newFramer(t, 16)

	// A corrupt frame: 0x00 alone is a decode-failure.
	if r := f.ReadByte(0x00); r.Status != framer.DecodeFailure {
		t.Fatalf("status=%v want decode-failure", r.Status)
	}

	// The framer must be ready to decode the next frame correctly.
	result := feed(f, []byte{0x05, 0x11, 0x22, 0x33, 0x44, 0x00})
	if result.Status != framer.DecodeOK {
		t.Fatalf("status=%v want ok after resync", result.Status)
	}
	if !bytes.Equal(result.Data, []byte{0x11, 0x22, 0x33, 0x44}) {
		t.Fatalf("data=%x want 11223344", result.Data)
	}
}

func TestDecode_CRCFailureDetectsFlippedByte(t *testing.T) {
	enc := newFramer(t, 16, framer.WithCRC(crc.CRC16))
	r, err := enc.EncodeCopy([]byte{0x11, 0x22, 0x33, 0x44})
	if err != nil {
		t.Fatalf("EncodeCopy: %v", err)
	}
	corrupt := append([]byte(nil), r.Data[:r.Length]...)
	corrupt[1] ^= 0x01 // flip a payload bit

	dec := newFramer(t, 16, framer.WithCRC(crc.CRC16))
	result := feed(dec, corrupt)
	if result.Status != framer.DecodeCRCFailure && result.Status != framer.DecodeFailure {
		t.Fatalf("status=%v want crc-failure or decode-failure", result.Status)
	}
}

func TestGarbageFrameThenValidFrame(t *testing.T) {
	f := newFramer(t, 16)

	garbage := make([]byte, f.BufferSize()-1)
	for i := range garbage {
		garbage[i] = 0xAB
	}
	result := feed(f, append(garbage, 0x00))
	if result.Status != framer.DecodeOK && result.Status != framer.DecodeFailure && result.Status != framer.DecodeBufferOverrun {
		t.Fatalf("unexpected status for garbage frame: %v", result.Status)
	}

	result = feed(f, []byte{0x02, 0x22, 0x00})
	if result.Status != framer.DecodeOK {
		t.Fatalf("status=%v want ok for next frame", result.Status)
	}
	if !bytes.Equal(result.Data, []byte{0x22}) {
		t.Fatalf("data=%x want 22", result.Data)
	}
}

func TestEncodeCopy_RejectsOversizePayload(t *testing.T) {
	f := newFramer(t, 4)
	if _, err := f.EncodeCopy([]byte{1, 2, 3, 4, 5}); err != framer.ErrTooLong {
		t.Fatalf("err=%v want ErrTooLong", err)
	}
}

func TestRoundTripProperty(t *testing.T) {
	const maxSize = 64
	f := func(payload []byte) bool {
		if len(payload) > maxSize {
			payload = payload[:maxSize]
		}
		enc, err := framer.New(make([]byte, framer.BufferSize(maxSize, 0)), maxSize)
		if err != nil {
			return false
		}
		r, err := enc.EncodeCopy(payload)
		if err != nil {
			return false
		}

		dec, err := framer.New(make([]byte, framer.BufferSize(maxSize, 0)), maxSize)
		if err != nil {
			return false
		}
		result := feed(dec, r.Data[:r.Length])
		return result.Status == framer.DecodeOK && bytes.Equal(result.Data, payload)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}
