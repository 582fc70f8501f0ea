// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "code.hybscloud.com/bakelite/crc"

// CRCType selects the integrity check a Framer appends to the payload
// before COBS-encoding it, or crc.None for a zero-cost frame with no trailer.
type CRCType = crc.Kind

// Options configures a Framer.
type Options struct {
	CRCType CRCType

	// CRCSeed is the initial value handed to the CRC function. Every
	// first-party call site uses zero, matching the source library, but
	// a caller wiring in an existing CRC-based protocol may need another.
	CRCSeed uint32
}

var defaultOptions = Options{
	CRCType: CRCNone,
	CRCSeed: 0,
}

// CRCNone disables the trailing CRC entirely.
const CRCNone = crc.None

type Option func(*Options)

// WithCRC selects the CRC algorithm appended to every encoded frame and
// verified on every decoded one.
func WithCRC(kind CRCType) Option {
	return func(o *Options) { o.CRCType = kind }
}

// WithCRCSeed sets the initial value passed to the CRC function.
func WithCRCSeed(seed uint32) Option {
	return func(o *Options) { o.CRCSeed = seed }
}
