// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "code.hybscloud.com/bakelite/framer"

// Options configures a Protocol at construction.
type Options struct {
	framerOpts []framer.Option
	metrics    *Metrics
}

var defaultOptions = Options{}

// Option configures a Protocol at construction.
type Option func(*Options)

// WithCRC appends a trailing CRC of the given kind to every frame, the
// same as passing framer.WithCRC directly to a hand-built Framer.
func WithCRC(kind CRCType) Option {
	return func(o *Options) { o.framerOpts = append(o.framerOpts, framer.WithCRC(kind)) }
}

// WithCRCSeed sets the CRC seed used by WithCRC.
func WithCRCSeed(seed uint32) Option {
	return func(o *Options) { o.framerOpts = append(o.framerOpts, framer.WithCRCSeed(seed)) }
}

// WithMetrics attaches a counter set. A nil Protocol metrics field is a
// valid zero value, so this option is the only way to turn counting on.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// CRCType selects the trailing integrity check a Protocol's frames carry.
type CRCType = framer.CRCType
