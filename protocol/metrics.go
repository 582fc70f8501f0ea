// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the optional counters a Protocol reports to Prometheus.
// A nil *Metrics is valid and every method is a no-op against it, so the
// hot path costs nothing when metrics were never wired up.
type Metrics struct {
	FramesSent     prometheus.Counter
	FramesReceived prometheus.Counter
	CRCFailures    prometheus.Counter
	DecodeFailures prometheus.Counter
	BufferOverruns prometheus.Counter
}

// NewMetrics builds and registers the counter set with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bakelite_protocol_frames_sent_total",
			Help: "Frames successfully handed to the transport.",
		}),
		FramesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bakelite_protocol_frames_received_total",
			Help: "Frames successfully decoded from the transport.",
		}),
		CRCFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bakelite_protocol_crc_failures_total",
			Help: "Frames discarded for a CRC mismatch.",
		}),
		DecodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bakelite_protocol_decode_failures_total",
			Help: "Frames discarded for a COBS decode failure.",
		}),
		BufferOverruns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bakelite_protocol_buffer_overruns_total",
			Help: "Inbound frames that exceeded the framer's buffer before a sentinel arrived.",
		}),
	}
	reg.MustRegister(m.FramesSent, m.FramesReceived, m.CRCFailures, m.DecodeFailures, m.BufferOverruns)
	return m
}

func (m *Metrics) incFramesSent() {
	if m != nil {
		m.FramesSent.Inc()
	}
}

func (m *Metrics) incFramesReceived() {
	if m != nil {
		m.FramesReceived.Inc()
	}
}

func (m *Metrics) incCRCFailures() {
	if m != nil {
		m.CRCFailures.Inc()
	}
}

func (m *Metrics) incDecodeFailures() {
	if m != nil {
		m.DecodeFailures.Inc()
	}
}

func (m *Metrics) incBufferOverruns() {
	if m != nil {
		m.BufferOverruns.Inc()
	}
}
