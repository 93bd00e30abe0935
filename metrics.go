package main

import (
	"github.com/friendsofgo/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Frames handed to the kernel in full
	framesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wirefang_frames_sent_total",
			Help: "Count of frames written to the raw socket",
		},
	)
	bytesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wirefang_bytes_sent_total",
			Help: "Count of bytes written to the raw socket",
		},
	)
	// Track failed runs by kind
	failures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wirefang_failures_total",
			Help: "Count of failed runs",
		},
		[]string{"kind"},
	)
	// Track the duration of transmissions, failed ones included
	transmitDuration = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name: "wirefang_transmit_duration_seconds",
			Help: "Duration of transmission attempts",
		},
	)
)

// Private registry, so the textfile holds only our own series.
var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(framesSent)
	registry.MustRegister(bytesSent)
	registry.MustRegister(failures)
	registry.MustRegister(transmitDuration)
}

func observe(err error, n int) {
	if err != nil {
		failures.WithLabelValues(KindOf(err).String()).Inc()
		return
	}
	framesSent.Inc()
	bytesSent.Add(float64(n))
}

// writeMetrics dumps the registry in text exposition format, for the
// node_exporter textfile collector.
func writeMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return errors.Wrapf(err, "Failed to write metrics to %s", path)
	}
	return nil
}
