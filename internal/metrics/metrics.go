// Package metrics provides Prometheus metrics for the mudra translation
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus metrics for the service.
type Manager struct {
	registry prometheus.Registerer

	// Ingest
	packetsReceived prometheus.Counter
	framesProcessed *prometheus.CounterVec
	framesDropped   prometheus.Counter

	// Classification
	gesturesClassified *prometheus.CounterVec
	moodsClassified    *prometheus.CounterVec
	frameDuration      prometheus.Histogram

	// Translation
	tokensEmitted    prometheus.Counter
	phrasesCompleted prometheus.Counter
	bufferClears     prometheus.Counter

	// Streaming
	eventClients prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(customRegistry)
}

// NewManager creates a metrics manager registered on the given registry.
func NewManager(registry prometheus.Registerer) *Manager {
	m := &Manager{registry: registry}

	auto := promauto.With(registry)
	const namespace = "mudra"
	const subsystem = "engine"

	m.packetsReceived = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "packets_received_total",
		Help:      "Total number of tracker packets received",
	})

	m.framesProcessed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_processed_total",
			Help:      "Total number of frames processed by stream",
		},
		[]string{"stream"},
	)

	m.framesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "frames_dropped_total",
		Help:      "Total number of frames dropped below the tracking score gate",
	})

	m.gesturesClassified = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "gestures_classified_total",
			Help:      "Total number of classified gestures by label",
		},
		[]string{"label"},
	)

	m.moodsClassified = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moods_classified_total",
			Help:      "Total number of classified moods by label",
		},
		[]string{"mood"},
	)

	m.frameDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "frame_processing_duration_milliseconds",
		Help:      "Histogram of per-frame pipeline latency in milliseconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 25, 50},
	})

	m.tokensEmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "tokens_emitted_total",
		Help:      "Total number of translated sign tokens",
	})

	m.phrasesCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "phrases_completed_total",
		Help:      "Total number of completed phrases",
	})

	m.bufferClears = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "buffer_clears_total",
		Help:      "Total number of manual translation buffer clears",
	})

	m.eventClients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "event_clients",
		Help:      "Current number of connected event stream clients",
	})

	return m
}

// RecordPacket increments the received packet counter.
func RecordPacket() {
	globalManager.packetsReceived.Inc()
}

// RecordHandFrame counts a processed hand frame.
func RecordHandFrame() {
	globalManager.framesProcessed.WithLabelValues("hand").Inc()
}

// RecordFaceFrame counts a processed face frame.
func RecordFaceFrame() {
	globalManager.framesProcessed.WithLabelValues("face").Inc()
}

// RecordFrameDropped counts a frame rejected by the score gate.
func RecordFrameDropped() {
	globalManager.framesDropped.Inc()
}

// RecordGesture counts a classified gesture label.
func RecordGesture(label string) {
	globalManager.gesturesClassified.WithLabelValues(label).Inc()
}

// RecordMood counts a classified mood.
func RecordMood(mood string) {
	globalManager.moodsClassified.WithLabelValues(mood).Inc()
}

// RecordFrameDuration records per-frame pipeline latency in milliseconds.
func RecordFrameDuration(ms float64) {
	globalManager.frameDuration.Observe(ms)
}

// RecordToken increments the emitted token counter.
func RecordToken() {
	globalManager.tokensEmitted.Inc()
}

// RecordPhrase increments the completed phrase counter.
func RecordPhrase() {
	globalManager.phrasesCompleted.Inc()
}

// RecordBufferClear increments the manual clear counter.
func RecordBufferClear() {
	globalManager.bufferClears.Inc()
}

// SetEventClients sets the connected event client gauge.
func SetEventClients(n int) {
	globalManager.eventClients.Set(float64(n))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
