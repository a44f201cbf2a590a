package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	transitionsTotal *prometheus.CounterVec
	confirmedTotal   prometheus.Counter
	commitLatency    prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Total booking flow transitions attempted",
		}, []string{"transition", "status"}),
		confirmedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "confirmed_total",
			Help:      "Total bookings confirmed",
		}),
		commitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "commit_latency_seconds",
			Help:      "Latency of the simulated booking commit",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.transitionsTotal, m.confirmedTotal, m.commitLatency)
	return m
}

func (m *BookingMetrics) ObserveTransition(transition, status string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(transition, status).Inc()
}

func (m *BookingMetrics) ObserveConfirmed(latencySeconds float64) {
	if m == nil {
		return
	}
	m.confirmedTotal.Inc()
	m.commitLatency.Observe(latencySeconds)
}

// ChatMetrics exposes counters/histograms for the consultant chat gateway.
type ChatMetrics struct {
	requestsTotal *prometheus.CounterVec
	fallbackTotal *prometheus.CounterVec
	replyLatency  prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total consultant chat requests",
		}, []string{"status"}),
		fallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "chat",
			Name:      "fallback_total",
			Help:      "Total fallback replies served instead of model output",
		}, []string{"kind"}),
		replyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "chat",
			Name:      "reply_latency_seconds",
			Help:      "Latency of consultant replies, including model calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.fallbackTotal, m.replyLatency)
	return m
}

func (m *ChatMetrics) ObserveRequest(status string, latencySeconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(status).Inc()
	m.replyLatency.Observe(latencySeconds)
}

func (m *ChatMetrics) ObserveFallback(kind string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(kind).Inc()
}
