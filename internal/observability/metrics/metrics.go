package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat pipeline.
type ChatMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	audioSyntheses *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edubot",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total chat requests",
		}, []string{"mode", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "edubot",
			Subsystem: "chat",
			Name:      "request_latency_seconds",
			Help:      "Latency of chat request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		audioSyntheses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edubot",
			Subsystem: "chat",
			Name:      "audio_syntheses_total",
			Help:      "Total text-to-speech synthesis attempts",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.audioSyntheses)
	return m
}

func (m *ChatMetrics) ObserveRequest(mode, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(mode, status).Inc()
	m.requestLatency.WithLabelValues(mode).Observe(seconds)
}

func (m *ChatMetrics) ObserveAudioSynthesis(status string) {
	if m == nil {
		return
	}
	m.audioSyntheses.WithLabelValues(status).Inc()
}

// TranslationMetrics exposes counters for the provider fallthrough chain.
type TranslationMetrics struct {
	attemptsTotal  *prometheus.CounterVec
	fallbacksTotal prometheus.Counter
}

func NewTranslationMetrics(reg prometheus.Registerer) *TranslationMetrics {
	m := &TranslationMetrics{
		attemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edubot",
			Subsystem: "translation",
			Name:      "provider_attempts_total",
			Help:      "Translation provider attempts by outcome",
		}, []string{"provider", "outcome"}),
		fallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "edubot",
			Subsystem: "translation",
			Name:      "dictionary_fallbacks_total",
			Help:      "Times the dictionary fallback produced the result",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.attemptsTotal, m.fallbacksTotal)
	return m
}

func (m *TranslationMetrics) ObserveAttempt(provider, outcome string) {
	if m == nil {
		return
	}
	m.attemptsTotal.WithLabelValues(provider, outcome).Inc()
}

func (m *TranslationMetrics) ObserveFallback() {
	if m == nil {
		return
	}
	m.fallbacksTotal.Inc()
}
