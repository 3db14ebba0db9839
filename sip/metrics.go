package sip

import "github.com/prometheus/client_golang/prometheus"

// prometheusRegisterer is the subset of *prometheus.Registry the parser
// needs, so callers can pass prometheus.DefaultRegisterer or a scoped
// registry built for tests without this package importing the concrete
// type.
type prometheusRegisterer interface {
	MustRegister(...prometheus.Collector)
}

// parserMetrics is the optional, opt-in observability surface enabled by
// WithMetrics: a counter of parse attempts/errors and a histogram of parse
// latency, grounded on the teacher's own example/proxysip use of
// client_golang for exactly this kind of hot-path instrumentation.
type parserMetrics struct {
	parseTotal   prometheus.Counter
	parseErrors  prometheus.Counter
	parseLatency prometheus.Histogram
}

func newParserMetrics(reg prometheusRegisterer) *parserMetrics {
	m := &parserMetrics{
		parseTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sip_parser_messages_total",
			Help: "Total number of SIP messages passed to ParseMessage.",
		}),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sip_parser_errors_total",
			Help: "Total number of SIP messages that failed to parse.",
		}),
		parseLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sip_parser_parse_duration_seconds",
			Help:    "Time spent parsing a single SIP message.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.parseTotal, m.parseErrors, m.parseLatency)
	return m
}

// observeParse increments the attempt counter and returns a function that
// records elapsed latency when called (typically via defer).
func (m *parserMetrics) observeParse() func() {
	m.parseTotal.Inc()
	timer := prometheus.NewTimer(m.parseLatency)
	return func() { timer.ObserveDuration() }
}

func (m *parserMetrics) incError() { m.parseErrors.Inc() }
