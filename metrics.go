package lazyval

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MethodGet     = "get"
	MethodReset   = "reset"
	MethodPurge   = "purge"
	MethodCompute = "compute"
	MethodDispose = "dispose"
)

type Metrics interface {
	AddHits(method string, count int)
	AddErrors(method string, count int)
	AddMisses(method string, count int)
	ObserveRequest(method string, timeStart time.Time)
	SetCharged(charged bool)
}

type DefaultMetrics struct {
	requestsCounter  *prometheus.CounterVec
	requestsTimeHist *prometheus.HistogramVec
	chargedGauge     prometheus.Gauge
}

func NewDefaultMetrics(prefix string) *DefaultMetrics {
	requestsCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: fmt.Sprintf("%s_requests_total", prefix),
		Help: "Lazy value request counter",
	}, []string{"method", "status"})

	requestsTimeHist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    fmt.Sprintf("%s_requests_time_seconds", prefix),
		Help:    "Lazy value compute, dispose, reset and purge timings",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	chargedGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: fmt.Sprintf("%s_charged", prefix),
		Help: "Whether the lazy value currently holds a computed value",
	})

	return &DefaultMetrics{
		requestsCounter:  requestsCounter,
		requestsTimeHist: requestsTimeHist,
		chargedGauge:     chargedGauge,
	}
}

func (m *DefaultMetrics) MustRegister() {
	prometheus.MustRegister(m.requestsCounter, m.requestsTimeHist, m.chargedGauge)
}

// Register adds the collectors to reg, useful for non-default registries.
func (m *DefaultMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.requestsCounter, m.requestsTimeHist, m.chargedGauge} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}

func (m *DefaultMetrics) AddHits(method string, count int) {
	m.requestsCounter.With(prometheus.Labels{
		"method": method,
		"status": "hits",
	}).Add(float64(count))
}

func (m *DefaultMetrics) AddMisses(method string, count int) {
	m.requestsCounter.With(prometheus.Labels{
		"method": method,
		"status": "misses",
	}).Add(float64(count))
}

func (m *DefaultMetrics) AddErrors(method string, count int) {
	m.requestsCounter.With(prometheus.Labels{
		"method": method,
		"status": "error",
	}).Add(float64(count))
}

func (m *DefaultMetrics) ObserveRequest(method string, timeStart time.Time) {
	m.requestsTimeHist.With(prometheus.Labels{"method": method}).Observe(now().Sub(timeStart).Seconds())
}

func (m *DefaultMetrics) SetCharged(charged bool) {
	if charged {
		m.chargedGauge.Set(1)
		return
	}
	m.chargedGauge.Set(0)
}

func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

type NopMetrics struct{}

func (n *NopMetrics) AddHits(_ string, _ int)              {}
func (n *NopMetrics) AddMisses(_ string, _ int)            {}
func (n *NopMetrics) AddErrors(_ string, _ int)            {}
func (n *NopMetrics) ObserveRequest(_ string, _ time.Time) {}
func (n *NopMetrics) SetCharged(_ bool)                    {}
