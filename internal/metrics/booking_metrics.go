package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics содержит метрики сервиса бронирования.
type BookingMetrics struct {
	// Счётчики исходов операций
	bookingsCreated    prometheus.Counter
	validationFailures prometheus.Counter
	slotUnavailable    prometheus.Counter

	// Gauge текущего размера хранилища
	bookingsStored prometheus.Gauge

	// Гистограмма длительности HTTP-запросов
	requestDuration *prometheus.HistogramVec
}

// NewBookingMetrics создаёт метрики и регистрирует их в default registry.
func NewBookingMetrics() *BookingMetrics {
	return newBookingMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newBookingMetricsWithRegisterer(registerer prometheus.Registerer) *BookingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &BookingMetrics{
		bookingsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tablebook_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		validationFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tablebook_validation_failures_total",
			Help: "Total number of booking requests rejected by validation",
		}),
		slotUnavailable: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tablebook_slot_unavailable_total",
			Help: "Total number of booking requests for a time outside the timeslot catalog",
		}),
		bookingsStored: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "tablebook_bookings_stored",
			Help: "Number of bookings currently held in the store",
		}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "tablebook_http_request_duration_seconds",
			Help:    "Duration of HTTP API requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordBookingCreated увеличивает счётчик созданных броней и размер хранилища.
func (m *BookingMetrics) RecordBookingCreated() {
	m.bookingsCreated.Inc()
	m.bookingsStored.Inc()
}

// RecordValidationFailure увеличивает счётчик отклонённых валидацией заявок.
func (m *BookingMetrics) RecordValidationFailure() {
	m.validationFailures.Inc()
}

// RecordSlotUnavailable увеличивает счётчик заявок на недоступный слот.
func (m *BookingMetrics) RecordSlotUnavailable() {
	m.slotUnavailable.Inc()
}

// ObserveRequestDuration записывает длительность обработки HTTP-запроса.
func (m *BookingMetrics) ObserveRequestDuration(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
