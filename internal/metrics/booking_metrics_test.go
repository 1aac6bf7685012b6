package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewBookingMetrics_Collectors(t *testing.T) {
	metrics := newBookingMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newBookingMetricsWithRegisterer should not return nil")
	}
	if metrics.bookingsCreated == nil {
		t.Error("bookingsCreated counter should not be nil")
	}
	if metrics.validationFailures == nil {
		t.Error("validationFailures counter should not be nil")
	}
	if metrics.slotUnavailable == nil {
		t.Error("slotUnavailable counter should not be nil")
	}
	if metrics.bookingsStored == nil {
		t.Error("bookingsStored gauge should not be nil")
	}
	if metrics.requestDuration == nil {
		t.Error("requestDuration histogram vec should not be nil")
	}
}

func TestNewBookingMetrics_ReregistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newBookingMetricsWithRegisterer(registry)
	second := newBookingMetricsWithRegisterer(registry)

	first.RecordBookingCreated()
	second.RecordBookingCreated()

	if got := counterValue(t, second.bookingsCreated); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestRecordBookingCreated(t *testing.T) {
	metrics := newBookingMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordBookingCreated()
	metrics.RecordBookingCreated()

	if got := counterValue(t, metrics.bookingsCreated); got != 2 {
		t.Fatalf("expected bookingsCreated 2, got %v", got)
	}
	if got := gaugeValue(t, metrics.bookingsStored); got != 2 {
		t.Fatalf("expected bookingsStored 2, got %v", got)
	}
}

func TestRecordFailureCounters(t *testing.T) {
	metrics := newBookingMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordValidationFailure()
	metrics.RecordSlotUnavailable()
	metrics.RecordSlotUnavailable()

	if got := counterValue(t, metrics.validationFailures); got != 1 {
		t.Fatalf("expected validationFailures 1, got %v", got)
	}
	if got := counterValue(t, metrics.slotUnavailable); got != 2 {
		t.Fatalf("expected slotUnavailable 2, got %v", got)
	}
}

func TestObserveRequestDuration(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newBookingMetricsWithRegisterer(registry)

	metrics.ObserveRequestDuration("POST", "/v1/bookings", 201, 25*time.Millisecond)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	var found bool
	for _, family := range families {
		if family.GetName() != "tablebook_http_request_duration_seconds" {
			continue
		}
		for _, metric := range family.GetMetric() {
			if metric.GetHistogram().GetSampleCount() == 1 {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected one observation in request duration histogram")
	}
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}
