package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewHTTPMetricsNilRegisterer(t *testing.T) {
	m := NewHTTPMetrics(nil)
	// must not panic
	m.ObserveRequest("GET", "/leads", 200, time.Millisecond)
}

func TestObserveRequestRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/leads", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/leads", 200, 7*time.Millisecond)
	m.ObserveRequest("POST", "/leads", 201, time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]bool{}
	for _, fam := range families {
		found[fam.GetName()] = true
	}
	if !found["http_requests_total"] || !found["http_request_duration_seconds"] {
		t.Fatalf("expected both metric families, got %v", found)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/leads", 200, time.Millisecond)
}
