package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cofflyze"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Number of HTTP requests by route, method and status."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route and method.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	ObjectStorageOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "object_storage_operations_total", Help: "Object storage calls by operation and result."},
		[]string{"operation", "result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(ObjectStorageOps)
}
