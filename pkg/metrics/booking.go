package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "laundry_http_request_duration_seconds",
		Help:    "Latency of HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	PickupRequestsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "laundry_pickup_requests_created_total",
		Help: "Total pickup requests created",
	})

	PaymentsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "laundry_payments_processed_total",
		Help: "Total payments recorded, by method",
	}, []string{"method"})

	InvoicePDFsRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "laundry_invoice_pdfs_rendered_total",
		Help: "Total invoice PDF documents rendered",
	})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		PickupRequestsCreated,
		PaymentsProcessed,
		InvoicePDFsRendered,
	)
}
