package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "courierhub", Name: "orders_created_total", Help: "Orders created"})
	OrdersAccepted = promauto.NewCounter(prometheus.CounterOpts{Namespace: "courierhub", Name: "orders_accepted_total", Help: "Orders accepted by a traveller"})
	QuotesServed   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "courierhub", Name: "quotes_served_total", Help: "Price quotes served without order creation"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "courierhub", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "courierhub",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
