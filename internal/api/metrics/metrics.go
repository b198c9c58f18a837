// Package metrics defines the custom Prometheus metrics for the clientes
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clientes"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CustomersCreatedTotal counts successfully created customers.
var CustomersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_created_total",
		Help:      "Total number of customers created.",
	},
)

// CustomersUpdatedTotal counts successful full-record updates.
var CustomersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_updated_total",
		Help:      "Total number of customers updated.",
	},
)

// CustomersDeletedTotal counts successful deletions.
var CustomersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_deleted_total",
		Help:      "Total number of customers deleted.",
	},
)

// ValidationFailuresTotal counts rejected write payloads.
// Label:
//   - campo: the offending field name (nombre, apellido, email, telefono, direccion)
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of per-field validation rejections.",
	},
	[]string{"campo"},
)
