// Package metrics defines and registers the storefront's Prometheus metrics.
// Metric names, labels and help strings live here and nowhere else.
//
// Everything registers with the default registry on import; HTTP request
// metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - seller: "true" or "false"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users, by seller flag.",
	},
	[]string{"seller"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ImagesCreatedTotal counts images added through the API.
// Label:
//   - type: "photo", "vector" or "illustration"
var ImagesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_created_total",
		Help:      "Total number of catalog images created, by type.",
	},
	[]string{"type"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartItemsAddedTotal counts cart additions.
var CartItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_added_total",
		Help:      "Total number of items added to carts.",
	},
)

// CartItemsRemovedTotal counts cart removal requests, including no-ops.
var CartItemsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_removed_total",
		Help:      "Total number of cart removal requests.",
	},
)
