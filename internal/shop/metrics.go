package shop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the controller's instrumentation counters.
type Metrics struct {
	FilterApplies   prometheus.Counter
	SearchRequests  prometheus.Counter
	CartAdds        prometheus.Counter
	WishlistToggles prometheus.Counter
	OrdersPlaced    prometheus.Counter
	GateRefusals    prometheus.Counter
}

// NewMetrics registers the storefront counters against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FilterApplies: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_filter_applies_total",
			Help: "Number of filter engine recomputations.",
		}),
		SearchRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_search_requests_total",
			Help: "Number of keyword searches submitted.",
		}),
		CartAdds: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_cart_adds_total",
			Help: "Number of successful add-to-cart actions.",
		}),
		WishlistToggles: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_wishlist_toggles_total",
			Help: "Number of wishlist toggle actions.",
		}),
		OrdersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Number of orders settled.",
		}),
		GateRefusals: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_gate_refusals_total",
			Help: "Number of gated actions blocked for anonymous users.",
		}),
	}
}
