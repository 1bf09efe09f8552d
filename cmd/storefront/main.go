// Command storefront wires the full browsing core against the seed
// catalog and runs a short scripted shopper session, logging the derived
// view state after each intent. It stands in for the real presentation
// layer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aashif-Raza/TrendNest/internal/catalog"
	"github.com/Aashif-Raza/TrendNest/internal/checkout"
	"github.com/Aashif-Raza/TrendNest/internal/config"
	"github.com/Aashif-Raza/TrendNest/internal/filter"
	"github.com/Aashif-Raza/TrendNest/internal/session"
	"github.com/Aashif-Raza/TrendNest/internal/shop"
	"github.com/Aashif-Raza/TrendNest/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger.
	log := logger.New("storefront", cfg.LogLevel)
	log.Info("starting storefront",
		slog.String("environment", cfg.Environment),
		slog.Int("products_per_page", cfg.ProductsPerPage),
	)

	store, err := catalog.NewStore(catalog.Seed())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	auth := session.NewMemory()
	controller := shop.New(store, auth, cfg, shop.Callbacks{
		ShowAuth:     func() { log.Info("presentation: show auth dialog") },
		ScrollToShop: func() { log.Info("presentation: scroll to shop") },
	}, prometheus.NewRegistry(), log)
	defer controller.Close()

	logView := func(label string, v shop.View) {
		log.Info(label,
			slog.Int("page", v.Page),
			slog.Int("total_pages", v.TotalPages),
			slog.Int("page_items", len(v.Products)),
			slog.Int("matches", v.TotalMatches),
			slog.Int("cart_count", v.CartCount),
			slog.Int("wishlist", len(v.Wishlist)),
			slog.Int("notifications", len(v.Notifications)),
		)
	}

	logView("initial view", controller.View())

	// Anonymous add-to-cart bounces off the session gate.
	first := store.Products()[0]
	controller.AddToCart(first)

	// Sign in and retry.
	if res := auth.Register("Demo Shopper", "demo@example.com", "hunter22"); !res.Success {
		return fmt.Errorf("register: %s", res.Message)
	}
	controller.AddToCart(first)
	controller.AddToCart(first)
	controller.ToggleWishlist(store.Products()[1])

	// Browse: keyword search, then narrow by price and sort.
	controller.Search("shoe")
	criteria := controller.Criteria()
	criteria.PriceRange, _ = filter.ParsePriceRange("25-100")
	criteria.Sort = filter.SortPriceAsc
	controller.ApplyFilters(criteria)
	logView("after search and filters", controller.View())

	// Check out the cart.
	controller.BeginCheckout()
	order := controller.Checkout()
	if fields, err := order.SubmitShipping(checkout.ShippingForm{
		Name:    "Demo Shopper",
		Email:   "demo@example.com",
		Address: "1 Market Street",
		City:    "Springfield",
		Postal:  "94000",
	}); err != nil || len(fields) > 0 {
		return fmt.Errorf("shipping step: %v %v", fields, err)
	}
	if fields, err := order.SubmitPayment(checkout.PaymentForm{
		CardNumber: "4242424242424242",
		Expiry:     "12/30",
		CVV:        "123",
	}); err != nil || len(fields) > 0 {
		return fmt.Errorf("payment step: %v %v", fields, err)
	}

	order.ApplyCoupon("DEMO10")
	log.Info("order review",
		slog.Int64("subtotal_cents", order.SubtotalCents()),
		slog.Int64("discount_cents", order.DiscountCents()),
		slog.Int64("total_cents", order.TotalCents()),
		slog.String("card_type", checkout.CardType(order.Payment().CardNumber)),
	)

	if err := controller.PlaceOrder(); err != nil {
		return fmt.Errorf("place order: %w", err)
	}

	// Wait out the simulated settlement.
	time.Sleep(cfg.OrderSettleDelay() + 100*time.Millisecond)
	logView("after order settled", controller.View())

	log.Info("storefront demo finished", slog.String("order_id", order.LastOrderID()))
	return nil
}
