package shop

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aashif-Raza/TrendNest/internal/cart"
	"github.com/Aashif-Raza/TrendNest/internal/catalog"
	"github.com/Aashif-Raza/TrendNest/internal/checkout"
	"github.com/Aashif-Raza/TrendNest/internal/config"
	"github.com/Aashif-Raza/TrendNest/internal/filter"
	"github.com/Aashif-Raza/TrendNest/internal/notify"
	"github.com/Aashif-Raza/TrendNest/internal/schedule"
	"github.com/Aashif-Raza/TrendNest/internal/session"
	"github.com/Aashif-Raza/TrendNest/internal/wishlist"
	"github.com/Aashif-Raza/TrendNest/pkg/pagination"
)

// Callbacks are the presentation-layer side effects the controller fires.
// All are optional.
type Callbacks struct {
	// ShowAuth opens the authentication dialog when a gated action is
	// attempted anonymously.
	ShowAuth func()

	// ScrollToShop scrolls the product grid into view after a search or
	// brand selection.
	ScrollToShop func()
}

// View is the read-only derived state handed to the presentation layer.
type View struct {
	Products      []catalog.Product `json:"products"`
	TotalMatches  int               `json:"total_matches"`
	TotalProducts int               `json:"total_products"`
	Page          int               `json:"page"`
	TotalPages    int               `json:"total_pages"`

	Categories     []string       `json:"categories"`
	CategoryCounts map[string]int `json:"category_counts"`

	CartLines      []cart.Line       `json:"cart_lines"`
	CartTotalCents int64             `json:"cart_total_cents"`
	CartCount      int               `json:"cart_count"`
	Wishlist       []catalog.Product `json:"wishlist"`

	Notifications  []notify.Notification `json:"notifications"`
	AppliedFilters []filter.Chip         `json:"applied_filters"`
	Searching      bool                  `json:"searching"`
	CheckoutStep   checkout.Step         `json:"checkout_step"`
}

// Controller orchestrates the storefront core: it owns the filter
// criteria and current page, derives the displayed product subset, and
// routes mutating intents through the session gate. Presentation reads
// View() after every intent; criteria changes always reset the page to 1.
type Controller struct {
	mu sync.Mutex

	store    *catalog.Store
	criteria filter.Criteria
	page     int
	pageSize int

	// Filter results memoized on the criteria's structural key.
	cacheValid bool
	cacheKey   uint64
	cached     []catalog.Product

	ledger        *cart.Ledger
	wish          *wishlist.Set
	notifications *notify.Queue
	auth          session.Authenticator
	gate          *session.Gate
	order         *checkout.Session

	searching         bool
	scrollDebounce    schedule.Debouncer
	indicatorDebounce schedule.Debouncer

	cfg     *config.Config
	cb      Callbacks
	metrics *Metrics
	logger  *slog.Logger
}

// New wires a controller over the given catalog and auth boundary.
func New(
	store *catalog.Store,
	auth session.Authenticator,
	cfg *config.Config,
	cb Callbacks,
	reg prometheus.Registerer,
	logger *slog.Logger,
) *Controller {
	metrics := NewMetrics(reg)

	c := &Controller{
		store:         store,
		page:          1,
		pageSize:      cfg.ProductsPerPage,
		ledger:        cart.NewLedger(logger.With(slog.String("area", "cart"))),
		wish:          wishlist.NewSet(logger.With(slog.String("area", "wishlist"))),
		notifications: notify.NewQueue(cfg.NotificationTTL(), logger.With(slog.String("area", "notify"))),
		auth:          auth,
		order:         checkout.NewSession(cfg.OrderSettleDelay(), logger.With(slog.String("area", "checkout"))),
		cfg:           cfg,
		cb:            cb,
		metrics:       metrics,
		logger:        logger,
	}

	prompt := func() {
		metrics.GateRefusals.Inc()
		if cb.ShowAuth != nil {
			cb.ShowAuth()
		}
	}
	c.gate = session.NewGate(auth, prompt, logger.With(slog.String("area", "gate")))

	return c
}

// View derives the current read-only state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	pageItems, totalPages := pagination.Paginate(filtered, c.pageSize, c.page)

	return View{
		Products:       pageItems,
		TotalMatches:   len(filtered),
		TotalProducts:  c.store.Len(),
		Page:           c.page,
		TotalPages:     totalPages,
		Categories:     c.store.Categories(),
		CategoryCounts: c.store.CategoryCounts(),
		CartLines:      c.ledger.Lines(),
		CartTotalCents: c.ledger.TotalCents(),
		CartCount:      c.ledger.Count(),
		Wishlist:       c.wish.Items(),
		Notifications:  c.notifications.Active(),
		AppliedFilters: c.criteria.Chips(),
		Searching:      c.searching,
		CheckoutStep:   c.order.Step(),
	}
}

// filteredLocked returns the filtered product sequence, recomputing only
// when the criteria's structural key changed.
func (c *Controller) filteredLocked() []catalog.Product {
	key := c.criteria.Key()
	if c.cacheValid && key == c.cacheKey {
		return c.cached
	}

	c.cached = filter.Apply(c.store.Products(), c.criteria)
	c.cacheKey = key
	c.cacheValid = true
	c.metrics.FilterApplies.Inc()

	return c.cached
}

// setCriteriaLocked commits new criteria and resets the page to 1 when
// they differ structurally from the current ones.
func (c *Controller) setCriteriaLocked(next filter.Criteria) {
	if next.Key() == c.criteria.Key() {
		return
	}
	c.criteria = next
	c.page = 1
}

// Criteria returns the currently applied criteria.
func (c *Controller) Criteria() filter.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// ApplyFilters commits a whole new criteria set at once.
func (c *Controller) ApplyFilters(criteria filter.Criteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCriteriaLocked(criteria)
}

// ClearAllFilters resets every filter and confirms it with a
// notification.
func (c *Controller) ClearAllFilters() {
	c.mu.Lock()
	c.setCriteriaLocked(filter.Criteria{})
	c.mu.Unlock()

	c.notifications.Push(notify.Notification{
		Kind:    notify.KindSuccess,
		Message: "All filters cleared",
	})
}

// ClearFilter removes a single applied filter by chip type. For the
// categories type, value names the category to drop from the set.
func (c *Controller) ClearFilter(chipType, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.criteria

	switch chipType {
	case filter.ChipSearch:
		next.Keyword = ""
	case filter.ChipPrice:
		next.PriceRange = nil
	case filter.ChipSort:
		next.Sort = filter.SortNone
	case filter.ChipStock:
		next.InStockOnly = false
	case filter.ChipRating:
		next.MinRating = 0
	case filter.ChipFeatured:
		next.FeaturedOnly = false
	case filter.ChipShipping:
		next.FreeShipping = false
	case filter.ChipCategories:
		var kept []string
		for _, cat := range next.Categories {
			if cat != value {
				kept = append(kept, cat)
			}
		}
		next.Categories = kept
	default:
		return
	}

	c.setCriteriaLocked(next)
}

// SelectCategory sets the legacy single-category selection; an empty name
// clears it.
func (c *Controller) SelectCategory(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.criteria
	next.Category = name
	c.setCriteriaLocked(next)
}

// SetPage jumps straight to the requested page. Out-of-range pages are
// not clamped here; the view simply shows an empty slice, per the
// pagination contract.
func (c *Controller) SetPage(n int) {
	if n < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = n
}

// NextPage advances one page, clamped to the last page.
func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, totalPages := pagination.Paginate(c.filteredLocked(), c.pageSize, c.page)
	if c.page < totalPages {
		c.page++
	}
}

// PrevPage steps back one page, clamped to page 1.
func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page > 1 {
		c.page--
	}
}

// Page returns the current page number.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Search installs the keyword, flips the searching indicator on, pushes a
// search-result notification carrying a one-shot clear-search action, and
// schedules the delayed scroll plus the indicator clear. Rapid repeated
// searches cancel-and-reschedule both timers, so only the latest search's
// feedback lands.
func (c *Controller) Search(keyword string) {
	c.mu.Lock()

	c.searching = true
	next := c.criteria
	next.Keyword = keyword
	c.setCriteriaLocked(next)
	count := len(c.filteredLocked())

	c.mu.Unlock()

	c.metrics.SearchRequests.Inc()

	if strings.TrimSpace(keyword) != "" {
		c.notifications.Push(notify.Notification{
			Kind:   notify.KindSearch,
			Search: &notify.SearchResult{Term: keyword, Count: count},
			ClearAction: func() {
				c.ClearFilter(filter.ChipSearch, "")
			},
		})
	}

	c.scrollDebounce.Schedule(c.cfg.SearchScrollDelay(), func() {
		if c.cb.ScrollToShop != nil {
			c.cb.ScrollToShop()
		}
	})

	c.indicatorDebounce.Schedule(c.cfg.SearchIndicatorDelay(), func() {
		c.mu.Lock()
		c.searching = false
		c.mu.Unlock()
	})
}

// Searching reports whether the searching indicator is on.
func (c *Controller) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

// SelectBrand clears all filters, installs the brand name as the search
// keyword and confirms with a notification carrying a one-shot
// clear-filters action.
func (c *Controller) SelectBrand(name string) {
	c.mu.Lock()
	c.setCriteriaLocked(filter.Criteria{Keyword: name})
	c.mu.Unlock()

	c.notifications.Push(notify.Notification{
		Kind:    notify.KindInfo,
		Message: "Showing products from " + name,
		ClearAction: func() {
			c.ClearAllFilters()
		},
	})

	c.scrollDebounce.Schedule(c.cfg.SearchScrollDelay(), func() {
		if c.cb.ScrollToShop != nil {
			c.cb.ScrollToShop()
		}
	})
}

// AddToCart adds one unit of the product, gated on authentication.
func (c *Controller) AddToCart(p catalog.Product) {
	c.gate.Require(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if err := c.ledger.Add(p); err != nil {
			c.logger.Error("add to cart failed", slog.String("error", err.Error()))
			return
		}
		c.metrics.CartAdds.Inc()
	})
}

// AddToCartWithQuantity adds the product with the detail view's selected
// quantity, gated on authentication.
func (c *Controller) AddToCartWithQuantity(p catalog.Product, qty int) {
	c.gate.Require(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if err := c.ledger.AddWithQuantity(p, qty); err != nil {
			c.logger.Error("add to cart failed", slog.String("error", err.Error()))
			return
		}
		c.metrics.CartAdds.Inc()
	})
}

// RemoveFromCart drops the product's cart line. Not gated: the cart can
// only contain items added while authenticated.
func (c *Controller) RemoveFromCart(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ledger.Remove(productID)
}

// ToggleWishlist flips the product's wishlist membership, gated on
// authentication.
func (c *Controller) ToggleWishlist(p catalog.Product) {
	c.gate.Require(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.wish.Toggle(p)
		c.metrics.WishlistToggles.Inc()
	})
}

// RemoveFromWishlist drops the product from the wishlist.
func (c *Controller) RemoveFromWishlist(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wish.Remove(productID)
}

// InWishlist reports the product's wishlist membership.
func (c *Controller) InWishlist(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wish.Contains(productID)
}

// BeginCheckout starts the checkout flow over the current cart, gated on
// authentication.
func (c *Controller) BeginCheckout() {
	c.gate.Require(func() {
		if err := c.order.Begin(c.ledger.Lines()); err != nil {
			c.logger.Warn("checkout not started", slog.String("error", err.Error()))
		}
	})
}

// Checkout exposes the checkout session for step submissions.
func (c *Controller) Checkout() *checkout.Session {
	return c.order
}

// PlaceOrder triggers the simulated settlement; on completion the cart is
// cleared and a success notification is pushed.
func (c *Controller) PlaceOrder() error {
	return c.order.PlaceOrder(func(orderID string) {
		c.mu.Lock()
		c.ledger.Clear()
		c.mu.Unlock()

		c.metrics.OrdersPlaced.Inc()
		c.notifications.Push(notify.Notification{
			Kind:    notify.KindSuccess,
			Message: "Order placed successfully!",
		})
	})
}

// Notifications exposes the queue for dismiss/trigger intents.
func (c *Controller) Notifications() *notify.Queue {
	return c.notifications
}

// Cart exposes the cart ledger's read surface.
func (c *Controller) Cart() *cart.Ledger {
	return c.ledger
}

// Gate exposes the session gate.
func (c *Controller) Gate() *session.Gate {
	return c.gate
}

// Close cancels all pending timers.
func (c *Controller) Close() {
	c.scrollDebounce.Cancel()
	c.indicatorDebounce.Cancel()
	c.notifications.Close()
}
