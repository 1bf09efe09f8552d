package checkout

import (
	"errors"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aashif-Raza/TrendNest/internal/cart"
	"github.com/Aashif-Raza/TrendNest/internal/schedule"
	apperrors "github.com/Aashif-Raza/TrendNest/pkg/errors"
	"github.com/Aashif-Raza/TrendNest/pkg/validator"
)

// Step identifies the checkout state.
type Step int

// Checkout steps. Forward transitions are gated by field validation;
// backward transitions are always permitted and preserve entered values.
const (
	StepIdle Step = iota
	StepShipping
	StepPayment
	StepReview
	StepPlacing
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepPlacing:
		return "placing"
	default:
		return "unknown"
	}
}

// ShippingForm is the first checkout step's input.
type ShippingForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Postal  string `json:"postal" validate:"required"`
}

// PaymentForm is the second checkout step's input.
type PaymentForm struct {
	CardNumber string `json:"card_number" validate:"cardnumber"`
	Expiry     string `json:"expiry" validate:"expirymmyy"`
	CVV        string `json:"cvv" validate:"cvv"`
}

var (
	mastercardRe = regexp.MustCompile(`^5[1-5]`)
	visaRe       = regexp.MustCompile(`^4`)
	amexRe       = regexp.MustCompile(`^3[47]`)
)

// CardType guesses the card network from the number prefix. Unknown
// prefixes yield an empty string.
func CardType(number string) string {
	switch {
	case mastercardRe.MatchString(number):
		return "mastercard"
	case visaRe.MatchString(number):
		return "visa"
	case amexRe.MatchString(number):
		return "amex"
	default:
		return ""
	}
}

// CouponCode is the accepted demo coupon; it grants couponRatePercent off.
const CouponCode = "DEMO10"

const couponRatePercent = 10

// Session drives one checkout: Idle -> ShippingEntry -> PaymentEntry ->
// Review -> Placing -> Idle. Settlement is simulated with a fixed delay
// whose timer fires on its own goroutine, so state is mutex-guarded.
type Session struct {
	mu sync.Mutex

	step  Step
	lines []cart.Line

	shipping ShippingForm
	payment  PaymentForm

	couponApplied bool
	couponInvalid bool
	discountRate  int64

	settleDelay time.Duration
	lastOrderID string

	logger *slog.Logger
}

// NewSession creates an idle checkout session.
func NewSession(settleDelay time.Duration, logger *slog.Logger) *Session {
	return &Session{settleDelay: settleDelay, logger: logger}
}

// Begin starts checkout over a snapshot of the cart lines.
func (s *Session) Begin(lines []cart.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepIdle {
		return apperrors.InvalidInput("checkout already in progress")
	}
	if len(lines) == 0 {
		return apperrors.InvalidInput("cart is empty")
	}

	s.lines = make([]cart.Line, len(lines))
	copy(s.lines, lines)
	s.step = StepShipping
	s.couponApplied = false
	s.couponInvalid = false
	s.discountRate = 0
	s.shipping = ShippingForm{}
	s.payment = PaymentForm{}

	s.logger.Info("checkout started", slog.Int("lines", len(lines)))
	return nil
}

// Step returns the current checkout step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SubmitShipping validates the shipping form. Field errors are returned by
// name and block advancement; a clean form moves to PaymentEntry.
func (s *Session) SubmitShipping(f ShippingForm) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepShipping {
		return nil, apperrors.InvalidInput("not at the shipping step")
	}

	s.shipping = f
	if fields := fieldErrors(f); len(fields) > 0 {
		return fields, nil
	}

	s.step = StepPayment
	return nil, nil
}

// SubmitPayment validates the payment form. Field errors are returned by
// name and block advancement; a clean form moves to Review.
func (s *Session) SubmitPayment(f PaymentForm) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPayment {
		return nil, apperrors.InvalidInput("not at the payment step")
	}

	s.payment = f
	if fields := fieldErrors(f); len(fields) > 0 {
		return fields, nil
	}

	s.step = StepReview
	return nil, nil
}

func fieldErrors(form any) map[string]string {
	err := validator.Validate(form)
	if err == nil {
		return nil
	}
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields()
	}
	return map[string]string{"form": err.Error()}
}

// Back steps backward one stage. Entered field values are preserved.
// Backing up from ShippingEntry abandons the checkout.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepPayment:
		s.step = StepShipping
	case StepReview:
		s.step = StepPayment
	case StepShipping:
		s.step = StepIdle
		s.lines = nil
	}
}

// ApplyCoupon validates the coupon code. The demo code applies a 10
// percent discount once; any other code leaves the total untouched and marks the
// coupon invalid — checkout proceeds regardless.
func (s *Session) ApplyCoupon(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.couponApplied {
		return
	}

	if code == CouponCode {
		s.couponApplied = true
		s.couponInvalid = false
		s.discountRate = couponRatePercent
		s.logger.Info("coupon applied", slog.String("code", code))
		return
	}

	s.couponInvalid = true
	s.discountRate = 0
}

// CouponApplied reports whether a valid coupon is active.
func (s *Session) CouponApplied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.couponApplied
}

// CouponInvalid reports whether the last coupon attempt was rejected.
func (s *Session) CouponInvalid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.couponInvalid
}

// SubtotalCents sums price times quantity over the checkout snapshot.
func (s *Session) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.lines)
}

// DiscountCents returns the coupon discount amount.
func (s *Session) DiscountCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.lines) * s.discountRate / 100
}

// TotalCents returns subtotal minus discount.
func (s *Session) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := subtotal(s.lines)
	return sub - sub*s.discountRate/100
}

func subtotal(lines []cart.Line) int64 {
	var total int64
	for _, line := range lines {
		total += line.Product.PriceCents * int64(line.Quantity)
	}
	return total
}

// Shipping returns the entered shipping form.
func (s *Session) Shipping() ShippingForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// Payment returns the entered payment form.
func (s *Session) Payment() PaymentForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// Lines returns the checkout snapshot of cart lines.
func (s *Session) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cart.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// PlaceOrder moves Review -> Placing and arms the simulated settlement.
// When the settle delay elapses the session returns to Idle and onSettled
// receives the new order identifier; the caller clears the cart there.
func (s *Session) PlaceOrder(onSettled func(orderID string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepReview {
		return apperrors.InvalidInput("not at the review step")
	}

	s.step = StepPlacing
	s.logger.Info("order placement started", slog.Int64("total_cents", subtotal(s.lines)-subtotal(s.lines)*s.discountRate/100))

	schedule.After(s.settleDelay, func() {
		s.mu.Lock()
		orderID := uuid.New().String()
		s.lastOrderID = orderID
		s.step = StepIdle
		s.lines = nil
		s.mu.Unlock()

		s.logger.Info("order placed", slog.String("order_id", orderID))
		if onSettled != nil {
			onSettled(orderID)
		}
	})

	return nil
}

// Placing reports whether settlement is in flight.
func (s *Session) Placing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step == StepPlacing
}

// LastOrderID returns the identifier of the most recently settled order.
func (s *Session) LastOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrderID
}
