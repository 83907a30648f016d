// Package checkout drives the two-step checkout flow: shipping information,
// then payment, then a terminal success screen. Order submission is delegated
// to an OrderSubmitter so the simulated backend can be swapped for a real one
// without touching the state machine.
package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"narie-storefront/internal/domain"
)

// cartStore is the slice of the cart the checkout flow needs.
type cartStore interface {
	Lines() []domain.CartLine
	TotalItemCount() int
	Clear()
}

// Session is a snapshot of the checkout flow state.
type Session struct {
	Step       domain.CheckoutStep  `json:"step"`
	Shipping   domain.ShippingInfo  `json:"shipping"`
	Payment    domain.PaymentMethod `json:"payment"`
	Processing bool                 `json:"processing"`
	Success    bool                 `json:"success"`
	OrderID    string               `json:"orderId,omitempty"`
}

type session struct {
	Session
	cancel context.CancelFunc
	closed bool
}

// Manager owns at most one checkout session at a time.
type Manager struct {
	mu        sync.Mutex
	active    *session
	cart      cartStore
	submitter OrderSubmitter
	validate  *validator.Validate
}

// NewManager builds a Manager over the given cart and submitter.
func NewManager(cart cartStore, submitter OrderSubmitter) *Manager {
	return &Manager{
		cart:      cart,
		submitter: submitter,
		validate:  validator.New(),
	}
}

// Begin opens a new checkout session at the information step. An empty cart
// is not checkable and a session already in progress must be closed first.
func (m *Manager) Begin() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil {
		return nil, fmt.Errorf("checkout already in progress: %w", domain.ErrConflict)
	}
	if m.cart.TotalItemCount() == 0 {
		return nil, fmt.Errorf("cart is empty: %w", domain.ErrConflict)
	}
	m.active = &session{Session: Session{Step: domain.StepInformation, Payment: domain.PaymentCOD}}
	snap := m.active.Session
	return &snap, nil
}

// Current returns a snapshot of the active session, or domain.ErrNotFound.
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, domain.ErrNotFound
	}
	snap := m.active.Session
	return &snap, nil
}

// SubmitInformation validates the shipping form and advances to the payment
// step. A failed validation leaves the session at the information step with
// the form untouched.
func (m *Manager) SubmitInformation(info domain.ShippingInfo) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, domain.ErrNotFound
	}
	if m.active.Success {
		return nil, fmt.Errorf("checkout already completed: %w", domain.ErrConflict)
	}
	if err := m.validate.Struct(info); err != nil {
		return nil, fmt.Errorf("shipping form: %v: %w", err, domain.ErrValidation)
	}
	m.active.Shipping = info
	m.active.Step = domain.StepPayment
	snap := m.active.Session
	return &snap, nil
}

// Back returns from payment to the information step, keeping the form data.
func (m *Manager) Back() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, domain.ErrNotFound
	}
	if m.active.Success || m.active.Processing {
		return nil, fmt.Errorf("cannot go back: %w", domain.ErrConflict)
	}
	m.active.Step = domain.StepInformation
	snap := m.active.Session
	return &snap, nil
}

// PlaceOrder submits the order through the configured submitter. While the
// submission is in flight the session is marked processing and repeated calls
// are rejected. On success the session becomes terminal and the cart is
// cleared; a cancelled or failed submission leaves the cart intact.
func (m *Manager) PlaceOrder(ctx context.Context, method domain.PaymentMethod) (*Session, error) {
	m.mu.Lock()
	if m.active == nil {
		m.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if m.active.Success {
		m.mu.Unlock()
		return nil, fmt.Errorf("order already placed: %w", domain.ErrConflict)
	}
	if m.active.Processing {
		m.mu.Unlock()
		return nil, fmt.Errorf("order submission in flight: %w", domain.ErrConflict)
	}
	if m.active.Step != domain.StepPayment {
		m.mu.Unlock()
		return nil, fmt.Errorf("shipping information incomplete: %w", domain.ErrConflict)
	}
	if !method.Valid() {
		m.mu.Unlock()
		return nil, fmt.Errorf("unknown payment method %q: %w", method, domain.ErrValidation)
	}

	sess := m.active
	sess.Payment = method
	sess.Processing = true
	subCtx, cancel := context.WithCancel(ctx)
	sess.cancel = cancel
	order := Order{
		Shipping: sess.Shipping,
		Payment:  method,
		Lines:    m.cart.Lines(),
	}
	m.mu.Unlock()
	defer cancel()

	orderID, err := m.submitter.Submit(subCtx, order)

	m.mu.Lock()
	defer m.mu.Unlock()
	sess.Processing = false
	sess.cancel = nil
	if sess.closed {
		// The surface was closed mid-flight; the cart must not change.
		return nil, fmt.Errorf("checkout closed: %w", domain.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	sess.Success = true
	sess.OrderID = orderID
	m.cart.Clear()
	snap := sess.Session
	return &snap, nil
}

// Close discards the active session. A submission still in flight is
// cancelled and has no effect on the cart. Closing with no session is a
// no-op so the handler can be idempotent.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return
	}
	m.active.closed = true
	if m.active.cancel != nil {
		m.active.cancel()
	}
	m.active = nil
}
