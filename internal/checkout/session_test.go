package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"narie-storefront/internal/cart"
	"narie-storefront/internal/domain"
)

type stubSubmitter struct {
	mu      sync.Mutex
	calls   int
	orderID string
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubSubmitter) Submit(ctx context.Context, _ Order) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.err != nil {
		return "", s.err
	}
	if s.orderID == "" {
		return "#NR-0001", nil
	}
	return s.orderID, nil
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		Name:    "An Nguyen",
		Email:   "an@example.com",
		Phone:   "0901234567",
		Address: "123 Poetry Lane",
		City:    "HCMC",
	}
}

func cartWithItem(t *testing.T) *cart.Store {
	t.Helper()
	c := cart.New()
	if err := c.AddItem("1", 2, domain.VariantStandard); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	return c
}

func TestBeginRequiresNonEmptyCart(t *testing.T) {
	m := NewManager(cart.New(), &stubSubmitter{})
	if _, err := m.Begin(); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict for empty cart, got %v", err)
	}
}

func TestBeginTwiceConflicts(t *testing.T) {
	m := NewManager(cartWithItem(t), &stubSubmitter{})
	if _, err := m.Begin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Begin(); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSubmitInformationValidation(t *testing.T) {
	m := NewManager(cartWithItem(t), &stubSubmitter{})
	if _, err := m.Begin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := validShipping()
	info.Email = ""
	if _, err := m.SubmitInformation(info); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	sess, err := m.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Step != domain.StepInformation {
		t.Fatalf("invalid submission must stay at step 1, got step %d", sess.Step)
	}

	sess, err = m.SubmitInformation(validShipping())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Step != domain.StepPayment {
		t.Fatalf("expected step 2, got %d", sess.Step)
	}
}

func TestBackPreservesForm(t *testing.T) {
	m := NewManager(cartWithItem(t), &stubSubmitter{})
	_, _ = m.Begin()
	if _, err := m.SubmitInformation(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sess, err := m.Back()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Step != domain.StepInformation {
		t.Fatalf("expected step 1, got %d", sess.Step)
	}
	if sess.Shipping != validShipping() {
		t.Fatalf("form data lost on back: %+v", sess.Shipping)
	}
}

func TestPlaceOrderRequiresPaymentStep(t *testing.T) {
	m := NewManager(cartWithItem(t), &stubSubmitter{})
	_, _ = m.Begin()
	if _, err := m.PlaceOrder(context.Background(), domain.PaymentCOD); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict at step 1, got %v", err)
	}
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	c := cartWithItem(t)
	sub := &stubSubmitter{orderID: "#NR-4242"}
	m := NewManager(c, sub)
	_, _ = m.Begin()
	_, _ = m.SubmitInformation(validShipping())

	sess, err := m.PlaceOrder(context.Background(), domain.PaymentQR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.Success || sess.Processing {
		t.Fatalf("expected terminal success, got %+v", sess)
	}
	if sess.OrderID != "#NR-4242" {
		t.Fatalf("expected order id from submitter, got %q", sess.OrderID)
	}
	if sess.Payment != domain.PaymentQR {
		t.Fatalf("expected qr payment, got %q", sess.Payment)
	}
	if c.TotalItemCount() != 0 {
		t.Fatalf("cart must be cleared on success, count %d", c.TotalItemCount())
	}
}

func TestPlaceOrderWhileProcessingRejected(t *testing.T) {
	c := cartWithItem(t)
	sub := &stubSubmitter{started: make(chan struct{}), release: make(chan struct{})}
	m := NewManager(c, sub)
	_, _ = m.Begin()
	_, _ = m.SubmitInformation(validShipping())

	done := make(chan error, 1)
	go func() {
		_, err := m.PlaceOrder(context.Background(), domain.PaymentCOD)
		done <- err
	}()
	<-sub.started

	if _, err := m.PlaceOrder(context.Background(), domain.PaymentCOD); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict while processing, got %v", err)
	}

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if got := sub.callCount(); got != 1 {
		t.Fatalf("expected a single submission, got %d", got)
	}
	if c.TotalItemCount() != 0 {
		t.Fatalf("cart must be cleared exactly once, count %d", c.TotalItemCount())
	}

	// Terminal session: a repeat must not double-clear or resubmit.
	_ = c.AddItem("2", 1, domain.VariantStandard)
	if _, err := m.PlaceOrder(context.Background(), domain.PaymentCOD); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict after success, got %v", err)
	}
	if c.TotalItemCount() != 1 {
		t.Fatalf("terminal session must not clear cart again, count %d", c.TotalItemCount())
	}
}

func TestCloseMidFlightCancelsAndKeepsCart(t *testing.T) {
	c := cartWithItem(t)
	sub := &stubSubmitter{started: make(chan struct{}), release: make(chan struct{})}
	m := NewManager(c, sub)
	_, _ = m.Begin()
	_, _ = m.SubmitInformation(validShipping())

	done := make(chan error, 1)
	go func() {
		_, err := m.PlaceOrder(context.Background(), domain.PaymentCOD)
		done <- err
	}()
	<-sub.started

	m.Close()
	if err := <-done; err == nil {
		t.Fatal("expected cancelled submission to error")
	}
	if c.TotalItemCount() != 2 {
		t.Fatalf("cancelled checkout must leave cart intact, count %d", c.TotalItemCount())
	}
	if _, err := m.Current(); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no session after close, got %v", err)
	}
}

func TestCloseWithoutSessionNoop(t *testing.T) {
	m := NewManager(cart.New(), &stubSubmitter{})
	m.Close()
}

func TestCloseDiscardsWithoutClearingCart(t *testing.T) {
	c := cartWithItem(t)
	m := NewManager(c, &stubSubmitter{})
	_, _ = m.Begin()
	m.Close()
	if c.TotalItemCount() != 2 {
		t.Fatalf("close must not touch the cart, count %d", c.TotalItemCount())
	}
}

func TestSubmitterFailureLeavesCart(t *testing.T) {
	c := cartWithItem(t)
	m := NewManager(c, &stubSubmitter{err: errors.New("backend down")})
	_, _ = m.Begin()
	_, _ = m.SubmitInformation(validShipping())
	if _, err := m.PlaceOrder(context.Background(), domain.PaymentCOD); err == nil {
		t.Fatal("expected submission error")
	}
	if c.TotalItemCount() != 2 {
		t.Fatalf("failed submission must leave cart intact, count %d", c.TotalItemCount())
	}
	sess, err := m.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Success || sess.Processing {
		t.Fatalf("session should be retryable, got %+v", sess)
	}
}

func TestSimulatedSubmitterHonorsCancellation(t *testing.T) {
	sub := NewSimulatedSubmitter(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	go cancel()
	if _, err := sub.Submit(ctx, Order{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSimulatedSubmitterOrderID(t *testing.T) {
	sub := NewSimulatedSubmitter(0)
	id, err := sub.Submit(context.Background(), Order{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(id) != 8 || id[:4] != "#NR-" {
		t.Fatalf("unexpected order id %q", id)
	}
}
