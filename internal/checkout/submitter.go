package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"narie-storefront/internal/domain"
)

// Order is what gets handed to the submitter when the customer confirms.
type Order struct {
	Shipping domain.ShippingInfo
	Payment  domain.PaymentMethod
	Lines    []domain.CartLine
}

// OrderSubmitter finalizes an order and returns its confirmation id. There is
// no real order backend here; production wiring uses the simulator below.
type OrderSubmitter interface {
	Submit(ctx context.Context, order Order) (string, error)
}

// SimulatedSubmitter stands in for an order backend by waiting a fixed delay
// and minting a confirmation id. The wait honors context cancellation so a
// closed checkout surface aborts the pending submission.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// NewSimulatedSubmitter returns a submitter with the given artificial latency.
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: delay}
}

// Submit waits out the simulated latency, then returns a fresh order id of
// the form "#NR-1234".
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Order) (string, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}
	return fmt.Sprintf("#NR-%04d", rand.Intn(10000)), nil
}
