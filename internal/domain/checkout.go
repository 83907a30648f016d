package domain

// CheckoutStep identifies the active page of the two-step checkout flow.
type CheckoutStep int

const (
	StepInformation CheckoutStep = 1
	StepPayment     CheckoutStep = 2
)

// PaymentMethod enumerates the offered (simulated) payment options.
type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "cod"
	PaymentQR  PaymentMethod = "qr"
)

// Valid reports whether m is one of the offered payment methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentQR
}

// ShippingInfo is the step-1 form. Every field is required before the flow
// may advance to payment.
type ShippingInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}
