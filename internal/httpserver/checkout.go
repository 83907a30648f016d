package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"narie-storefront/internal/checkout"
	"narie-storefront/internal/domain"
)

type checkoutResponse struct {
	Session *checkout.Session `json:"session"`
	Cart    cartResponse      `json:"cart"`
}

func (h *handlers) checkoutResponse(sess *checkout.Session) checkoutResponse {
	return checkoutResponse{Session: sess, Cart: h.cartView()}
}

func (h *handlers) beginCheckout(c *gin.Context) {
	sess, err := h.deps.Checkout.Begin()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.checkoutResponse(sess))
}

func (h *handlers) getCheckout(c *gin.Context) {
	sess, err := h.deps.Checkout.Current()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.checkoutResponse(sess))
}

func (h *handlers) submitInformation(c *gin.Context) {
	var info domain.ShippingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}
	sess, err := h.deps.Checkout.SubmitInformation(info)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.checkoutResponse(sess))
}

func (h *handlers) backToInformation(c *gin.Context) {
	sess, err := h.deps.Checkout.Back()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.checkoutResponse(sess))
}

type placeOrderRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// placeOrder blocks for the duration of the (simulated) order submission and
// returns the terminal session. Closing the checkout mid-flight cancels it.
func (h *handlers) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}
	sess, err := h.deps.Checkout.PlaceOrder(c.Request.Context(), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	h.logger.Printf("order %s confirmed (%s)", sess.OrderID, sess.Payment)
	c.JSON(http.StatusOK, h.checkoutResponse(sess))
}

func (h *handlers) closeCheckout(c *gin.Context) {
	h.deps.Checkout.Close()
	c.Status(http.StatusNoContent)
}
