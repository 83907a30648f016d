package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"narie-storefront/internal/domain"
	"narie-storefront/internal/pricing"
)

type cartLineResponse struct {
	Product        productResponse `json:"product"`
	Variant        domain.Variant  `json:"variant"`
	Quantity       int             `json:"quantity"`
	UnitPrice      int64           `json:"unitPrice"`
	LineTotal      int64           `json:"lineTotal"`
	FormattedTotal string          `json:"formattedTotal"`
}

type cartResponse struct {
	Lines                 []cartLineResponse `json:"lines"`
	IsOpen                bool               `json:"isOpen"`
	TotalItemCount        int                `json:"totalItemCount"`
	Currency              domain.Currency    `json:"currency"`
	Subtotal              int64              `json:"subtotal"`
	ShippingCost          int64              `json:"shippingCost"`
	GrandTotal            int64              `json:"grandTotal"`
	FormattedSubtotal     string             `json:"formattedSubtotal"`
	FormattedShippingCost string             `json:"formattedShippingCost"`
	FormattedGrandTotal   string             `json:"formattedGrandTotal"`
}

// cartView assembles the priced cart in the active language. Lines whose
// product id no longer resolves are skipped rather than priced at zero.
func (h *handlers) cartView() cartResponse {
	lang := h.deps.Setting.Language()
	currency := domain.CurrencyFor(lang)

	lines := h.deps.Cart.Lines()
	out := make([]cartLineResponse, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		p, err := h.deps.Catalog.Get(lang, line.ProductID)
		if err != nil {
			continue
		}
		total := pricing.LineTotal(*p, line, currency)
		subtotal += total
		out = append(out, cartLineResponse{
			Product:        h.productResponse(*p, currency),
			Variant:        line.Variant,
			Quantity:       line.Quantity,
			UnitPrice:      pricing.UnitPrice(*p, line.Variant, currency),
			LineTotal:      total,
			FormattedTotal: pricing.Format(total, string(currency)),
		})
	}

	shipping := pricing.ShippingCost(subtotal, currency)
	grand := pricing.GrandTotal(subtotal, currency)
	return cartResponse{
		Lines:                 out,
		IsOpen:                h.deps.Cart.IsOpen(),
		TotalItemCount:        h.deps.Cart.TotalItemCount(),
		Currency:              currency,
		Subtotal:              subtotal,
		ShippingCost:          shipping,
		GrandTotal:            grand,
		FormattedSubtotal:     pricing.Format(subtotal, string(currency)),
		FormattedShippingCost: pricing.Format(shipping, string(currency)),
		FormattedGrandTotal:   pricing.Format(grand, string(currency)),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView())
}

type addItemRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	Quantity  int            `json:"quantity"`
	Variant   domain.Variant `json:"variant"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Variant == "" {
		req.Variant = domain.VariantStandard
	}
	if _, err := h.deps.Catalog.Get(h.deps.Setting.Language(), req.ProductID); err != nil {
		respondError(c, fmt.Errorf("product %s: %w", req.ProductID, err))
		return
	}
	if err := h.deps.Cart.AddItem(req.ProductID, req.Quantity, req.Variant); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.cartView())
}

type updateItemRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	Variant   domain.Variant `json:"variant" binding:"required"`
	Quantity  int            `json:"quantity"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}
	h.deps.Cart.UpdateQuantity(req.ProductID, req.Variant, req.Quantity)
	c.JSON(http.StatusOK, h.cartView())
}

func (h *handlers) removeCartItem(c *gin.Context) {
	productID := c.Query("productId")
	variant := domain.Variant(c.Query("variant"))
	if productID == "" || !variant.Valid() {
		respondError(c, fmt.Errorf("productId and variant required: %w", domain.ErrValidation))
		return
	}
	h.deps.Cart.RemoveItem(productID, variant)
	c.JSON(http.StatusOK, h.cartView())
}

func (h *handlers) toggleCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isOpen": h.deps.Cart.ToggleVisibility()})
}
