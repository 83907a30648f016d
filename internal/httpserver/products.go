package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"narie-storefront/internal/domain"
	"narie-storefront/internal/pricing"
)

type productResponse struct {
	domain.Product
	FormattedPrice string `json:"formattedPrice"`
}

func (h *handlers) productResponse(p domain.Product, currency domain.Currency) productResponse {
	amount := p.PriceUSDCents
	if currency == domain.CurrencyVND {
		amount = p.PriceVND
	}
	return productResponse{
		Product:        p,
		FormattedPrice: pricing.Format(amount, string(currency)),
	}
}

// listProducts returns the catalog in the active language, optionally
// filtered by ?category=.
func (h *handlers) listProducts(c *gin.Context) {
	lang := h.deps.Setting.Language()
	currency := domain.CurrencyFor(lang)

	var products []domain.Product
	if cat := c.Query("category"); cat != "" {
		products = h.deps.Catalog.ListByCategory(lang, domain.Category(cat))
	} else {
		products = h.deps.Catalog.List(lang)
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, h.productResponse(p, currency))
	}
	c.JSON(http.StatusOK, gin.H{"products": out, "language": lang, "currency": currency})
}

func (h *handlers) getProduct(c *gin.Context) {
	lang := h.deps.Setting.Language()
	p, err := h.deps.Catalog.Get(lang, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.productResponse(*p, domain.CurrencyFor(lang)))
}
