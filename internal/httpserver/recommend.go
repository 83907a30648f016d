package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"narie-storefront/internal/domain"
)

type recommendRequest struct {
	Mood string `json:"mood" binding:"required"`
}

type recommendResponse struct {
	Recommendation *domain.AIRecommendation `json:"recommendation"`
	Product        *productResponse         `json:"product,omitempty"`
}

// recommend forwards the mood text to the AI gateway with the current
// inventory and resolves the returned product id against the catalog. A miss
// on the id is a soft failure: the concept still renders, the product card
// is simply omitted.
func (h *handlers) recommend(c *gin.Context) {
	if h.deps.Recommender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendation service not configured"})
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}

	lang := h.deps.Setting.Language()
	inventory := h.deps.Catalog.Inventory(lang)
	rec, err := h.deps.Recommender.Recommend(c.Request.Context(), req.Mood, lang, inventory)
	if err != nil {
		h.logger.Printf("recommendation failed: %v", err)
		respondError(c, err)
		return
	}

	resp := recommendResponse{Recommendation: rec}
	if rec.RecommendedProductID != "" {
		p, err := h.deps.Catalog.Get(lang, rec.RecommendedProductID)
		switch {
		case err == nil:
			pr := h.productResponse(*p, domain.CurrencyFor(lang))
			resp.Product = &pr
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Printf("recommended product %q not in catalog", rec.RecommendedProductID)
		default:
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
