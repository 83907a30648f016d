package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"narie-storefront/internal/domain"
	"narie-storefront/internal/recommend"
)

// respondError maps domain sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, recommend.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, recommend.ErrRecommendation):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
