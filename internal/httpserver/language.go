package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"narie-storefront/internal/domain"
	"narie-storefront/internal/i18n"
)

func (h *handlers) getLanguage(c *gin.Context) {
	lang := h.deps.Setting.Language()
	c.JSON(http.StatusOK, gin.H{"language": lang, "currency": domain.CurrencyFor(lang)})
}

type setLanguageRequest struct {
	Language domain.Language `json:"language" binding:"required"`
}

// setLanguage switches the locale; the currency follows in the same step.
func (h *handlers) setLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, domain.ErrValidation))
		return
	}
	if err := h.deps.Setting.SetLanguage(req.Language); err != nil {
		respondError(c, fmt.Errorf("unknown language %q: %w", req.Language, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": req.Language, "currency": domain.CurrencyFor(req.Language)})
}

func (h *handlers) getTranslations(c *gin.Context) {
	lang := domain.Language(c.Param("lang"))
	if !lang.Valid() {
		respondError(c, fmt.Errorf("unknown language %q: %w", lang, domain.ErrValidation))
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "translations": i18n.Table(lang)})
}

// getLegal serves a legal document split into its numbered sections.
func (h *handlers) getLegal(c *gin.Context) {
	doc := i18n.LegalDoc(c.Param("doc"))
	lang := h.deps.Setting.Language()
	if q := c.Query("lang"); q != "" {
		lang = domain.Language(q)
		if !lang.Valid() {
			respondError(c, fmt.Errorf("unknown language %q: %w", lang, domain.ErrValidation))
			return
		}
	}
	sections, err := i18n.LegalSections(lang, doc)
	if err != nil {
		respondError(c, fmt.Errorf("legal document %q: %w", doc, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc, "language": lang, "sections": sections})
}
