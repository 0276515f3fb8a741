package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skinglow/skinglow-backend/internal/pkg/errors"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/services"
)

type ProductHandler struct {
	catalogService services.CatalogService
	log            *logger.Logger
}

func NewProductHandler(catalogService services.CatalogService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, log: log.With("handler", "ProductHandler")}
}

// GET /api/products
func (ph *ProductHandler) ListProducts(c *gin.Context) {
	products, err := ph.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		ph.log.Error("ListProducts failed", "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	RespondOK(c, products)
}

// GET /api/products/:id
func (ph *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		RespondMessage(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := ph.catalogService.GetProduct(c.Request.Context(), id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Product not found")
	case err != nil:
		ph.log.Error("GetProduct failed", "product_id", id, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, product)
	}
}
