package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skinglow/skinglow-backend/internal/pkg/errors"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
	"github.com/skinglow/skinglow-backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
	log         *logger.Logger
}

func NewCartHandler(cartService services.CartService, log *logger.Logger) *CartHandler {
	return &CartHandler{cartService: cartService, log: log.With("handler", "CartHandler")}
}

type AddToCartInput struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// GET /api/cart
func (ch *CartHandler) ListCart(c *gin.Context) {
	items, err := ch.cartService.ListCart(c.Request.Context())
	if err != nil {
		ch.log.Error("ListCart failed", "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	RespondOK(c, items)
}

// POST /api/cart
func (ch *CartHandler) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondMessage(c, http.StatusBadRequest, "Product ID and quantity required")
		return
	}

	item, _, err := ch.cartService.AddToCart(c.Request.Context(), input.ProductID, input.Quantity)
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		RespondMessage(c, http.StatusBadRequest, "Product ID and quantity required")
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Product not found")
	case err != nil:
		ch.log.Error("AddToCart failed", "product_id", input.ProductID, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, gin.H{"message": "Item added to cart", "item": item})
	}
}

// PUT /api/cart/:id
func (ch *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		RespondMessage(c, http.StatusNotFound, "Cart item not found")
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondMessage(c, http.StatusBadRequest, "Quantity required")
		return
	}

	item, err := ch.cartService.UpdateQuantity(c.Request.Context(), id, input.Quantity)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Cart item not found")
	case err != nil:
		ch.log.Error("UpdateCartItem failed", "cart_item_id", id, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, gin.H{"message": "Cart item updated", "item": item})
	}
}

// DELETE /api/cart/:id
func (ch *CartHandler) DeleteCartItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		RespondMessage(c, http.StatusNotFound, "Cart item not found")
		return
	}

	err := ch.cartService.RemoveLineItem(c.Request.Context(), id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondMessage(c, http.StatusNotFound, "Cart item not found")
	case err != nil:
		ch.log.Error("DeleteCartItem failed", "cart_item_id", id, "error", err)
		RespondMessage(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondOK(c, gin.H{"message": "Cart item removed"})
	}
}
