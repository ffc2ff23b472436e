package handlers

import (
	"errors"
	"net/http"

	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// RegisterRoutes registers the checkout route
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/checkout", h.Checkout)
}

// Checkout godoc
// @Summary Checkout the session cart
// @Description Submit the cart to the store backend; on success the invoice replaces the cart
// @Tags checkout
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	cart, err := h.checkoutService.Checkout(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "Checkout in progress",
				Message: err.Error(),
			})
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrIncompleteCustomer):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "Checkout not ready",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusBadGateway, ErrorResponse{
				Error:   "Checkout failed",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, cart)
}
