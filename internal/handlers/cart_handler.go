package handlers

import (
	"net/http"
	"strconv"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		// Get the session's cart with totals, customer and last invoice
		cart.GET("", h.GetCart)
		// Add product to cart
		cart.POST("/items", h.AddToCart)
		// Update line quantity
		cart.PUT("/items/:product_id", h.UpdateQuantity)
		// Remove line from cart
		cart.DELETE("/items/:product_id", h.RemoveItem)
		// Clear cart
		cart.DELETE("", h.ClearCart)
		// Set billing details
		cart.PUT("/customer", h.SetCustomer)
	}
}

// GetCart godoc
// @Summary Get session cart
// @Description Get cart lines, derived totals, customer details and the last invoice
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.GetCart(c.GetString("session_id")))
}

// AddToCart godoc
// @Summary Add product to cart
// @Description Add one unit of a catalog product to the session cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Product to add"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, exists := h.catalogService.GetProduct(req.ProductID)
	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Product not found",
			Message: "No product with this ID in the catalog",
		})
		return
	}

	cart := h.cartService.AddToCart(c.GetString("session_id"), product)
	c.JSON(http.StatusOK, cart)
}

// UpdateQuantity godoc
// @Summary Update cart line quantity
// @Description Set the quantity for a cart line; values below 1 clamp to 1
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param item body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid product ID",
			Message: "Product ID must be a number",
		})
		return
	}

	// Quantity is deliberately unvalidated here; the cart store clamps
	// anything below 1 and ignores unknown product IDs.
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	cart := h.cartService.UpdateQuantity(c.GetString("session_id"), productID, req.Quantity)
	c.JSON(http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove cart line
// @Description Remove a product from the session cart; idempotent
// @Tags cart
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid product ID",
			Message: "Product ID must be a number",
		})
		return
	}

	cart := h.cartService.RemoveItem(c.GetString("session_id"), productID)
	c.JSON(http.StatusOK, cart)
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove all lines from the session cart
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.ClearCart(c.GetString("session_id")))
}

// SetCustomer godoc
// @Summary Set billing details
// @Description Store customer name, email and address for checkout
// @Tags cart
// @Accept json
// @Produce json
// @Param customer body SetCustomerRequest true "Billing details"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/customer [put]
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	cart := h.cartService.SetCustomer(c.GetString("session_id"), models.CustomerInfo{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	c.JSON(http.StatusOK, cart)
}

// Request structs

type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SetCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
