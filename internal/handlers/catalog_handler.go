package handlers

import (
	"net/http"
	"strconv"

	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the routes for the product catalog
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products", h.ListProducts)
	router.GET("/products/:product_id", h.GetProduct)

	catalog := router.Group("/catalog")
	{
		catalog.GET("/status", h.GetStatus)
		catalog.POST("/reload", h.Reload)
	}
}

// ListProducts godoc
// @Summary List products
// @Description Get the working product catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.catalogService.GetProducts(c.Request.Context())
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a single product from the working catalog
// @Tags catalog
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid product ID",
			Message: "Product ID must be a number",
		})
		return
	}

	product, exists := h.catalogService.GetProduct(productID)
	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Product not found",
			Message: "No product with this ID in the catalog",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetStatus godoc
// @Summary Get catalog status
// @Description Report catalog size and load-failure state
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogStatusResponse
// @Router /catalog/status [get]
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	count, loadErr := h.catalogService.Status()

	status := CatalogStatusResponse{ProductCount: count}
	if loadErr != nil {
		status.Error = loadErr.Error()
	}

	c.JSON(http.StatusOK, status)
}

// Reload godoc
// @Summary Reload the catalog
// @Description Re-run the fetch/seed flow against the store backend
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogStatusResponse
// @Failure 502 {object} ErrorResponse
// @Router /catalog/reload [post]
func (h *CatalogHandler) Reload(c *gin.Context) {
	if err := h.catalogService.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Failed to load products",
			Message: err.Error(),
		})
		return
	}

	count, _ := h.catalogService.Status()
	c.JSON(http.StatusOK, CatalogStatusResponse{ProductCount: count})
}

type CatalogStatusResponse struct {
	ProductCount int    `json:"product_count"`
	Error        string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
