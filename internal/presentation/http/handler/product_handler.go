package handler

import (
	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/infrastructure/backend"
	"pdv-client/internal/presentation/http/dto/request"
	"pdv-client/internal/presentation/http/dto/response"
	"pdv-client/pkg/pagination"
)

// ProductHandler handles the product admin screens.
type ProductHandler struct {
	catalogService *service.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// List returns the product grid.
func (h *ProductHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c.Query("page"), c.Query("limit"))

	filter := backend.ProductFilter{
		Search:     c.Query("search"),
		Active:     c.Query("active"),
		CategoryID: c.Query("category_id"),
		LowStock:   c.Query("low_stock") == "true",
		Pagination: params,
	}

	sess := GetSession(c)
	products, err := h.catalogService.ListProducts(c.Request.Context(), sess, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Get returns one product.
func (h *ProductHandler) Get(c *gin.Context) {
	sess := GetSession(c)
	product, err := h.catalogService.GetProduct(c.Request.Context(), sess, ParseID(c, "id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Create adds a product.
func (h *ProductHandler) Create(c *gin.Context) {
	var input entity.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	product, err := h.catalogService.CreateProduct(c.Request.Context(), sess, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Update replaces a product.
func (h *ProductHandler) Update(c *gin.Context) {
	var input entity.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	product, err := h.catalogService.UpdateProduct(c.Request.Context(), sess, ParseID(c, "id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c *gin.Context) {
	sess := GetSession(c)
	if err := h.catalogService.DeleteProduct(c.Request.Context(), sess, ParseID(c, "id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product deleted successfully", nil)
}

// SetStock sets a product's stock to an absolute level.
func (h *ProductHandler) SetStock(c *gin.Context) {
	var req request.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	product, err := h.catalogService.ReplenishStock(c.Request.Context(), sess, ParseID(c, "id"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated successfully", product)
}
