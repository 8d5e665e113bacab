package handler

import (
	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/domain/entity"
	"pdv-client/internal/presentation/http/dto/response"
)

// CategoryHandler handles the category admin screens.
type CategoryHandler struct {
	catalogService *service.CatalogService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalogService *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

// List returns all categories.
func (h *CategoryHandler) List(c *gin.Context) {
	sess := GetSession(c)
	categories, err := h.catalogService.ListCategories(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// Create adds a category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var input entity.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	category, err := h.catalogService.CreateCategory(c.Request.Context(), sess, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// Update replaces a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	var input entity.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess := GetSession(c)
	category, err := h.catalogService.UpdateCategory(c.Request.Context(), sess, ParseID(c, "id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	sess := GetSession(c)
	if err := h.catalogService.DeleteCategory(c.Request.Context(), sess, ParseID(c, "id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category deleted successfully", nil)
}
