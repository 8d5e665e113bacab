package service

import (
	"context"
	"strings"

	"pdv-client/internal/domain/entity"
	"pdv-client/internal/infrastructure/backend"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/pkg/apperror"
)

// CatalogService is the admin surface over products and categories. The
// backend owns the data; this layer validates input before it leaves the
// client and keeps the stock remediation action in one place.
type CatalogService struct{}

// NewCatalogService creates a new catalog service.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// ListProducts returns the product listing for the admin grid.
func (s *CatalogService) ListProducts(ctx context.Context, sess *session.Session, filter backend.ProductFilter) ([]entity.Product, error) {
	return sess.API.ListProducts(ctx, filter)
}

// GetProduct returns one product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, sess *session.Session, id uint) (*entity.Product, error) {
	return sess.API.GetProduct(ctx, id)
}

// CreateProduct validates and forwards a new product.
func (s *CatalogService) CreateProduct(ctx context.Context, sess *session.Session, input *entity.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	return sess.API.CreateProduct(ctx, input)
}

// UpdateProduct validates and forwards a product update.
func (s *CatalogService) UpdateProduct(ctx context.Context, sess *session.Session, id uint, input *entity.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	return sess.API.UpdateProduct(ctx, id, input)
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, sess *session.Session, id uint) error {
	return sess.API.DeleteProduct(ctx, id)
}

// ReplenishStock sets a product's stock to an absolute level. The low-stock
// dashboard links here so an operator can clear an alert in one action.
func (s *CatalogService) ReplenishStock(ctx context.Context, sess *session.Session, id uint, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Quantity cannot be negative"},
		})
	}
	return sess.API.UpdateStock(ctx, id, &entity.StockAdjustment{
		Quantity: quantity,
		Type:     "set",
	})
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context, sess *session.Session) ([]entity.Category, error) {
	return sess.API.ListCategories(ctx)
}

// CreateCategory validates and forwards a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, sess *session.Session, input *entity.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	return sess.API.CreateCategory(ctx, input)
}

// UpdateCategory validates and forwards a category update.
func (s *CatalogService) UpdateCategory(ctx context.Context, sess *session.Session, id uint, input *entity.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	return sess.API.UpdateCategory(ctx, id, input)
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, sess *session.Session, id uint) error {
	return sess.API.DeleteCategory(ctx, id)
}

func validateProductInput(input *entity.ProductInput) error {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price == nil || *input.Price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be greater than zero"})
	}
	if input.Stock != nil && *input.Stock < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock", Message: "Stock cannot be negative"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
