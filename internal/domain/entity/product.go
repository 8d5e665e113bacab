package entity

import (
	"time"

	"pdv-client/pkg/money"
)

// Product mirrors the backend product payload. Prices travel as decimal
// JSON numbers; PriceMoney bridges into the exact minor-unit representation
// the cart works with.
type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Barcode     string    `json:"barcode"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CostPrice   float64   `json:"cost_price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	Unit        string    `json:"unit"`
	Active      bool      `json:"active"`
	CategoryID  uint      `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PriceMoney returns the unit price in minor units.
func (p *Product) PriceMoney() money.Money {
	return money.FromFloat(p.Price)
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Barcode     string   `json:"barcode" binding:"max=50"`
	Description string   `json:"description" binding:"max=1000"`
	Price       *float64 `json:"price" binding:"required,gt=0"`
	CostPrice   *float64 `json:"cost_price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	MinStock    *int     `json:"min_stock" binding:"omitempty,gte=0"`
	Unit        string   `json:"unit" binding:"max=10"`
	Active      *bool    `json:"active"`
	CategoryID  *uint    `json:"category_id" binding:"required"`
}

// StockAdjustment is the payload for PUT /products/{id}/stock. Type "set"
// replaces the stock figure outright; the low-stock remediation panel uses
// it.
type StockAdjustment struct {
	Quantity int    `json:"quantity" binding:"required,gte=0"`
	Type     string `json:"type" binding:"required,oneof=set add remove"`
}

// Category mirrors the backend category payload.
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	Active      *bool  `json:"active"`
}
