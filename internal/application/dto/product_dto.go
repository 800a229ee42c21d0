package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category"`
	StockQuantity    decimal.Decimal `json:"stock_quantity"`
	TechnicalSheetID string          `json:"technical_sheet_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Punteros = opcional;
// TechnicalSheetID con string vacío desvincula la ficha.
type UpdateProductRequest struct {
	Name             *string          `json:"name,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	Category         *string          `json:"category,omitempty"`
	StockQuantity    *decimal.Decimal `json:"stock_quantity,omitempty"`
	TechnicalSheetID *string          `json:"technical_sheet_id,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Price            decimal.Decimal  `json:"price"`
	CostPrice        *decimal.Decimal `json:"cost_price,omitempty"`
	Category         string           `json:"category"`
	StockQuantity    decimal.Decimal  `json:"stock_quantity"`
	TechnicalSheetID string           `json:"technical_sheet_id,omitempty"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}
