package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplyRequest body para POST /api/supplies.
type CreateSupplyRequest struct {
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Unit             string          `json:"unit"` // kg | L | un
	Stock            decimal.Decimal `json:"stock"`
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
	Supplier         string          `json:"supplier,omitempty"`
	MinStock         decimal.Decimal `json:"min_stock"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
}

// CreateSuppliesBatchRequest body para POST /api/supplies/batch (filas ya
// parseadas del CSV de importación; el parseo ocurre en el cliente).
type CreateSuppliesBatchRequest struct {
	Supplies []CreateSupplyRequest `json:"supplies"`
}

// UpdateSupplyRequest body para PUT /api/supplies/:id. Punteros = opcional.
type UpdateSupplyRequest struct {
	Name             *string          `json:"name,omitempty"`
	SKU              *string          `json:"sku,omitempty"`
	Unit             *string          `json:"unit,omitempty"`
	Stock            *decimal.Decimal `json:"stock,omitempty"`
	CostPerUnit      *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Supplier         *string          `json:"supplier,omitempty"`
	MinStock         *decimal.Decimal `json:"min_stock,omitempty"`
	LastPurchaseDate *time.Time       `json:"last_purchase_date,omitempty"`
}

// SupplyResponse representación de un insumo en respuestas.
type SupplyResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Unit             string          `json:"unit"`
	Stock            decimal.Decimal `json:"stock"`
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
	Supplier         string          `json:"supplier,omitempty"`
	MinStock         decimal.Decimal `json:"min_stock"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	IsActive         bool            `json:"is_active"`
	BelowMinimum     bool            `json:"below_minimum"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// SupplyListResponse listado de insumos.
type SupplyListResponse struct {
	Supplies []SupplyResponse `json:"supplies"`
	Total    int              `json:"total"`
}
