package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentDTO línea de una ficha técnica.
type ComponentDTO struct {
	ComponentID   string          `json:"component_id"`
	ComponentName string          `json:"component_name"`
	ComponentType string          `json:"component_type"` // supply | sheet
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"` // g, ml, un
}

// CreateSheetRequest body para POST /api/sheets. El servidor recalcula
// total_cost y suggested_price a partir de los componentes y el markup.
type CreateSheetRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Kind        string          `json:"kind"` // base | final
	Components  []ComponentDTO  `json:"components"`
	Steps       string          `json:"steps,omitempty"`
	Yield       string          `json:"yield,omitempty"`
	MarkupPct   decimal.Decimal `json:"markup_pct"`
}

// UpdateSheetRequest body para PUT /api/sheets/:id.
type UpdateSheetRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Kind        *string          `json:"kind,omitempty"`
	Components  []ComponentDTO   `json:"components,omitempty"`
	Steps       *string          `json:"steps,omitempty"`
	Yield       *string          `json:"yield,omitempty"`
	MarkupPct   *decimal.Decimal `json:"markup_pct,omitempty"`
}

// SheetCostPreviewRequest body para POST /api/sheets/cost-preview
// (calculadora de precios: costo y precio sugerido sin persistir la ficha).
type SheetCostPreviewRequest struct {
	Components []ComponentDTO  `json:"components"`
	MarkupPct  decimal.Decimal `json:"markup_pct"`
}

// SheetCostPreviewResponse resultado de la calculadora.
type SheetCostPreviewResponse struct {
	TotalCost      decimal.Decimal `json:"total_cost"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Profit         decimal.Decimal `json:"profit"`
}

// SheetResponse representación de una ficha técnica en respuestas.
type SheetResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Kind           string          `json:"kind"`
	Components     []ComponentDTO  `json:"components"`
	Steps          string          `json:"steps,omitempty"`
	Yield          string          `json:"yield,omitempty"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SheetListResponse listado de fichas.
type SheetListResponse struct {
	Sheets []SheetResponse `json:"sheets"`
	Total  int             `json:"total"`
}
