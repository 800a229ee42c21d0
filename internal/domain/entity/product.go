package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo.
//
// Modelo de stock: si TechnicalSheetID está vacío el producto controla su
// propio StockQuantity; si referencia una ficha "final", el consumo de insumos
// de esa ficha dirige la baja de inventario y StockQuantity se ignora al
// vender. Exactamente uno de los dos modelos es el autoritativo al momento
// del pedido.
type Product struct {
	ID               string
	Name             string
	Description      string
	Price            decimal.Decimal
	CostPrice        *decimal.Decimal // costo de producción, derivado de la ficha
	Category         string
	StockQuantity    decimal.Decimal
	TechnicalSheetID string // vacío = stock propio
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SelfTracked indica si el producto controla su propio stock (sin ficha).
func (p *Product) SelfTracked() bool {
	return p.TechnicalSheetID == ""
}
