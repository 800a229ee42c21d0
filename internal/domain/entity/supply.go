package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida nativas de un insumo.
const (
	UnitKilogram = "kg" // kilogramo
	UnitLiter    = "L"  // litro
	UnitPiece    = "un" // unidad discreta
)

// ValidUnit verifica que la unidad sea una de las soportadas.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitKilogram, UnitLiter, UnitPiece:
		return true
	}
	return false
}

// Supply representa un insumo (materia prima) del inventario.
// Stock está denominado en Unit; CostPerUnit es el costo por kg, L o unidad.
// El borrado es lógico: IsActive pasa a false para no romper las fichas
// técnicas que lo referencian históricamente.
type Supply struct {
	ID               string
	Name             string
	SKU              string // código interno / código del proveedor
	Unit             string // kg, L, un
	Stock            decimal.Decimal
	CostPerUnit      decimal.Decimal
	Supplier         string
	MinStock         decimal.Decimal // umbral para el reporte de reposición
	LastPurchaseDate *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BelowMinimum indica si el stock actual está por debajo del mínimo deseado.
func (s *Supply) BelowMinimum() bool {
	return s.MinStock.GreaterThan(decimal.Zero) && s.Stock.LessThan(s.MinStock)
}
