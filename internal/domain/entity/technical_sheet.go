package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ficha técnica.
const (
	SheetKindBase  = "base"  // sub-receta reutilizable
	SheetKindFinal = "final" // ensamblaje vendible
)

// Tipos de componente dentro de una ficha.
const (
	ComponentSupply = "supply" // referencia a un insumo
	ComponentSheet  = "sheet"  // referencia a otra ficha técnica
)

// Component es una línea de la ficha técnica: referencia a un insumo u otra
// ficha, con la cantidad requerida. Unit puede ser una sub-unidad (g, ml)
// distinta de la unidad nativa del insumo referenciado (kg, L).
type Component struct {
	ComponentID   string          `json:"component_id"`
	ComponentName string          `json:"component_name"`
	ComponentType string          `json:"component_type"` // supply | sheet
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"` // g, ml, un
}

// TechnicalSheet es la receta / lista de materiales de un producto.
// Las fichas "base" son sub-recetas; las "final" son las que un producto
// vendible referencia y las que dirigen la baja de inventario.
// Yield es texto libre con una magnitud numérica al inicio (ej. "1000g",
// "10 potes de 200g"); se parsea para calcular costo por unidad de rendimiento.
type TechnicalSheet struct {
	ID             string
	Name           string
	Description    string
	Kind           string // base | final
	Components     []Component
	Steps          string // modo de preparación
	Yield          string
	TotalCost      decimal.Decimal
	SuggestedPrice decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
