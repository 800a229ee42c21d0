package bom

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// ParseYield extrae la magnitud numérica inicial del rendimiento de una ficha
// (ej. "1000g" -> 1000, "10 potes de 200g" -> 10). Devuelve cero si el texto
// no empieza con un número.
func ParseYield(yield string) decimal.Decimal {
	s := strings.TrimSpace(yield)
	end := 0
	seenDot := false
	for end < len(s) {
		ch := rune(s[end])
		if unicode.IsDigit(ch) {
			end++
			continue
		}
		if ch == '.' && !seenDot && end > 0 {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(s[:end], "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComponentCost calcula el costo de una línea de ficha técnica.
//
//   - Componente insumo: cantidad convertida a unidad nativa × costo por unidad.
//   - Componente ficha: cantidad × (costo total de la ficha / magnitud del
//     rendimiento), es decir costo por gramo/ml/unidad de rendimiento.
//
// Componentes que referencian registros ausentes o fichas sin rendimiento
// parseable cuestan cero.
func ComponentCost(arena *Arena, c entity.Component) decimal.Decimal {
	switch c.ComponentType {
	case entity.ComponentSupply:
		sup := arena.Supplies[c.ComponentID]
		if sup == nil {
			return decimal.Zero
		}
		return ToNativeUnit(c.Quantity, c.Unit, sup.Unit).Mul(sup.CostPerUnit)
	case entity.ComponentSheet:
		sheet := arena.Sheets[c.ComponentID]
		if sheet == nil {
			return decimal.Zero
		}
		yield := ParseYield(sheet.Yield)
		if yield.IsZero() {
			return decimal.Zero
		}
		return c.Quantity.Mul(sheet.TotalCost.Div(yield))
	}
	return decimal.Zero
}

// SheetCost suma el costo de todos los componentes de la ficha.
func SheetCost(arena *Arena, components []entity.Component) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(ComponentCost(arena, c))
	}
	return total
}

// SuggestedPrice aplica un margen porcentual sobre el costo total
// (markup 100 = precio al doble del costo).
func SuggestedPrice(totalCost, markupPct decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	return totalCost.Mul(one.Add(markupPct.Div(hundred)))
}
