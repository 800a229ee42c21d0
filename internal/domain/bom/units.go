package bom

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// Sub-unidades en que una ficha puede expresar la cantidad de un componente.
const (
	SubUnitGram       = "g"
	SubUnitMilliliter = "ml"
)

var thousand = decimal.NewFromInt(1000)

// ToNativeUnit convierte una cantidad expresada en la unidad del componente
// (g, ml, un) a la unidad nativa del insumo (kg, L, un): g y ml se dividen
// entre 1000 cuando el insumo se almacena en kg o L. Las unidades discretas
// pasan sin conversión. La misma regla aplica al cálculo de costos y a la
// baja de inventario para que ambos sean consistentes.
func ToNativeUnit(qty decimal.Decimal, componentUnit string, supplyUnit string) decimal.Decimal {
	if componentUnit != SubUnitGram && componentUnit != SubUnitMilliliter {
		return qty
	}
	if supplyUnit == entity.UnitKilogram || supplyUnit == entity.UnitLiter {
		return qty.Div(thousand)
	}
	return qty
}
