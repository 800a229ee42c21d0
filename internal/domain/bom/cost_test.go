package bom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pasteleria-api/internal/domain/bom"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

func TestParseYield(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1000g", "1000"},
		{"10 potes de 200g", "10"},
		{"  1 torta", "1"},
		{"2.5kg", "2.5"},
		{"una torta", "0"},
		{"", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := bom.ParseYield(tc.in)
			assert.True(t, got.Equal(dec(tc.want)), "esperaba %s, obtuve %s", tc.want, got)
		})
	}
}

// Costo de un componente insumo: cantidad en unidad nativa x costo por unidad.
func TestComponentCost_Insumo(t *testing.T) {
	arena := bom.NewArena()
	arena.Supplies["harina"] = &entity.Supply{
		ID: "harina", Unit: entity.UnitKilogram, CostPerUnit: dec("2"),
	}

	// 500g de harina a 2/kg = 1
	got := bom.ComponentCost(arena, entity.Component{
		ComponentID: "harina", ComponentType: entity.ComponentSupply,
		Quantity: dec("500"), Unit: "g",
	})
	assert.True(t, got.Equal(dec("1")), "esperaba 1, obtuve %s", got)
}

// Costo de un componente ficha: cantidad x (costo total / rendimiento).
func TestComponentCost_FichaAnidada(t *testing.T) {
	arena := bom.NewArena()
	arena.Sheets["bizcocho"] = &entity.TechnicalSheet{
		ID: "bizcocho", Kind: entity.SheetKindBase,
		Yield: "1000g", TotalCost: dec("8"),
	}

	// 250g de un bizcocho que rinde 1000g a costo 8 = 2
	got := bom.ComponentCost(arena, entity.Component{
		ComponentID: "bizcocho", ComponentType: entity.ComponentSheet,
		Quantity: dec("250"), Unit: "g",
	})
	assert.True(t, got.Equal(dec("2")), "esperaba 2, obtuve %s", got)
}

// Referencias ausentes o rendimiento no parseable cuestan cero.
func TestComponentCost_ReferenciasAusentes(t *testing.T) {
	arena := bom.NewArena()
	arena.Sheets["sin-yield"] = &entity.TechnicalSheet{
		ID: "sin-yield", Yield: "una tanda", TotalCost: dec("10"),
	}

	gotSupply := bom.ComponentCost(arena, entity.Component{
		ComponentID: "fantasma", ComponentType: entity.ComponentSupply, Quantity: dec("100"), Unit: "g",
	})
	assert.True(t, gotSupply.IsZero())

	gotSheet := bom.ComponentCost(arena, entity.Component{
		ComponentID: "sin-yield", ComponentType: entity.ComponentSheet, Quantity: dec("1"),
	})
	assert.True(t, gotSheet.IsZero(), "rendimiento no numérico debe costar cero")
}

func TestSheetCost_SumaComponentes(t *testing.T) {
	arena := bom.NewArena()
	arena.Supplies["harina"] = &entity.Supply{ID: "harina", Unit: entity.UnitKilogram, CostPerUnit: dec("2")}
	arena.Supplies["huevo"] = &entity.Supply{ID: "huevo", Unit: entity.UnitPiece, CostPerUnit: dec("0.2")}

	total := bom.SheetCost(arena, []entity.Component{
		{ComponentID: "harina", ComponentType: entity.ComponentSupply, Quantity: dec("500"), Unit: "g"},
		{ComponentID: "huevo", ComponentType: entity.ComponentSupply, Quantity: dec("5"), Unit: "un"},
	})
	// 1 + 1 = 2
	assert.True(t, total.Equal(dec("2")), "esperaba 2, obtuve %s", total)
}

func TestSuggestedPrice(t *testing.T) {
	// markup 100% duplica el costo
	assert.True(t, bom.SuggestedPrice(dec("10"), dec("100")).Equal(dec("20")))
	// markup 50% suma la mitad
	assert.True(t, bom.SuggestedPrice(dec("10"), dec("50")).Equal(dec("15")))
	// markup 0 deja el costo
	assert.True(t, bom.SuggestedPrice(dec("10"), dec("0")).Equal(dec("10")))
}
