// Package bom implementa la explosión de la lista de materiales (ficha
// técnica) de un producto en requerimientos de insumos, y el cálculo de costo
// de una ficha. Todas las funciones son puras: trabajan sobre una Arena de
// registros ya cargados, sin acceso a base de datos.
package bom

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// Arena contiene las fichas e insumos cargados, indexados por id. El caller
// (capa de aplicación) es responsable de cargar en la arena el cierre
// transitivo de fichas que un pedido puede alcanzar.
type Arena struct {
	Sheets   map[string]*entity.TechnicalSheet
	Supplies map[string]*entity.Supply
}

// NewArena construye una arena vacía.
func NewArena() *Arena {
	return &Arena{
		Sheets:   make(map[string]*entity.TechnicalSheet),
		Supplies: make(map[string]*entity.Supply),
	}
}

// Requirements acumula los requerimientos resueltos de un pedido:
// cantidades por insumo (en la unidad nativa de cada insumo) y, en un bucket
// separado, cantidades contra el stock propio de productos sin ficha.
type Requirements struct {
	Supplies map[string]decimal.Decimal // supplyID -> cantidad en unidad nativa
	Products map[string]decimal.Decimal // productID -> unidades (stock propio)
}

// NewRequirements construye un acumulador vacío.
func NewRequirements() *Requirements {
	return &Requirements{
		Supplies: make(map[string]decimal.Decimal),
		Products: make(map[string]decimal.Decimal),
	}
}

// AddSupply acumula cantidad requerida de un insumo.
func (r *Requirements) AddSupply(supplyID string, qty decimal.Decimal) {
	r.Supplies[supplyID] = r.Supplies[supplyID].Add(qty)
}

// AddProduct acumula unidades requeridas contra el stock propio de un producto.
func (r *Requirements) AddProduct(productID string, qty decimal.Decimal) {
	r.Products[productID] = r.Products[productID].Add(qty)
}

// Explode resuelve "necesito qty unidades del producto" en requerimientos de
// insumos y los acumula en req.
//
//   - Producto sin ficha técnica: requerimiento contra su propio stock.
//   - Producto con ficha de tipo "final": se recorren sus componentes;
//     los componentes de tipo ficha se expanden recursivamente a cualquier
//     profundidad, multiplicando las cantidades a lo largo del camino.
//   - Ficha referenciada inexistente en la arena: la línea no genera
//     requerimiento (se trata como "sin BOM definido", no como error).
//
// Un conjunto de visitados por camino convierte un grafo cíclico de fichas en
// ErrCyclicSheet en lugar de recursión infinita.
func Explode(arena *Arena, product *entity.Product, qty decimal.Decimal, req *Requirements) error {
	if product == nil {
		return domain.ErrNotFound
	}
	if product.SelfTracked() {
		req.AddProduct(product.ID, qty)
		return nil
	}
	sheet := arena.Sheets[product.TechnicalSheetID]
	if sheet == nil || sheet.Kind != entity.SheetKindFinal {
		// Sin ficha final resoluble: la línea no consume inventario.
		return nil
	}
	visited := map[string]bool{sheet.ID: true}
	return explodeSheet(arena, sheet, qty, visited, req)
}

func explodeSheet(arena *Arena, sheet *entity.TechnicalSheet, factor decimal.Decimal, visited map[string]bool, req *Requirements) error {
	for _, c := range sheet.Components {
		need := c.Quantity.Mul(factor)
		switch c.ComponentType {
		case entity.ComponentSupply:
			unit := c.Unit
			if sup := arena.Supplies[c.ComponentID]; sup != nil {
				req.AddSupply(c.ComponentID, ToNativeUnit(need, unit, sup.Unit))
			} else {
				// Insumo no cargado: se acumula sin convertir y el chequeo de
				// disponibilidad lo reportará como faltante por id.
				req.AddSupply(c.ComponentID, need)
			}
		case entity.ComponentSheet:
			nested := arena.Sheets[c.ComponentID]
			if nested == nil {
				continue
			}
			if visited[nested.ID] {
				return fmt.Errorf("%w: ficha %q", domain.ErrCyclicSheet, nested.Name)
			}
			visited[nested.ID] = true
			if err := explodeSheet(arena, nested, need, visited, req); err != nil {
				return err
			}
			delete(visited, nested.ID)
		}
	}
	return nil
}
