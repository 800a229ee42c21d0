package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/bom"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

// PlaceOrderUseCase es el único punto de entrada para crear pedidos.
//
// Flujo: resolver la lista de materiales de cada línea (ficha técnica,
// recursiva) en requerimientos de insumos, verificar disponibilidad y, dentro
// de UNA transacción con bloqueo de filas (SELECT FOR UPDATE), re-verificar
// contra los valores bloqueados, descontar stock e insertar el pedido.
// La re-verificación bajo lock elimina la carrera de sobreventa que tendría
// un esquema chequear-luego-confirmar sin aislamiento entre llamadas
// concurrentes.
type PlaceOrderUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	sheetRepo   repository.SheetRepository
	supplyRepo  repository.SupplyRepository
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	sheetRepo repository.SheetRepository,
	supplyRepo repository.SupplyRepository,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		sheetRepo:   sheetRepo,
		supplyRepo:  supplyRepo,
	}
}

// loadArena carga los productos del pedido y el cierre transitivo de fichas e
// insumos que sus componentes alcanzan. Producto inexistente aborta con
// ErrNotFound; ficha referenciada inexistente NO es error (la línea queda sin
// BOM). Un conjunto de visitados evita recargar fichas en grafos cíclicos;
// el ciclo en sí lo detecta bom.Explode.
func (uc *PlaceOrderUseCase) loadArena(items []dto.OrderItemDTO) (*bom.Arena, map[string]*entity.Product, error) {
	arena := bom.NewArena()
	products := make(map[string]*entity.Product)

	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product == nil {
			return nil, nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		products[product.ID] = product
		if product.TechnicalSheetID != "" {
			if err := uc.loadSheetClosure(arena, product.TechnicalSheetID); err != nil {
				return nil, nil, err
			}
		}
	}
	return arena, products, nil
}

func (uc *PlaceOrderUseCase) loadSheetClosure(arena *bom.Arena, sheetID string) error {
	if _, ok := arena.Sheets[sheetID]; ok {
		return nil
	}
	sheet, err := uc.sheetRepo.GetByID(sheetID)
	if err != nil {
		return err
	}
	if sheet == nil {
		// Ausencia de ficha se tolera: "sin BOM definido".
		return nil
	}
	arena.Sheets[sheet.ID] = sheet

	for _, c := range sheet.Components {
		switch c.ComponentType {
		case entity.ComponentSupply:
			if _, ok := arena.Supplies[c.ComponentID]; ok {
				continue
			}
			supply, err := uc.supplyRepo.GetByID(c.ComponentID)
			if err != nil {
				return err
			}
			if supply != nil {
				arena.Supplies[supply.ID] = supply
			}
		case entity.ComponentSheet:
			if err := uc.loadSheetClosure(arena, c.ComponentID); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolve explota cada línea del pedido y agrega los requerimientos.
func resolve(arena *bom.Arena, products map[string]*entity.Product, items []dto.OrderItemDTO) (*bom.Requirements, error) {
	req := bom.NewRequirements()
	for _, item := range items {
		if err := bom.Explode(arena, products[item.ProductID], item.Quantity, req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// checkRequirements compara los requerimientos agregados contra el stock
// actual de la arena. Devuelve el primer faltante encontrado (corto-circuito)
// o nil si todo alcanza. No tiene efectos secundarios.
func checkRequirements(arena *bom.Arena, products map[string]*entity.Product, req *bom.Requirements) error {
	for _, productID := range sortedKeys(req.Products) {
		needed := req.Products[productID]
		product := products[productID]
		if product.StockQuantity.LessThan(needed) {
			return &ShortageError{
				Kind:      shortageProduct,
				Name:      product.Name,
				Requested: needed,
				Available: product.StockQuantity,
			}
		}
	}
	for _, supplyID := range sortedKeys(req.Supplies) {
		needed := req.Supplies[supplyID]
		supply := arena.Supplies[supplyID]
		if supply == nil {
			// El insumo desapareció entre la edición de la ficha y el pedido:
			// se reporta como faltante identificado por id.
			return &ShortageError{Kind: shortageSupply, Name: supplyID, Requested: needed, Available: decimal.Zero}
		}
		if supply.Stock.LessThan(needed) {
			return &ShortageError{Kind: shortageSupply, Name: supply.Name, Requested: needed, Available: supply.Stock}
		}
	}
	return nil
}

// CheckAvailability simula el pedido contra el último snapshot leído, sin
// escribir nada. Llamarlo dos veces sin escrituras intermedias devuelve el
// mismo resultado.
func (uc *PlaceOrderUseCase) CheckAvailability(ctx context.Context, items []dto.OrderItemDTO) (*dto.AvailabilityResponse, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	arena, products, err := uc.loadArena(items)
	if err != nil {
		return nil, err
	}
	req, err := resolve(arena, products, items)
	if err != nil {
		return nil, err
	}
	if err := checkRequirements(arena, products, req); err != nil {
		return &dto.AvailabilityResponse{Available: false, Reason: err.Error()}, nil
	}
	return &dto.AvailabilityResponse{Available: true}, nil
}

// Place crea el pedido y descuenta el inventario en una sola transacción.
//
// Errores: domain.ErrNotFound (producto inexistente), ShortageError
// (envuelve domain.ErrInsufficientStock) o el error de commit de la tx.
// En cualquiera de los tres casos no queda aplicada ninguna escritura parcial:
// ni bajas de stock ni pedido huérfano.
func (uc *PlaceOrderUseCase) Place(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Resolución y chequeo preliminar fuera de la tx (solo lectura). El
	// chequeo autoritativo ocurre adentro, sobre las filas bloqueadas.
	arena, products, err := uc.loadArena(in.Items)
	if err != nil {
		return nil, err
	}
	req, err := resolve(arena, products, in.Items)
	if err != nil {
		return nil, err
	}
	if err := checkRequirements(arena, products, req); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		OrderNumber:  fmt.Sprintf("PED-%d", now.UnixMilli()),
		CustomerName: in.CustomerName,
		Total:        in.Total,
		Status:       entity.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, item := range in.Items {
		name := item.ProductName
		price := item.UnitPrice
		if product := products[item.ProductID]; product != nil {
			if name == "" {
				name = product.Name
			}
			if price.IsZero() {
				price = product.Price
			}
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   price,
		})
	}

	err = uc.txRunner.Run(ctx, func(
		supplyRepo repository.SupplyRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		// Bloqueo en orden determinista (ids ordenados) para no generar
		// deadlocks entre pedidos concurrentes que comparten insumos.
		for _, productID := range sortedKeys(req.Products) {
			needed := req.Products[productID]
			product, err := productRepo.GetForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
			}
			if product.StockQuantity.LessThan(needed) {
				return &ShortageError{
					Kind:      shortageProduct,
					Name:      product.Name,
					Requested: needed,
					Available: product.StockQuantity,
				}
			}
			if err := productRepo.UpdateStockQuantity(productID, product.StockQuantity.Sub(needed)); err != nil {
				return err
			}
		}
		for _, supplyID := range sortedKeys(req.Supplies) {
			needed := req.Supplies[supplyID]
			supply, err := supplyRepo.GetForUpdate(supplyID)
			if err != nil {
				return err
			}
			if supply == nil {
				return &ShortageError{Kind: shortageSupply, Name: supplyID, Requested: needed, Available: decimal.Zero}
			}
			if supply.Stock.LessThan(needed) {
				return &ShortageError{Kind: shortageSupply, Name: supply.Name, Requested: needed, Available: supply.Stock}
			}
			if err := supplyRepo.UpdateStock(supplyID, supply.Stock.Sub(needed)); err != nil {
				return err
			}
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func validateItems(items []dto.OrderItemDTO) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Total:        o.Total,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, dto.OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return out
}
