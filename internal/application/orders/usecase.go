// Package orders contiene el motor de pedidos: creación atómica con baja de
// inventario, chequeo de disponibilidad, consulta y ciclo de estados.
package orders

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

// OrderUseCase consultas y mutaciones de pedidos que NO tocan inventario:
// listado, detalle, edición de líneas y cambios de estado.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// GetByID devuelve el pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List devuelve pedidos paginados, más recientes primero.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(list)), Total: len(list)}
	for _, o := range list {
		out.Orders = append(out.Orders, *toOrderResponse(o))
	}
	return out, nil
}

// UpdateItems sustituye las líneas y el total de un pedido existente.
// Edición administrativa: no recalcula ni repone inventario.
func (uc *OrderUseCase) UpdateItems(id string, in dto.UpdateOrderItemsRequest) (*dto.OrderResponse, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	if err := uc.orderRepo.ReplaceItems(order.ID, items, in.Total); err != nil {
		return nil, err
	}
	order.Items = items
	order.Total = in.Total
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado del pedido validando la transición.
// Los cambios de estado son sobre-escrituras de un solo campo sin efecto
// sobre stock; cancelar no repone lo consumido.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}
	if err := uc.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return toOrderResponse(order), nil
}
