package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos.
type OrderRepository interface {
	// Create inserta la cabecera y todas las líneas del pedido.
	Create(order *entity.Order) error
	// GetByID devuelve el pedido con sus líneas.
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	// ReplaceItems sustituye las líneas y el total del pedido (edición).
	ReplaceItems(orderID string, items []entity.OrderItem, total decimal.Decimal) error
	// UpdateStatus sobreescribe el estado del pedido (sin efecto sobre stock).
	UpdateStatus(orderID, status string) error
}
