package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	StatusPending        = "pending"
	StatusInPreparation  = "in_preparation"
	StatusReadyForPickup = "ready_for_pickup"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// statusTransitions define el grafo de transiciones permitido. Cancelar es
// válido desde cualquier estado no terminal; entregado y cancelado son
// terminales. Cancelar un pedido NO repone el inventario consumido.
var statusTransitions = map[string][]string{
	StatusPending:        {StatusInPreparation, StatusCancelled},
	StatusInPreparation:  {StatusReadyForPickup, StatusCancelled},
	StatusReadyForPickup: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// ValidStatus verifica que el estado exista.
func ValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

// CanTransition verifica si el cambio de estado from -> to está permitido.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem es una línea del pedido. Nombre y precio se copian del catálogo
// al momento de crear el pedido para que ediciones posteriores del producto
// no alteren pedidos históricos.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Order representa una venta. Se crea atómicamente junto con las bajas de
// inventario; los cambios de estado posteriores no tienen efecto sobre stock.
type Order struct {
	ID           string
	OrderNumber  string
	CustomerName string
	Total        decimal.Decimal
	Status       string
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
