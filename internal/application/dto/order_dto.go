package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea de un pedido (request y response).
type OrderItemDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PlaceOrderRequest body para POST /api/orders.
type PlaceOrderRequest struct {
	CustomerName string          `json:"customer_name"`
	Items        []OrderItemDTO  `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// CheckAvailabilityRequest body para POST /api/orders/check.
type CheckAvailabilityRequest struct {
	Items []OrderItemDTO `json:"items"`
}

// AvailabilityResponse resultado del chequeo de disponibilidad.
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// UpdateOrderItemsRequest body para PUT /api/orders/:id (edición de líneas).
type UpdateOrderItemsRequest struct {
	Items []OrderItemDTO  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación de un pedido en respuestas.
type OrderResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Items        []OrderItemDTO  `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
