package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DaySalesResult ventas agregadas de un día (para el gráfico de 7 días).
type DaySalesResult struct {
	Day   time.Time
	Sales decimal.Decimal
}

// TopProductResult unidades vendidas de un producto en el período.
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   decimal.Decimal
}

// AnalyticsRepository define las consultas read-only del dashboard. Solo se
// consideran "ventas" los pedidos en estado delivered o ready_for_pickup.
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve la suma de totales y el número de pedidos
	// concluidos en el rango. Usa COALESCE para devolver cero sin ventas.
	GetSalesMetrics(ctx context.Context, start, end time.Time) (sales decimal.Decimal, orders int, err error)

	// GetSalesByDay devuelve las ventas agrupadas por día en el rango,
	// incluyendo días sin ventas con valor cero.
	GetSalesByDay(ctx context.Context, start, end time.Time) ([]DaySalesResult, error)

	// GetTopProducts devuelve los `limit` productos con más unidades
	// vendidas en el rango, ordenados de mayor a menor.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
}
