package dto

import "github.com/shopspring/decimal"

// DaySalesDTO ventas de un día para el gráfico de los últimos 7 días.
type DaySalesDTO struct {
	Date  string          `json:"date"` // dd/mm
	Sales decimal.Decimal `json:"sales"`
}

// TopProductDTO producto más vendido en el período.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
}

// DashboardSummaryDTO métricas del dashboard: ventas de hoy, ticket promedio,
// pedidos concluidos hoy, ventas por día (7 días) y top de productos.
type DashboardSummaryDTO struct {
	TodaySales     decimal.Decimal `json:"today_sales"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`
	TodayOrders    int             `json:"today_orders"`
	SalesLast7Days []DaySalesDTO   `json:"sales_last_7_days"`
	TopProducts    []TopProductDTO `json:"top_products"`
}
