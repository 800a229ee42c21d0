// Package analytics contiene el caso de uso del dashboard de métricas del
// negocio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // productos en el widget "más vendidos"

// DashboardUseCase genera el resumen del dashboard: ventas de hoy, ticket
// promedio, pedidos concluidos hoy, ventas por día (últimos 7 días) y top de
// productos.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Solo cuentan
// como venta los pedidos en estado delivered o ready_for_pickup.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas en paralelo:
//  1. GetSalesMetrics(hoy)          → TodaySales, TodayOrders, AverageTicket
//  2. GetSalesByDay(últimos 7 días) → SalesLast7Days
//  3. GetTopProducts(últimos 7 días, top 5)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	weekStart := todayStart.AddDate(0, 0, -6)

	type metricsResult struct {
		sales  decimal.Decimal
		orders int
		err    error
	}
	type byDayResult struct {
		days []repository.DaySalesResult
		err  error
	}
	type topResult struct {
		top []repository.TopProductResult
		err error
	}

	metricsCh := make(chan metricsResult, 1)
	byDayCh := make(chan byDayResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		sales, orders, err := uc.analyticsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		metricsCh <- metricsResult{sales: sales, orders: orders, err: err}
	}()
	go func() {
		days, err := uc.analyticsRepo.GetSalesByDay(ctx, weekStart, todayEnd)
		byDayCh <- byDayResult{days: days, err: err}
	}()
	go func() {
		top, err := uc.analyticsRepo.GetTopProducts(ctx, weekStart, todayEnd, dashboardTopProducts)
		topCh <- topResult{top: top, err: err}
	}()

	metrics := <-metricsCh
	byDay := <-byDayCh
	top := <-topCh

	if metrics.err != nil {
		return nil, fmt.Errorf("métricas de ventas: %w", metrics.err)
	}
	if byDay.err != nil {
		return nil, fmt.Errorf("ventas por día: %w", byDay.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("top de productos: %w", top.err)
	}

	averageTicket := decimal.Zero
	if metrics.orders > 0 {
		averageTicket = metrics.sales.Div(decimal.NewFromInt(int64(metrics.orders)))
	}

	out := &dto.DashboardSummaryDTO{
		TodaySales:    metrics.sales,
		AverageTicket: averageTicket,
		TodayOrders:   metrics.orders,
	}
	for _, d := range byDay.days {
		out.SalesLast7Days = append(out.SalesLast7Days, dto.DaySalesDTO{
			Date:  d.Day.Format("02/01"),
			Sales: d.Sales,
		})
	}
	for _, t := range top.top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			UnitsSold:   t.UnitsSold,
		})
	}
	return out, nil
}
