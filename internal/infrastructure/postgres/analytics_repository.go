package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard. Cuentan como
// venta los pedidos concluidos: delivered y ready_for_pickup.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

const completedStatuses = `('delivered', 'ready_for_pickup')`

// GetSalesMetrics devuelve la suma de totales y el número de pedidos
// concluidos en el rango [start, end] (ambos extremos inclusivos).
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders
		WHERE status IN ` + completedStatuses + `
		  AND created_at >= $1 AND created_at <= $2`
	var (
		sales  decimal.Decimal
		orders int
	)
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&sales, &orders); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales metrics: %w", err)
	}
	return sales, orders, nil
}

// GetSalesByDay devuelve las ventas por día entre start y end inclusive,
// con cero en los días sin ventas (generate_series cubre los huecos).
func (r *AnalyticsRepo) GetSalesByDay(ctx context.Context, start, end time.Time) ([]repository.DaySalesResult, error) {
	query := `
		SELECT d.day::date, COALESCE(SUM(o.total), 0)
		FROM generate_series($1::date, $2::date, INTERVAL '1 day') AS d(day)
		LEFT JOIN orders o
		  ON o.created_at::date = d.day::date
		 AND o.status IN ` + completedStatuses + `
		GROUP BY d.day
		ORDER BY d.day`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()
	var results []repository.DaySalesResult
	for rows.Next() {
		var res repository.DaySalesResult
		if err := rows.Scan(&res.Day, &res.Sales); err != nil {
			return nil, fmt.Errorf("scan sales by day: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los productos con más unidades vendidas en el rango.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT i.product_id, i.product_name, SUM(i.quantity) AS units
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status IN ` + completedStatuses + `
		  AND o.created_at >= $1 AND o.created_at < $2
		GROUP BY i.product_id, i.product_name
		ORDER BY units DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(&res.ProductID, &res.ProductName, &res.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
