package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pasteleria-api/internal/application/analytics"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	sales  decimal.Decimal
	orders int

	byDay []repository.DaySalesResult
	top   []repository.TopProductResult

	metricsErr error
	byDayErr   error
	topErr     error

	byDayStart time.Time
	byDayEnd   time.Time
	topLimit   int
}

func (f *fakeAnalyticsRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (decimal.Decimal, int, error) {
	if f.metricsErr != nil {
		return decimal.Zero, 0, f.metricsErr
	}
	return f.sales, f.orders, nil
}

func (f *fakeAnalyticsRepo) GetSalesByDay(ctx context.Context, start, end time.Time) ([]repository.DaySalesResult, error) {
	f.byDayStart, f.byDayEnd = start, end
	if f.byDayErr != nil {
		return nil, f.byDayErr
	}
	return f.byDay, nil
}

func (f *fakeAnalyticsRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	f.topLimit = limit
	if f.topErr != nil {
		return nil, f.topErr
	}
	return f.top, nil
}

func dayAt(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestDashboardSummary_CalculaTicketPromedio(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		sales:  decimal.RequireFromString("150.00"),
		orders: 4,
		byDay: []repository.DaySalesResult{
			{Day: dayAt(t, "2026-08-24"), Sales: decimal.RequireFromString("50")},
			{Day: dayAt(t, "2026-08-25"), Sales: decimal.Zero},
		},
		top: []repository.TopProductResult{
			{ProductID: "p1", ProductName: "Torta de chocolate", UnitsSold: decimal.NewFromInt(12)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, 4, summary.TodayOrders)
	assert.True(t, summary.AverageTicket.Equal(decimal.RequireFromString("37.5")))

	require.Len(t, summary.SalesLast7Days, 2)
	assert.Equal(t, "24/08", summary.SalesLast7Days[0].Date)
	assert.Equal(t, "25/08", summary.SalesLast7Days[1].Date)

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "Torta de chocolate", summary.TopProducts[0].ProductName)
	assert.True(t, summary.TopProducts[0].UnitsSold.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 5, repo.topLimit)
}

func TestDashboardSummary_SinPedidos_TicketEnCero(t *testing.T) {
	repo := &fakeAnalyticsRepo{sales: decimal.Zero, orders: 0}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.AverageTicket.IsZero())
	assert.Equal(t, 0, summary.TodayOrders)
}

func TestDashboardSummary_RangoDeSieteDias(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// La serie cubre hoy y los seis días anteriores.
	days := repo.byDayEnd.Sub(repo.byDayStart).Hours() / 24
	assert.InDelta(t, 6, days, 1)
}

func TestDashboardSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("conexión perdida")

	cases := []struct {
		name string
		repo *fakeAnalyticsRepo
		msg  string
	}{
		{"métricas", &fakeAnalyticsRepo{metricsErr: boom}, "métricas de ventas"},
		{"serie diaria", &fakeAnalyticsRepo{byDayErr: boom}, "ventas por día"},
		{"top de productos", &fakeAnalyticsRepo{topErr: boom}, "top de productos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := analytics.NewDashboardUseCase(tc.repo)
			_, err := uc.GetSummary(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
