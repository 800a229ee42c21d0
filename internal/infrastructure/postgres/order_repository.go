package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL. Cabecera en
// orders, líneas en order_items. Para que el pedido quede atómico junto con
// las bajas de stock debe usarse vía TxRunner.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y todas las líneas en un solo batch.
func (r *OrderRepo) Create(order *entity.Order) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO orders (id, order_number, customer_name, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.OrderNumber, order.CustomerName, order.Total, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	for _, item := range order.Items {
		batch.Queue(`
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice,
		)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for i := 0; i < 1+len(order.Items); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
	}
	return nil
}

// GetByID devuelve el pedido con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_name, total, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.Total, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List devuelve pedidos paginados, del más reciente al más antiguo, con sus
// líneas.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, order_number, customer_name, total, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.Total, &o.Status,
			&o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.itemsFor(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// ReplaceItems sustituye todas las líneas del pedido y su total. No toca el
// inventario: editar un pedido es una corrección administrativa.
func (r *OrderRepo) ReplaceItems(orderID string, items []entity.OrderItem, total decimal.Decimal) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, orderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice,
		)
	}
	batch.Queue(`UPDATE orders SET total = $2, updated_at = now() WHERE id = $1`, orderID, total)
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < len(items)+1; i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("replace order items: %w", err)
		}
	}
	return nil
}

// UpdateStatus sobreescribe el estado del pedido.
func (r *OrderRepo) UpdateStatus(orderID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		orderID, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *OrderRepo) itemsFor(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price
		FROM order_items WHERE order_id = $1
		ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
